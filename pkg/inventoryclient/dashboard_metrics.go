package inventoryclient

import "time"

// DashboardMetrics bundles every collection the dashboard renders in a
// single fetch
type DashboardMetrics struct {
	PopularProducts          []Product                  `json:"popularProducts"`
	SalesSummary             []SalesSummary             `json:"salesSummary"`
	PurchaseSummary          []PurchaseSummary          `json:"purchaseSummary"`
	ExpenseSummary           []ExpenseSummary           `json:"expenseSummary"`
	ExpenseByCategorySummary []ExpenseByCategorySummary `json:"expenseByCategorySummary"`
}

type SalesSummary struct {
	ID               string    `json:"salesSummaryId"`
	TotalValue       float64   `json:"totalValue"`
	ChangePercentage *float64  `json:"changePercentage,omitempty"`
	Date             time.Time `json:"date"`
}

type PurchaseSummary struct {
	ID               string    `json:"purchaseSummaryId"`
	TotalPurchased   float64   `json:"totalPurchased"`
	ChangePercentage *float64  `json:"changePercentage,omitempty"`
	Date             time.Time `json:"date"`
}

type ExpenseSummary struct {
	ID            string    `json:"expenseSummaryId"`
	TotalExpenses float64   `json:"totalExpenses"`
	Date          time.Time `json:"date"`
}

// GetDashboardMetrics fetches the aggregated dashboard payload, cached
// under the DashboardMetrics tag
func (c *InventoryClient) GetDashboardMetrics() (*DashboardMetrics, error) {
	var response DashboardMetrics

	if err := c.getJSON("/dashboard", nil, TagDashboardMetrics, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
