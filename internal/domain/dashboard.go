package domain

// DashboardMetrics bundles every collection the dashboard renders in a
// single fetch
type DashboardMetrics struct {
	PopularProducts          []*Product                  `json:"popularProducts"`
	SalesSummary             []*SalesSummary             `json:"salesSummary"`
	PurchaseSummary          []*PurchaseSummary          `json:"purchaseSummary"`
	ExpenseSummary           []*ExpenseSummary           `json:"expenseSummary"`
	ExpenseByCategorySummary []*ExpenseByCategorySummary `json:"expenseByCategorySummary"`
}
