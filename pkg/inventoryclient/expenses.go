package inventoryclient

import "time"

// ExpenseByCategorySummary is a per category slice of a daily expense
// rollup. Amount travels as a decimal string.
type ExpenseByCategorySummary struct {
	ID       string    `json:"expenseByCategorySummaryId"`
	Category string    `json:"category"`
	Amount   string    `json:"amount"`
	Date     time.Time `json:"date"`
}

// GetExpensesByCategory fetches the per category expense rollups, cached
// under the Expenses tag
func (c *InventoryClient) GetExpensesByCategory() ([]ExpenseByCategorySummary, error) {
	var response []ExpenseByCategorySummary

	if err := c.getJSON("/expenses", nil, TagExpenses, &response); err != nil {
		return nil, err
	}

	return response, nil
}
