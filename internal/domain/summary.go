package domain

import (
	"time"
)

// SalesSummary is the daily sales rollup row
type SalesSummary struct {
	ID               string    `json:"salesSummaryId"`
	TotalValue       float64   `json:"totalValue"`
	ChangePercentage *float64  `json:"changePercentage,omitempty"`
	Date             time.Time `json:"date"`
}

// PurchaseSummary is the daily purchases rollup row
type PurchaseSummary struct {
	ID               string    `json:"purchaseSummaryId"`
	TotalPurchased   float64   `json:"totalPurchased"`
	ChangePercentage *float64  `json:"changePercentage,omitempty"`
	Date             time.Time `json:"date"`
}

// ExpenseSummary is the daily expenses rollup row
type ExpenseSummary struct {
	ID            string    `json:"expenseSummaryId"`
	TotalExpenses float64   `json:"totalExpenses"`
	Date          time.Time `json:"date"`
}

// ExpenseByCategorySummary is the per category slice of a daily expense
// rollup. Amount is stored as a BIGINT and travels as a decimal string.
type ExpenseByCategorySummary struct {
	ID               string    `json:"expenseByCategorySummaryId"`
	ExpenseSummaryID string    `json:"-"`
	Category         string    `json:"category"`
	Amount           string    `json:"amount"`
	Date             time.Time `json:"date"`
}
