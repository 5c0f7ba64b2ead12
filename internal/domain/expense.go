package domain

import (
	"time"
)

// Expense is a single expense transaction row
type Expense struct {
	ID        string    `json:"expenseId"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// CategoryTotal is an aggregated amount per expense category for one day
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
