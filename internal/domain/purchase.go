package domain

import (
	"time"
)

// Purchase is a single purchase transaction row. ProductID references an
// existing product, the database enforces the constraint.
type Purchase struct {
	ID        string    `json:"purchaseId"`
	ProductID string    `json:"productId"`
	Timestamp time.Time `json:"timestamp"`
	Quantity  int       `json:"quantity"`
	UnitCost  float64   `json:"unitCost"`
	TotalCost float64   `json:"totalCost"`
}
