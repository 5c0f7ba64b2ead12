package domain

import (
	"time"
)

// Sale is a single sale transaction row
type Sale struct {
	ID          string    `json:"saleId"`
	ProductID   string    `json:"productId"`
	Timestamp   time.Time `json:"timestamp"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	TotalAmount float64   `json:"totalAmount"`
}
