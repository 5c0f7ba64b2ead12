package domain

// Product is the catalog row exchanged with the dashboard
type Product struct {
	ID            string   `json:"productId"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Rating        *float64 `json:"rating,omitempty"`
	StockQuantity int      `json:"stockQuantity"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
}

// NewProduct is the creation payload. The ID is optional and generated
// server side when absent.
type NewProduct struct {
	ID            string   `json:"productId,omitempty"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Rating        *float64 `json:"rating,omitempty"`
	StockQuantity int      `json:"stockQuantity"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
}
