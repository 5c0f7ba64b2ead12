package inventoryclient

import "net/url"

// Product is the catalog row exchanged with the API
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

// GetProducts lists catalog products, optionally filtered by a search
// term on the name. Each search is cached separately under the Products
// tag.
func (c *InventoryClient) GetProducts(search string) ([]Product, error) {
	var query url.Values
	if search != "" {
		query = url.Values{}
		query.Set("search", search)
	}

	var response []Product
	if err := c.getJSON("/products", query, TagProducts, &response); err != nil {
		return nil, err
	}

	return response, nil
}

// CreateProduct creates a product and invalidates the Products tag, so
// the next listing refetches instead of serving the cache
func (c *InventoryClient) CreateProduct(product NewProduct) (*Product, error) {
	var response Product

	if err := c.postJSON("/products", product, &response); err != nil {
		return nil, err
	}

	c.invalidate(TagProducts)

	return &response, nil
}
