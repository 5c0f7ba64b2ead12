package cataloging

import (
	"errors"
	"fmt"
)

var (
	// Validation errors
	ErrMissingRequiredData  = errors.New("required data missing")
	ErrInvalidPrice         = errors.New("price must not be negative")
	ErrInvalidStockQuantity = errors.New("stock quantity must not be negative")
	ErrInvalidRating        = errors.New("rating must be between 0 and 5")
	ErrInvalidImageURL      = errors.New("image url is not a valid absolute http url")
	ErrImageHostNotAllowed  = errors.New("image url host is not on the allowlist")

	// Catalog errors
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrProductNotFound      = errors.New("product not found")

	// Internal errors
	ErrGenerateID        = errors.New("error generating identifier")
	ErrDatabaseOperation = errors.New("error performing database operation")
)

// CatalogError carries the API error code and optional product context
// along with the base error.
type CatalogError struct {
	Err       error
	Code      string
	ProductID string
	Details   string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a catalog error.
func NewCatalogError(baseErr error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewProductCatalogError creates a catalog error with product context.
func NewProductCatalogError(baseErr error, code string, productID string, details string) *CatalogError {
	return &CatalogError{
		Err:       baseErr,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}
