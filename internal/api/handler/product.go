package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
	"github.com/vfg2006/inventory-insights-api/internal/usecases/cataloging"
	"github.com/vfg2006/inventory-insights-api/pkg/apiErrors"
)

// ListProducts lists the catalog, optionally filtered by a search term
func ListProducts(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")

		products, err := service.ListProducts(search)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching products", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(products)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error writing response", nil)
			return
		}
	}
}

// CreateProduct adds a new product to the catalog
func CreateProduct(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProduct")

		var req domain.NewProduct

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}

		product, err := service.CreateProduct(&req)
		if err != nil {
			logrus.Error(err)
			handleCreateProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(product)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error writing response", nil)
			return
		}
	}
}

// handleCreateProductError maps catalog errors to the proper response
func handleCreateProductError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cataloging.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Product name is required", nil)

	case errors.Is(err, cataloging.ErrInvalidPrice),
		errors.Is(err, cataloging.ErrInvalidStockQuantity),
		errors.Is(err, cataloging.ErrInvalidRating),
		errors.Is(err, cataloging.ErrInvalidImageURL):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, cataloging.ErrImageHostNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrImageHostNotAllowed, "Image URL host is not allowed", nil)

	case errors.Is(err, cataloging.ErrProductAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Product ID already exists", nil)

	default:
		var catErr *cataloging.CatalogError
		if errors.As(err, &catErr) {
			apiErrors.WriteError(w, catErr.Code, catErr.Details, nil)
			return
		}

		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error creating product", nil)
	}
}
