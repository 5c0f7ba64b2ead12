package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/inventory-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/inventory-insights-api/pkg/log"
)

// GetExpensesByCategory returns the per-category expense rows for the
// expenses page charts
func GetExpensesByCategory(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("expenses: fetching expenses by category")

		expenses, err := service.GetExpensesByCategory()
		if err != nil {
			logger.WithField("error", err.Error()).Error("expenses: failed to fetch expense summaries")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(expenses); err != nil {
			logger.WithField("error", err.Error()).Error("expenses: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
