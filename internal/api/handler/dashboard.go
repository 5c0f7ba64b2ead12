package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/inventory-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/inventory-insights-api/pkg/log"
)

// GetDashboardMetrics returns every card of the dashboard in one payload
func GetDashboardMetrics(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("dashboard: fetching dashboard metrics")

		metrics, err := service.GetDashboardMetrics()
		if err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to assemble metrics")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
