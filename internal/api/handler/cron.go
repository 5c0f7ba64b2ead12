package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-insights-api/internal/scheduler"
	"github.com/vfg2006/inventory-insights-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-insights-api/pkg/utils"
)

// CronJobType identifies which summary sync to run
const (
	CronJobTypeSalesSummary    = "sales-summary"
	CronJobTypePurchaseSummary = "purchase-summary"
	CronJobTypeExpenseSummary  = "expense-summary"
	CronJobTypeAll             = "all"
)

// CronJobServices carries the sync services needed for manual runs
type CronJobServices struct {
	SalesSummarySyncService    *scheduler.SalesSummarySyncService
	PurchaseSummarySyncService *scheduler.PurchaseSummarySyncService
	ExpenseSummarySyncService  *scheduler.ExpenseSummarySyncService
}

// RunCronJob manually runs a specific summary sync. An optional ?date=
// query parameter (YYYY-MM-DD) restricts the run to a single day, for
// backfilling a summary out of schedule.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not provided", nil)
			return
		}

		var date *time.Time
		if dateStr := r.URL.Query().Get("date"); dateStr != "" {
			parsed, err := utils.ParseDate(dateStr)
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid date, expected YYYY-MM-DD", nil)
				return
			}
			date = parsed
		}

		switch cronType {
		case CronJobTypeSalesSummary:
			if services.SalesSummarySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sales summary sync service not available", nil)
				return
			}
			if date != nil {
				services.SalesSummarySyncService.TriggerManualSyncForDate(*date)
			} else {
				services.SalesSummarySyncService.TriggerManualSync()
			}

		case CronJobTypePurchaseSummary:
			if services.PurchaseSummarySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Purchase summary sync service not available", nil)
				return
			}
			if date != nil {
				services.PurchaseSummarySyncService.TriggerManualSyncForDate(*date)
			} else {
				services.PurchaseSummarySyncService.TriggerManualSync()
			}

		case CronJobTypeExpenseSummary:
			if services.ExpenseSummarySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Expense summary sync service not available", nil)
				return
			}
			if date != nil {
				services.ExpenseSummarySyncService.TriggerManualSyncForDate(*date)
			} else {
				services.ExpenseSummarySyncService.TriggerManualSync()
			}

		case CronJobTypeAll:
			if services.SalesSummarySyncService != nil {
				if date != nil {
					services.SalesSummarySyncService.TriggerManualSyncForDate(*date)
				} else {
					services.SalesSummarySyncService.TriggerManualSync()
				}
			}
			if services.PurchaseSummarySyncService != nil {
				if date != nil {
					services.PurchaseSummarySyncService.TriggerManualSyncForDate(*date)
				} else {
					services.PurchaseSummarySyncService.TriggerManualSync()
				}
			}
			if services.ExpenseSummarySyncService != nil {
				if date != nil {
					services.ExpenseSummarySyncService.TriggerManualSyncForDate(*date)
				} else {
					services.ExpenseSummarySyncService.TriggerManualSync()
				}
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: sales-summary, purchase-summary, expense-summary, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		}
		if date != nil {
			response["date"] = date.Format(time.DateOnly)
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus returns the status of every summary sync
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"sales-summary":    services.SalesSummarySyncService.GetStatus(),
			"purchase-summary": services.PurchaseSummarySyncService.GetStatus(),
			"expense-summary":  services.ExpenseSummarySyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
