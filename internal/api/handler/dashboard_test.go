package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
	"github.com/vfg2006/inventory-insights-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetDashboardMetrics(t *testing.T) {
	change := 14.91

	tests := []struct {
		name       string
		setupMocks func(mockReport *mocks.MockReportService)
		validate   func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Returns every dashboard collection",
			setupMocks: func(mockReport *mocks.MockReportService) {
				mockReport.EXPECT().
					GetDashboardMetrics().
					Return(&domain.DashboardMetrics{
						PopularProducts: []*domain.Product{
							{ID: "kX92mQ", Name: "Wireless Mouse", Price: 79.9, StockQuantity: 25},
						},
						SalesSummary: []*domain.SalesSummary{
							{
								ID:               "sum-1",
								TotalValue:       337.8,
								ChangePercentage: &change,
								Date:             time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
							},
						},
						PurchaseSummary: []*domain.PurchaseSummary{
							{ID: "pur-1", TotalPurchased: 520, Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)},
						},
						ExpenseSummary: []*domain.ExpenseSummary{
							{ID: "exp-1", TotalExpenses: 385.5, Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)},
						},
						ExpenseByCategorySummary: []*domain.ExpenseByCategorySummary{
							{ID: "cat-1", Category: "Office", Amount: "85", Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)},
						},
					}, nil)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
				assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

				var metrics domain.DashboardMetrics
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&metrics))

				require.Len(t, metrics.PopularProducts, 1)
				assert.Equal(t, "Wireless Mouse", metrics.PopularProducts[0].Name)

				require.Len(t, metrics.SalesSummary, 1)
				assert.Equal(t, 337.8, metrics.SalesSummary[0].TotalValue)
				require.NotNil(t, metrics.SalesSummary[0].ChangePercentage)
				assert.Equal(t, 14.91, *metrics.SalesSummary[0].ChangePercentage)

				require.Len(t, metrics.ExpenseByCategorySummary, 1)
				assert.Equal(t, "Office", metrics.ExpenseByCategorySummary[0].Category)
				assert.Equal(t, "85", metrics.ExpenseByCategorySummary[0].Amount)
			},
		},
		{
			name: "Service failure returns 500",
			setupMocks: func(mockReport *mocks.MockReportService) {
				mockReport.EXPECT().
					GetDashboardMetrics().
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, resp.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReport := mocks.NewMockReportService(ctrl)
			tt.setupMocks(mockReport)

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			resp := httptest.NewRecorder()

			GetDashboardMetrics(mockReport).ServeHTTP(resp, req)

			tt.validate(t, resp)
		})
	}
}

func TestGetExpensesByCategory(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(mockReport *mocks.MockReportService)
		validate   func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Returns the category rows",
			setupMocks: func(mockReport *mocks.MockReportService) {
				mockReport.EXPECT().
					GetExpensesByCategory().
					Return([]*domain.ExpenseByCategorySummary{
						{ID: "cat-1", Category: "Office", Amount: "85", Date: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
						{ID: "cat-2", Category: "Salaries", Amount: "1500", Date: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
					}, nil)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
				assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

				var expenses []*domain.ExpenseByCategorySummary
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&expenses))
				require.Len(t, expenses, 2)
				assert.Equal(t, "Office", expenses[0].Category)
				assert.Equal(t, "85", expenses[0].Amount)
				assert.Equal(t, "Salaries", expenses[1].Category)
			},
		},
		{
			name: "Service failure returns 500",
			setupMocks: func(mockReport *mocks.MockReportService) {
				mockReport.EXPECT().
					GetExpensesByCategory().
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, resp.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReport := mocks.NewMockReportService(ctrl)
			tt.setupMocks(mockReport)

			req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
			resp := httptest.NewRecorder()

			GetExpensesByCategory(mockReport).ServeHTTP(resp, req)

			tt.validate(t, resp)
		})
	}
}
