package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-insights-api/internal/config"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
	"github.com/vfg2006/inventory-insights-api/internal/usecases/summarizing/mocks"
	"go.uber.org/mock/gomock"
)

func TestSalesSummarySyncService_syncSalesSummaries(t *testing.T) {
	day1 := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dates    []time.Time
		setup    func(mockSummary *mocks.MockSummaryService, processed *[]time.Time)
		validate func(t *testing.T, processed []time.Time)
	}{
		{
			name:  "Processes dates oldest first",
			dates: []time.Time{day3, day1, day2},
			setup: func(mockSummary *mocks.MockSummaryService, processed *[]time.Time) {
				mockSummary.EXPECT().
					SummarizeSalesForDate(gomock.Any()).
					DoAndReturn(func(date time.Time) (*domain.SalesSummary, error) {
						*processed = append(*processed, date)
						return &domain.SalesSummary{ID: "sum-1"}, nil
					}).
					Times(3)
			},
			validate: func(t *testing.T, processed []time.Time) {
				// Oldest first so each day finds the previous day's summary
				assert.Equal(t, []time.Time{day1, day2, day3}, processed)
			},
		},
		{
			name:  "Keeps going when one date fails",
			dates: []time.Time{day1, day2, day3},
			setup: func(mockSummary *mocks.MockSummaryService, processed *[]time.Time) {
				mockSummary.EXPECT().
					SummarizeSalesForDate(day1).
					Return(nil, assert.AnError)
				mockSummary.EXPECT().
					SummarizeSalesForDate(day2).
					DoAndReturn(func(date time.Time) (*domain.SalesSummary, error) {
						*processed = append(*processed, date)
						return &domain.SalesSummary{ID: "sum-2"}, nil
					})
				mockSummary.EXPECT().
					SummarizeSalesForDate(day3).
					DoAndReturn(func(date time.Time) (*domain.SalesSummary, error) {
						*processed = append(*processed, date)
						return &domain.SalesSummary{ID: "sum-3"}, nil
					})
			},
			validate: func(t *testing.T, processed []time.Time) {
				assert.Equal(t, []time.Time{day2, day3}, processed)
			},
		},
		{
			name:  "No dates means no work",
			dates: []time.Time{},
			setup: func(mockSummary *mocks.MockSummaryService, processed *[]time.Time) {
			},
			validate: func(t *testing.T, processed []time.Time) {
				assert.Empty(t, processed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSummary := mocks.NewMockSummaryService(ctrl)
			service := &SalesSummarySyncService{
				config:         SalesSummarySyncConfig{LookbackDays: 3},
				summaryService: mockSummary,
			}

			var processed []time.Time
			tt.setup(mockSummary, &processed)

			service.syncSalesSummaries(tt.dates)

			if tt.validate != nil {
				tt.validate(t, processed)
			}
		})
	}
}

func TestSalesSummarySyncService_skipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummary := mocks.NewMockSummaryService(ctrl)
	service := &SalesSummarySyncService{
		config:         SalesSummarySyncConfig{LookbackDays: 3},
		summaryService: mockSummary,
		syncRunning:    true,
	}

	// No expectations set, so any summarize call would fail the test
	service.syncSalesSummaries([]time.Time{time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)})
}

func TestSalesSummarySyncService_getDatesToProcess(t *testing.T) {
	service := &SalesSummarySyncService{
		config: SalesSummarySyncConfig{LookbackDays: 3},
	}

	dates := service.getDatesToProcess()

	assert.Len(t, dates, 3)
	for i, date := range dates {
		expected := time.Now().AddDate(0, 0, -i-1)
		assert.Equal(t, expected.Year(), date.Year())
		assert.Equal(t, expected.Month(), date.Month())
		assert.Equal(t, expected.Day(), date.Day())
	}
}

func TestSalesSummarySyncService_StartDisabled(t *testing.T) {
	service := &SalesSummarySyncService{
		config: SalesSummarySyncConfig{SyncEnabled: false},
	}

	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestNewSalesSummarySyncService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummary := mocks.NewMockSummaryService(ctrl)
	appConfig := &config.Config{
		SalesSummarySync: config.SalesSummarySync{
			CronSchedule: "0 1 * * *",
			LookbackDays: 7,
			Enabled:      true,
		},
	}

	service := NewSalesSummarySyncService(mockSummary, appConfig)

	assert.Equal(t, "0 1 * * *", service.config.CronSchedule)
	assert.Equal(t, 7, service.config.LookbackDays)
	assert.True(t, service.config.SyncEnabled)
	assert.NotNil(t, service.scheduler)
}

func TestSalesSummarySyncService_GetStatus(t *testing.T) {
	service := &SalesSummarySyncService{
		config: SalesSummarySyncConfig{
			CronSchedule: "0 1 * * *",
			LookbackDays: 7,
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 1 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])
}
