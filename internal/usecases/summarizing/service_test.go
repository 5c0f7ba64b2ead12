package summarizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-insights-api/internal/config"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestSummarizeSalesForDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	previousDate := date.AddDate(0, 0, -1)

	tests := []struct {
		name     string
		setup    func(saleRepo *mocks.MockSaleRepository, summaryRepo *mocks.MockSalesSummaryRepository)
		validate func(t *testing.T, summary *domain.SalesSummary, err error)
	}{
		{
			name: "computes change against the previous rollup",
			setup: func(saleRepo *mocks.MockSaleRepository, summaryRepo *mocks.MockSalesSummaryRepository) {
				saleRepo.EXPECT().SumByDate(date).Return(1500.0, nil)
				summaryRepo.EXPECT().GetLatestBefore(date).Return(&domain.SalesSummary{
					ID:         "prev",
					TotalValue: 1200.0,
					Date:       previousDate,
				}, nil)
				summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, summary *domain.SalesSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1500.0, summary.TotalValue)
				require.NotNil(t, summary.ChangePercentage)
				assert.Equal(t, 25.0, *summary.ChangePercentage)
				assert.Equal(t, date, summary.Date)
			},
		},
		{
			name: "first rollup has no change percentage",
			setup: func(saleRepo *mocks.MockSaleRepository, summaryRepo *mocks.MockSalesSummaryRepository) {
				saleRepo.EXPECT().SumByDate(date).Return(1500.0, nil)
				summaryRepo.EXPECT().GetLatestBefore(date).Return(nil, nil)
				summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, summary *domain.SalesSummary, err error) {
				require.NoError(t, err)
				assert.Nil(t, summary.ChangePercentage)
			},
		},
		{
			name: "zero baseline yields no change percentage",
			setup: func(saleRepo *mocks.MockSaleRepository, summaryRepo *mocks.MockSalesSummaryRepository) {
				saleRepo.EXPECT().SumByDate(date).Return(1500.0, nil)
				summaryRepo.EXPECT().GetLatestBefore(date).Return(&domain.SalesSummary{
					ID:         "prev",
					TotalValue: 0,
					Date:       previousDate,
				}, nil)
				summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, summary *domain.SalesSummary, err error) {
				require.NoError(t, err)
				assert.Nil(t, summary.ChangePercentage)
			},
		},
		{
			name: "negative variation is rounded to two decimals",
			setup: func(saleRepo *mocks.MockSaleRepository, summaryRepo *mocks.MockSalesSummaryRepository) {
				saleRepo.EXPECT().SumByDate(date).Return(1000.0, nil)
				summaryRepo.EXPECT().GetLatestBefore(date).Return(&domain.SalesSummary{
					ID:         "prev",
					TotalValue: 1234.56,
					Date:       previousDate,
				}, nil)
				summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, summary *domain.SalesSummary, err error) {
				require.NoError(t, err)
				require.NotNil(t, summary.ChangePercentage)
				assert.Equal(t, -19.0, *summary.ChangePercentage)
			},
		},
		{
			name: "repository failure aborts the rollup",
			setup: func(saleRepo *mocks.MockSaleRepository, summaryRepo *mocks.MockSalesSummaryRepository) {
				saleRepo.EXPECT().SumByDate(date).Return(0.0, assert.AnError)
			},
			validate: func(t *testing.T, summary *domain.SalesSummary, err error) {
				assert.Nil(t, summary)
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saleRepo := mocks.NewMockSaleRepository(ctrl)
			summaryRepo := mocks.NewMockSalesSummaryRepository(ctrl)
			tt.setup(saleRepo, summaryRepo)

			service := &Service{
				cfg:              &config.Config{},
				saleRepo:         saleRepo,
				salesSummaryRepo: summaryRepo,
			}

			summary, err := service.SummarizeSalesForDate(date)
			tt.validate(t, summary, err)
		})
	}
}

func TestSummarizeSalesNormalizesDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	midnight := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	summaryRepo := mocks.NewMockSalesSummaryRepository(ctrl)

	saleRepo.EXPECT().SumByDate(midnight).Return(10.0, nil)
	summaryRepo.EXPECT().GetLatestBefore(midnight).Return(nil, nil)
	summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	service := &Service{
		cfg:              &config.Config{},
		saleRepo:         saleRepo,
		salesSummaryRepo: summaryRepo,
	}

	// Mid-day input collapses onto the calendar day.
	summary, err := service.SummarizeSalesForDate(time.Date(2024, 5, 10, 15, 42, 7, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, midnight, summary.Date)
}

func TestSummarizePurchasesForDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	purchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	summaryRepo := mocks.NewMockPurchaseSummaryRepository(ctrl)

	purchaseRepo.EXPECT().SumByDate(date).Return(640.0, nil)
	summaryRepo.EXPECT().GetLatestBefore(date).Return(&domain.PurchaseSummary{
		ID:             "prev",
		TotalPurchased: 800.0,
		Date:           date.AddDate(0, 0, -3),
	}, nil)
	summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(summary *domain.PurchaseSummary) error {
		assert.NotEmpty(t, summary.ID)
		return nil
	})

	service := &Service{
		cfg:                 &config.Config{},
		purchaseRepo:        purchaseRepo,
		purchaseSummaryRepo: summaryRepo,
	}

	summary, err := service.SummarizePurchasesForDate(date)
	require.NoError(t, err)
	assert.Equal(t, 640.0, summary.TotalPurchased)
	require.NotNil(t, summary.ChangePercentage)
	assert.Equal(t, -20.0, *summary.ChangePercentage)
}

func TestSummarizeExpensesForDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	expenseRepo := mocks.NewMockExpenseRepository(ctrl)
	summaryRepo := mocks.NewMockExpenseSummaryRepository(ctrl)

	expenseRepo.EXPECT().SumByDate(date).Return(91530.75, nil)
	expenseRepo.EXPECT().SumByCategoryForDate(date).Return([]*domain.CategoryTotal{
		{Category: "Office", Amount: 1530.75},
		{Category: "Salaries", Amount: 90000.0},
	}, nil)
	summaryRepo.EXPECT().SaveOrUpdateWithCategories(gomock.Any(), gomock.Any()).DoAndReturn(
		func(summary *domain.ExpenseSummary, categories []*domain.ExpenseByCategorySummary) error {
			assert.Equal(t, 91530.75, summary.TotalExpenses)
			require.Len(t, categories, 2)
			// BIGINT column keeps whole units only.
			assert.Equal(t, "1530", categories[0].Amount)
			assert.Equal(t, "90000", categories[1].Amount)
			assert.Equal(t, date, categories[0].Date)
			return nil
		})

	service := &Service{
		cfg:                &config.Config{},
		expenseRepo:        expenseRepo,
		expenseSummaryRepo: summaryRepo,
	}

	summary, err := service.SummarizeExpensesForDate(date)
	require.NoError(t, err)
	assert.Equal(t, 91530.75, summary.TotalExpenses)
}

func TestChangePercentage(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     *float64
	}{
		{name: "growth", current: 150, previous: 100, want: floatPtr(50.0)},
		{name: "decline", current: 75, previous: 100, want: floatPtr(-25.0)},
		{name: "flat", current: 100, previous: 100, want: floatPtr(0.0)},
		{name: "zero baseline", current: 100, previous: 0, want: nil},
		{name: "rounded to two decimals", current: 101, previous: 300, want: floatPtr(-66.33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := changePercentage(tt.current, tt.previous)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}
