package summarizing

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-insights-api/infrastructure/repository"
	"github.com/vfg2006/inventory-insights-api/internal/config"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
	"github.com/vfg2006/inventory-insights-api/pkg/tagcache"
	"github.com/vfg2006/inventory-insights-api/pkg/utils"
)

// SummaryService turns raw transaction rows into the daily rollups the
// dashboard reads. Reprocessing a date overwrites its rollup in place.
type SummaryService interface {
	SummarizeSalesForDate(date time.Time) (*domain.SalesSummary, error)
	SummarizePurchasesForDate(date time.Time) (*domain.PurchaseSummary, error)
	SummarizeExpensesForDate(date time.Time) (*domain.ExpenseSummary, error)
}

type Service struct {
	cfg                 *config.Config
	saleRepo            repository.SaleRepository
	purchaseRepo        repository.PurchaseRepository
	expenseRepo         repository.ExpenseRepository
	salesSummaryRepo    repository.SalesSummaryRepository
	purchaseSummaryRepo repository.PurchaseSummaryRepository
	expenseSummaryRepo  repository.ExpenseSummaryRepository
	cache               *tagcache.Cache
	useCache            bool
}

func NewService(
	cfg *config.Config,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	expenseRepo repository.ExpenseRepository,
	salesSummaryRepo repository.SalesSummaryRepository,
	purchaseSummaryRepo repository.PurchaseSummaryRepository,
	expenseSummaryRepo repository.ExpenseSummaryRepository,
) SummaryService {
	return &Service{
		cfg:                 cfg,
		saleRepo:            saleRepo,
		purchaseRepo:        purchaseRepo,
		expenseRepo:         expenseRepo,
		salesSummaryRepo:    salesSummaryRepo,
		purchaseSummaryRepo: purchaseSummaryRepo,
		expenseSummaryRepo:  expenseSummaryRepo,
	}
}

// WithCache makes rollup writes drop the cached responses derived from
// them.
func (s *Service) WithCache(cache *tagcache.Cache) *Service {
	s.cache = cache
	s.useCache = cache != nil
	return s
}

func (s *Service) SummarizeSalesForDate(date time.Time) (*domain.SalesSummary, error) {
	date = normalizeDate(date)

	total, err := s.saleRepo.SumByDate(date)
	if err != nil {
		return nil, errors.Wrap(err, "summing sales")
	}

	previous, err := s.salesSummaryRepo.GetLatestBefore(date)
	if err != nil {
		return nil, errors.Wrap(err, "loading previous sales summary")
	}

	summary := &domain.SalesSummary{
		ID:         uuid.NewString(),
		TotalValue: total,
		Date:       date,
	}
	if previous != nil {
		summary.ChangePercentage = changePercentage(total, previous.TotalValue)
	}

	if err := s.salesSummaryRepo.SaveOrUpdate(summary); err != nil {
		return nil, errors.Wrap(err, "saving sales summary")
	}

	s.invalidate(domain.TagDashboardMetrics)

	logrus.WithFields(logrus.Fields{
		"date":        date.Format(time.DateOnly),
		"total_value": summary.TotalValue,
	}).Info("Sales summary processed")

	return summary, nil
}

func (s *Service) SummarizePurchasesForDate(date time.Time) (*domain.PurchaseSummary, error) {
	date = normalizeDate(date)

	total, err := s.purchaseRepo.SumByDate(date)
	if err != nil {
		return nil, errors.Wrap(err, "summing purchases")
	}

	previous, err := s.purchaseSummaryRepo.GetLatestBefore(date)
	if err != nil {
		return nil, errors.Wrap(err, "loading previous purchase summary")
	}

	summary := &domain.PurchaseSummary{
		ID:             uuid.NewString(),
		TotalPurchased: total,
		Date:           date,
	}
	if previous != nil {
		summary.ChangePercentage = changePercentage(total, previous.TotalPurchased)
	}

	if err := s.purchaseSummaryRepo.SaveOrUpdate(summary); err != nil {
		return nil, errors.Wrap(err, "saving purchase summary")
	}

	s.invalidate(domain.TagDashboardMetrics)

	logrus.WithFields(logrus.Fields{
		"date":            date.Format(time.DateOnly),
		"total_purchased": summary.TotalPurchased,
	}).Info("Purchase summary processed")

	return summary, nil
}

func (s *Service) SummarizeExpensesForDate(date time.Time) (*domain.ExpenseSummary, error) {
	date = normalizeDate(date)

	total, err := s.expenseRepo.SumByDate(date)
	if err != nil {
		return nil, errors.Wrap(err, "summing expenses")
	}

	byCategory, err := s.expenseRepo.SumByCategoryForDate(date)
	if err != nil {
		return nil, errors.Wrap(err, "summing expenses by category")
	}

	summary := &domain.ExpenseSummary{
		ID:            uuid.NewString(),
		TotalExpenses: total,
		Date:          date,
	}

	categories := make([]*domain.ExpenseByCategorySummary, 0, len(byCategory))
	for _, categoryTotal := range byCategory {
		categories = append(categories, &domain.ExpenseByCategorySummary{
			ID:       uuid.NewString(),
			Category: categoryTotal.Category,
			Amount:   strconv.FormatInt(int64(categoryTotal.Amount), 10),
			Date:     date,
		})
	}

	if err := s.expenseSummaryRepo.SaveOrUpdateWithCategories(summary, categories); err != nil {
		return nil, errors.Wrap(err, "saving expense summary")
	}

	s.invalidate(domain.TagDashboardMetrics, domain.TagExpenses)

	logrus.WithFields(logrus.Fields{
		"date":           date.Format(time.DateOnly),
		"total_expenses": summary.TotalExpenses,
		"categories":     len(categories),
	}).Info("Expense summary processed")

	return summary, nil
}

func (s *Service) invalidate(tags ...string) {
	if s.useCache {
		s.cache.Invalidate(tags...)
	}
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// changePercentage is the day-over-day variation against the previous
// rollup, rounded to two decimal places. A zero baseline yields nil
// instead of a division by zero.
func changePercentage(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}

	pct := utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
	return &pct
}
