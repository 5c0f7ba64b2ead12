package reporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-insights-api/infrastructure/repository"
	"github.com/vfg2006/inventory-insights-api/internal/config"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
	"github.com/vfg2006/inventory-insights-api/pkg/tagcache"
	"golang.org/x/sync/errgroup"
)

const (
	popularProductsLimit = 15
	recentSummariesLimit = 5

	dashboardCacheKey = "dashboard:metrics"
	expensesCacheKey  = "expenses:byCategory"
)

type ReportService interface {
	GetDashboardMetrics() (*domain.DashboardMetrics, error)
	GetExpensesByCategory() ([]*domain.ExpenseByCategorySummary, error)
}

type Service struct {
	cfg                 *config.Config
	productRepo         repository.ProductRepository
	salesSummaryRepo    repository.SalesSummaryRepository
	purchaseSummaryRepo repository.PurchaseSummaryRepository
	expenseSummaryRepo  repository.ExpenseSummaryRepository
	cache               *tagcache.Cache
	cacheTTL            time.Duration
	useCache            bool
}

func NewService(
	cfg *config.Config,
	productRepo repository.ProductRepository,
	salesSummaryRepo repository.SalesSummaryRepository,
	purchaseSummaryRepo repository.PurchaseSummaryRepository,
	expenseSummaryRepo repository.ExpenseSummaryRepository,
) ReportService {
	return &Service{
		cfg:                 cfg,
		productRepo:         productRepo,
		salesSummaryRepo:    salesSummaryRepo,
		purchaseSummaryRepo: purchaseSummaryRepo,
		expenseSummaryRepo:  expenseSummaryRepo,
	}
}

// WithCache enables the tagged response cache for dashboard and expense
// reads. The rollup jobs invalidate these tags after writing.
func (s *Service) WithCache(cache *tagcache.Cache) *Service {
	s.cache = cache
	s.cacheTTL = time.Duration(s.cfg.Cache.TTLSeconds) * time.Second
	s.useCache = cache != nil
	return s
}

// GetDashboardMetrics assembles the dashboard blocks concurrently: the
// 15 best stocked products plus the 5 most recent rows of each rollup.
func (s *Service) GetDashboardMetrics() (*domain.DashboardMetrics, error) {
	if s.useCache {
		if cached, ok := s.cache.Get(dashboardCacheKey); ok {
			if metrics, ok := cached.(*domain.DashboardMetrics); ok {
				return metrics, nil
			}
		}
	}

	metrics := &domain.DashboardMetrics{}

	// Each goroutine fills a distinct field, so no locking is needed
	// before Wait returns.
	var g errgroup.Group

	g.Go(func() error {
		products, err := s.productRepo.ListTopByStock(popularProductsLimit)
		if err != nil {
			return errors.Wrap(err, "listing popular products")
		}
		metrics.PopularProducts = products
		return nil
	})

	g.Go(func() error {
		summaries, err := s.salesSummaryRepo.ListRecent(recentSummariesLimit)
		if err != nil {
			return errors.Wrap(err, "listing sales summaries")
		}
		metrics.SalesSummary = summaries
		return nil
	})

	g.Go(func() error {
		summaries, err := s.purchaseSummaryRepo.ListRecent(recentSummariesLimit)
		if err != nil {
			return errors.Wrap(err, "listing purchase summaries")
		}
		metrics.PurchaseSummary = summaries
		return nil
	})

	g.Go(func() error {
		summaries, err := s.expenseSummaryRepo.ListRecent(recentSummariesLimit)
		if err != nil {
			return errors.Wrap(err, "listing expense summaries")
		}
		metrics.ExpenseSummary = summaries
		return nil
	})

	g.Go(func() error {
		categories, err := s.expenseSummaryRepo.ListExpenseByCategory(recentSummariesLimit)
		if err != nil {
			return errors.Wrap(err, "listing expense categories")
		}
		metrics.ExpenseByCategorySummary = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.useCache {
		s.cache.Set(dashboardCacheKey, metrics, s.cacheTTL, domain.TagDashboardMetrics)
	}

	return metrics, nil
}

// GetExpensesByCategory returns every category breakdown row, newest
// first.
func (s *Service) GetExpensesByCategory() ([]*domain.ExpenseByCategorySummary, error) {
	if s.useCache {
		if cached, ok := s.cache.Get(expensesCacheKey); ok {
			if categories, ok := cached.([]*domain.ExpenseByCategorySummary); ok {
				return categories, nil
			}
		}
	}

	categories, err := s.expenseSummaryRepo.ListExpenseByCategory(0)
	if err != nil {
		return nil, errors.Wrap(err, "listing expense categories")
	}

	if s.useCache {
		s.cache.Set(expensesCacheKey, categories, s.cacheTTL, domain.TagExpenses)
	}

	return categories, nil
}
