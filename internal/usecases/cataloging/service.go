package cataloging

import (
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-insights-api/infrastructure/repository"
	"github.com/vfg2006/inventory-insights-api/internal/config"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
	"github.com/vfg2006/inventory-insights-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-insights-api/pkg/tagcache"
	"github.com/vfg2006/inventory-insights-api/pkg/utils"
)

type CatalogService interface {
	ListProducts(search string) ([]*domain.Product, error)
	CreateProduct(req *domain.NewProduct) (*domain.Product, error)
}

type Service struct {
	cfg         *config.Config
	productRepo repository.ProductRepository
	cache       *tagcache.Cache
	cacheTTL    time.Duration
	useCache    bool
}

func NewService(cfg *config.Config, productRepo repository.ProductRepository) CatalogService {
	return &Service{
		cfg:         cfg,
		productRepo: productRepo,
	}
}

// WithCache enables the tagged response cache for list reads. Create
// invalidates the Products tag so stale lists never outlive a write.
func (s *Service) WithCache(cache *tagcache.Cache) *Service {
	s.cache = cache
	s.cacheTTL = time.Duration(s.cfg.Cache.TTLSeconds) * time.Second
	s.useCache = cache != nil
	return s
}

func (s *Service) ListProducts(search string) ([]*domain.Product, error) {
	cacheKey := fmt.Sprintf("products:search=%s", search)

	if s.useCache {
		if cached, ok := s.cache.Get(cacheKey); ok {
			if products, ok := cached.([]*domain.Product); ok {
				return products, nil
			}
		}
	}

	products, err := s.productRepo.ListProducts(search)
	if err != nil {
		return nil, NewCatalogError(err, apiErrors.ErrDatabaseOperation, "error listing products")
	}

	if s.useCache {
		s.cache.Set(cacheKey, products, s.cacheTTL, domain.TagProducts)
	}

	return products, nil
}

func (s *Service) CreateProduct(req *domain.NewProduct) (*domain.Product, error) {
	if req.Name == "" {
		return nil, NewCatalogError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "product name is required")
	}

	if req.Price < 0 {
		return nil, NewCatalogError(ErrInvalidPrice, apiErrors.ErrInvalidFormat, "price must not be negative")
	}

	if req.StockQuantity < 0 {
		return nil, NewCatalogError(ErrInvalidStockQuantity, apiErrors.ErrInvalidFormat, "stock quantity must not be negative")
	}

	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return nil, NewCatalogError(ErrInvalidRating, apiErrors.ErrInvalidFormat, "rating must be between 0 and 5")
	}

	if req.ImageURL != nil && *req.ImageURL != "" {
		if err := s.validateImageURL(*req.ImageURL); err != nil {
			return nil, err
		}
	}

	product := &domain.Product{
		ID:            req.ID,
		Name:          req.Name,
		Price:         req.Price,
		Rating:        req.Rating,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}

	if product.ID == "" {
		productID, err := utils.GenerateID()
		if err != nil {
			return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, "failed to generate product identifier")
		}
		product.ID = productID
	} else {
		existing, err := s.productRepo.GetProductByID(product.ID)
		if err != nil {
			return nil, NewCatalogError(err, apiErrors.ErrDatabaseOperation, "error looking up product")
		}
		if existing != nil {
			return nil, NewProductCatalogError(ErrProductAlreadyExists, apiErrors.ErrInvalidRequest, product.ID, "product id already in use")
		}
	}

	created, err := s.productRepo.CreateProduct(product)
	if err != nil {
		return nil, NewProductCatalogError(err, apiErrors.ErrDatabaseOperation, product.ID, "error creating product")
	}

	if s.useCache {
		removed := s.cache.Invalidate(domain.TagProducts)
		logrus.WithFields(logrus.Fields{
			"product_id":      created.ID,
			"entries_removed": removed,
		}).Debug("Products cache invalidated after create")
	}

	return created, nil
}

// validateImageURL accepts only absolute http(s) URLs whose host is on
// the configured allowlist.
func (s *Service) validateImageURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Hostname() == "" {
		return NewCatalogError(ErrInvalidImageURL, apiErrors.ErrInvalidFormat, "image url must be an absolute url")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return NewCatalogError(ErrInvalidImageURL, apiErrors.ErrInvalidFormat, "image url must use http or https")
	}

	if !slices.Contains(s.cfg.Images.AllowedHosts, parsed.Hostname()) {
		return NewCatalogError(ErrImageHostNotAllowed, apiErrors.ErrImageHostNotAllowed, fmt.Sprintf("host %q is not on the image allowlist", parsed.Hostname()))
	}

	return nil
}
