package inventoryclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-insights-api/internal/config"
	"github.com/vfg2006/inventory-insights-api/pkg/tagcache"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache tags mirroring the read-side tags used by the server. Every GET
// provides its tag and mutations invalidate them.
const (
	TagDashboardMetrics = "DashboardMetrics"
	TagProducts         = "Products"
	TagUsers            = "Users"
	TagExpenses         = "Expenses"
)

const apiPrefix = "/v1"

type Client interface {
	Login(email, password string) (string, error)
	GetDashboardMetrics() (*DashboardMetrics, error)
	GetProducts(search string) ([]Product, error)
	CreateProduct(product NewProduct) (*Product, error)
	GetUsers() ([]User, error)
	GetExpensesByCategory() ([]ExpenseByCategorySummary, error)
	SetToken(token string)
}

type InventoryClient struct {
	httpClient *http.Client
	config     *config.Config
	cache      *tagcache.Cache
	cacheTTL   time.Duration
	storage    Storage

	tokenMu sync.RWMutex
	token   string
}

type Option func(*InventoryClient)

// WithStorage persists cache snapshots through s. The previous snapshot
// is restored on construction.
func WithStorage(s Storage) Option {
	return func(c *InventoryClient) {
		c.storage = s
	}
}

// WithToken starts the client already authenticated
func WithToken(token string) Option {
	return func(c *InventoryClient) {
		c.token = token
	}
}

func NewClient(cfg *config.Config, opts ...Option) Client {
	timeout := time.Duration(cfg.Client.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &InventoryClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:   cfg,
		cache:    tagcache.New(),
		cacheTTL: time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		storage:  NoopStorage{},
	}

	for _, opt := range opts {
		opt(client)
	}

	client.restoreSnapshot()

	return client
}

// SetToken replaces the bearer token sent on the following requests
func (c *InventoryClient) SetToken(token string) {
	c.tokenMu.Lock()
	c.token = token
	c.tokenMu.Unlock()
}

func (c *InventoryClient) bearerToken() string {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()

	return c.token
}

// endpoint builds the absolute URL for an API path under the versioned
// prefix
func (c *InventoryClient) endpoint(apiPath string, query url.Values) (string, error) {
	endpoint, err := url.Parse(c.config.Client.BaseURL)
	if err != nil {
		return "", errors.Wrap(err, "error parsing the API base URL")
	}
	endpoint.Path = path.Join(endpoint.Path, apiPrefix, apiPath)

	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}

func (c *InventoryClient) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")

	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// getJSON performs a GET through the tag cache. The raw response body is
// cached under the full request URL and labeled with tag, so a later
// invalidation of that tag forces a refetch.
func (c *InventoryClient) getJSON(apiPath string, query url.Values, tag string, v any) error {
	endpoint, err := c.endpoint(apiPath, query)
	if err != nil {
		return err
	}

	if cached, ok := c.cache.Get(endpoint); ok {
		if body, isRaw := cached.([]byte); isRaw {
			return json.Unmarshal(body, v)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "error creating the request")
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "error executing the request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "error reading the response")
	}

	if resp.StatusCode != http.StatusOK {
		return apiErrorFromResponse(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(err, "error decoding the response")
	}

	c.cache.Set(endpoint, body, c.cacheTTL, tag)
	c.persistSnapshot()

	return nil
}

// postJSON performs a POST with a JSON payload and decodes the response
// into v when v is not nil
func (c *InventoryClient) postJSON(apiPath string, payload any, v any) error {
	endpoint, err := c.endpoint(apiPath, nil)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "error encoding the request payload")
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return errors.Wrap(err, "error creating the request")
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "error executing the request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "error reading the response")
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return apiErrorFromResponse(resp.StatusCode, body)
	}

	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return errors.Wrap(err, "error decoding the response")
		}
	}

	return nil
}

// invalidate drops every cached entry labeled with the given tags
func (c *InventoryClient) invalidate(tags ...string) {
	if removed := c.cache.Invalidate(tags...); removed > 0 {
		c.persistSnapshot()
	}
}
