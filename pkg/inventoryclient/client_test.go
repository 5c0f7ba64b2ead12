package inventoryclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-insights-api/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Client: config.Client{
			BaseURL:        baseURL,
			TimeoutSeconds: 5,
		},
		Cache: config.Cache{
			TTLSeconds: 60,
		},
	}
}

func TestInventoryClient_CreateProductInvalidatesProducts(t *testing.T) {
	var productListCalls, createCalls, userListCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/products":
			productListCalls.Add(1)
			fmt.Fprint(w, `[{"productId":"kX92mQ","name":"Wireless Mouse","price":24.99,"stockQuantity":140}]`)
		case r.Method == http.MethodPost && r.URL.Path == "/v1/products":
			createCalls.Add(1)
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"productId":"aW3nR7","name":"Mechanical Keyboard","price":89.9,"stockQuantity":65}`)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/users":
			userListCalls.Add(1)
			fmt.Fprint(w, `[{"userId":"u1","name":"Marina Duarte","email":"marina.duarte@example.com","active":true,"role":1}]`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	// Warm both caches
	products, err := client.GetProducts("")
	require.NoError(t, err)
	assert.Len(t, products, 1)

	_, err = client.GetUsers()
	require.NoError(t, err)

	// Served from the cache, no extra request
	_, err = client.GetProducts("")
	require.NoError(t, err)
	assert.Equal(t, int32(1), productListCalls.Load())

	created, err := client.CreateProduct(NewProduct{
		Name:          "Mechanical Keyboard",
		Price:         89.9,
		StockQuantity: 65,
	})
	require.NoError(t, err)
	assert.Equal(t, "aW3nR7", created.ID)
	assert.Equal(t, int32(1), createCalls.Load())

	// The mutation invalidated the Products tag, so the next listing
	// refetches
	_, err = client.GetProducts("")
	require.NoError(t, err)
	assert.Equal(t, int32(2), productListCalls.Load())

	// Users were not touched by the invalidation
	_, err = client.GetUsers()
	require.NoError(t, err)
	assert.Equal(t, int32(1), userListCalls.Load())
}

func TestInventoryClient_GetProductsForwardsSearchTerm(t *testing.T) {
	var gotPath, gotSearch, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSearch = r.URL.Query().Get("search")
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), WithToken("token-123"))

	_, err := client.GetProducts("chair")
	require.NoError(t, err)

	assert.Equal(t, "/v1/products", gotPath)
	assert.Equal(t, "chair", gotSearch)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestInventoryClient_LoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/login":
			assert.Equal(t, http.MethodPost, r.Method)

			var req loginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "marina.duarte@example.com", req.Email)

			fmt.Fprint(w, `{"token":"jwt-abc"}`)
		case "/v1/users":
			assert.Equal(t, "Bearer jwt-abc", r.Header.Get("Authorization"))
			fmt.Fprint(w, `[]`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	token, err := client.Login("marina.duarte@example.com", "Sunrise!2024")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)

	// The stored token travels on the following requests
	_, err = client.GetUsers()
	require.NoError(t, err)
}

func TestInventoryClient_GetDashboardMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/dashboard", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"popularProducts": [{"productId":"kX92mQ","name":"Wireless Mouse","price":24.99,"rating":4.5,"stockQuantity":140}],
			"salesSummary": [{"salesSummaryId":"s1","totalValue":337.8,"changePercentage":14.91,"date":"2024-01-09T00:00:00Z"}],
			"purchaseSummary": [{"purchaseSummaryId":"p1","totalPurchased":520,"changePercentage":85.71,"date":"2024-01-09T00:00:00Z"}],
			"expenseSummary": [{"expenseSummaryId":"e1","totalExpenses":385.5,"date":"2024-01-09T00:00:00Z"}],
			"expenseByCategorySummary": [{"expenseByCategorySummaryId":"c1","category":"Office","amount":"85","date":"2024-01-09T00:00:00Z"}]
		}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	metrics, err := client.GetDashboardMetrics()
	require.NoError(t, err)

	require.Len(t, metrics.PopularProducts, 1)
	assert.Equal(t, "Wireless Mouse", metrics.PopularProducts[0].Name)

	require.Len(t, metrics.SalesSummary, 1)
	assert.Equal(t, 337.8, metrics.SalesSummary[0].TotalValue)
	require.NotNil(t, metrics.SalesSummary[0].ChangePercentage)
	assert.Equal(t, 14.91, *metrics.SalesSummary[0].ChangePercentage)

	require.Len(t, metrics.ExpenseByCategorySummary, 1)
	assert.Equal(t, "Office", metrics.ExpenseByCategorySummary[0].Category)
	assert.Equal(t, "85", metrics.ExpenseByCategorySummary[0].Amount)
}

func TestInventoryClient_GetExpensesByCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/expenses", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"expenseByCategorySummaryId":"c1","category":"Salaries","amount":"1500","date":"2024-01-08T00:00:00Z"}]`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	rows, err := client.GetExpensesByCategory()
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Salaries", rows[0].Category)
	assert.Equal(t, "1500", rows[0].Amount)
}

func TestInventoryClient_DecodesAPIErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"code":"VAL_002","message":"Product name is required"}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.CreateProduct(NewProduct{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "VAL_002", apiErr.Code)
	assert.Equal(t, "Product name is required", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestInventoryClient_NonEnvelopeErrorFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream unavailable")
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.GetUsers()
	require.Error(t, err)

	var apiErr *APIError
	assert.NotErrorAs(t, err, &apiErr)
	assert.Contains(t, err.Error(), "502")
}

func TestInventoryClient_SnapshotPersistence(t *testing.T) {
	var listCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"productId":"kX92mQ","name":"Wireless Mouse","price":24.99,"stockQuantity":140}]`)
	}))
	defer server.Close()

	storage := NewFileStorage(filepath.Join(t.TempDir(), "cache.json"))

	first := NewClient(testConfig(server.URL), WithStorage(storage))

	_, err := first.GetProducts("")
	require.NoError(t, err)
	assert.Equal(t, int32(1), listCalls.Load())

	// A fresh client restores the snapshot and serves the listing
	// without touching the API
	second := NewClient(testConfig(server.URL), WithStorage(storage))

	products, err := second.GetProducts("")
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "kX92mQ", products[0].ID)
	assert.Equal(t, int32(1), listCalls.Load())
}
