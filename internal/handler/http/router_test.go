package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetmoments/storefront/internal/auth"
	"github.com/sweetmoments/storefront/internal/domain"
	"github.com/sweetmoments/storefront/internal/event"
	"github.com/sweetmoments/storefront/internal/repository/memory"
	"github.com/sweetmoments/storefront/internal/service"
	"github.com/sweetmoments/storefront/pkg/health"
	"github.com/sweetmoments/storefront/pkg/middleware"
)

type stubWishlistRepo struct {
	mu    sync.Mutex
	store map[string]*domain.Wishlist
}

func newStubWishlistRepo() *stubWishlistRepo {
	return &stubWishlistRepo{store: make(map[string]*domain.Wishlist)}
}

func (s *stubWishlistRepo) Get(_ context.Context, sessionID string) (*domain.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if wl, ok := s.store[sessionID]; ok {
		return wl, nil
	}
	return domain.NewWishlist(sessionID), nil
}

func (s *stubWishlistRepo) Save(_ context.Context, wl *domain.Wishlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[wl.SessionID] = wl
	return nil
}

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) GenerateText(context.Context, string) (string, error) {
	return s.text, s.err
}

func newTestServer(t *testing.T, gen *stubGenerator) (*httptest.Server, *auth.JWTManager) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := event.NewProducer(nil, logger)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	catalog := service.NewCatalogService(nil, events, logger)
	if gen == nil {
		gen = &stubGenerator{text: "Try the truffles."}
	}

	router := NewRouter(RouterConfig{
		Logger:      logger,
		JWTManager:  jwtManager,
		Health:      health.NewHandler(),
		ServiceName: "storefront-test",
		CORS:        middleware.DefaultCORSConfig(),
		Cart:        NewCartHandler(service.NewCartService(memory.NewCartRepository(), events, logger)),
		Wishlist:    NewWishlistHandler(service.NewWishlistService(newStubWishlistRepo(), events, logger)),
		Catalog:     NewCatalogHandler(catalog),
		Assistant:   NewAssistantHandler(service.NewRecommendService(gen, catalog, logger)),
		Auth:        NewAuthHandler(jwtManager, true),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, jwtManager
}

func doRequest(t *testing.T, method, url string, body any, headers map[string]string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var envelope map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func sessionHeaders() map[string]string {
	return map[string]string{"X-Session-ID": "sess-test"}
}

func TestListProducts(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/v1/products", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(envelope["data"], &products))
	assert.Len(t, products, 6)
	assert.Equal(t, "Classic Kaju Katli", products[0].Name)
}

func TestGetProduct(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/v1/products/3", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var product domain.Product
	require.NoError(t, json.Unmarshal(envelope["data"], &product))
	assert.Equal(t, "Pista Gulab Jamun", product.Name)

	resp, _ = doRequest(t, http.MethodGet, srv.URL+"/api/v1/products/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListCategories(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/v1/categories", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []domain.Category
	require.NoError(t, json.Unmarshal(envelope["data"], &categories))
	assert.Len(t, categories, 4)
}

func TestCartRequiresSession(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, _ := doRequest(t, http.MethodGet, srv.URL+"/api/v1/cart", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCartFlow(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	discount := int64(399)
	product := domain.Product{ID: "1", Name: "Classic Kaju Katli", Price: 450, DiscountPrice: &discount}

	for i := 0; i < 3; i++ {
		resp, _ := doRequest(t, http.MethodPost, srv.URL+"/api/v1/cart/items",
			map[string]any{"product": product}, sessionHeaders())
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/v1/cart", nil, sessionHeaders())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart cartView
	require.NoError(t, json.Unmarshal(envelope["data"], &cart))
	assert.Equal(t, 3, cart.TotalItems)
	assert.Equal(t, int64(1197), cart.TotalPrice)

	// Quantity zero removes the line.
	resp, envelope = doRequest(t, http.MethodPut, srv.URL+"/api/v1/cart/items/1",
		map[string]any{"quantity": 0}, sessionHeaders())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &cart))
	assert.Equal(t, 0, cart.TotalItems)
}

func TestCartUpdateAbsentProductIsNoOp(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, envelope := doRequest(t, http.MethodPut, srv.URL+"/api/v1/cart/items/ghost",
		map[string]any{"quantity": 5}, sessionHeaders())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart cartView
	require.NoError(t, json.Unmarshal(envelope["data"], &cart))
	assert.Equal(t, 0, cart.TotalItems)
}

func TestCartClear(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, _ := doRequest(t, http.MethodPost, srv.URL+"/api/v1/cart/items",
		map[string]any{"product": domain.Product{ID: "2", Price: 550}}, sessionHeaders())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope := doRequest(t, http.MethodDelete, srv.URL+"/api/v1/cart", nil, sessionHeaders())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart cartView
	require.NoError(t, json.Unmarshal(envelope["data"], &cart))
	assert.Equal(t, 0, cart.TotalItems)
}

func TestWishlistToggle(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	product := domain.Product{ID: "6", Name: "Dark Chocolate Truffles", Price: 650}

	resp, envelope := doRequest(t, http.MethodPost, srv.URL+"/api/v1/wishlist/toggle",
		map[string]any{"product": product}, sessionHeaders())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var toggled toggleWishlistResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &toggled))
	assert.True(t, toggled.Added)
	assert.Equal(t, 1, toggled.Wishlist.Count)

	resp, envelope = doRequest(t, http.MethodPost, srv.URL+"/api/v1/wishlist/toggle",
		map[string]any{"product": product}, sessionHeaders())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &toggled))
	assert.False(t, toggled.Added)
	assert.Equal(t, 0, toggled.Wishlist.Count)
}

func TestWishlistMembership(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	product := domain.Product{ID: "3", Name: "Pista Gulab Jamun", Price: 320}

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/v1/wishlist/3", nil, sessionHeaders())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var membership map[string]bool
	require.NoError(t, json.Unmarshal(envelope["data"], &membership))
	assert.False(t, membership["in_wishlist"])

	resp, _ = doRequest(t, http.MethodPost, srv.URL+"/api/v1/wishlist/toggle",
		map[string]any{"product": product}, sessionHeaders())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope = doRequest(t, http.MethodGet, srv.URL+"/api/v1/wishlist/3", nil, sessionHeaders())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &membership))
	assert.True(t, membership["in_wishlist"])
}

func TestSignOut(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, envelope := doRequest(t, http.MethodPost, srv.URL+"/api/v1/auth/signout", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]bool
	require.NoError(t, json.Unmarshal(envelope["data"], &out))
	assert.True(t, out["signed_out"])
}

func TestCreateProductRequiresIdentity(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, _ := doRequest(t, http.MethodPost, srv.URL+"/api/v1/products",
		map[string]any{"name": "Rose Barfi", "category": "traditional", "price": 480}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateProductWithDemoSession(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, envelope := doRequest(t, http.MethodPost, srv.URL+"/api/v1/auth/demo-session", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session sessionResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &session))
	assert.Equal(t, "Artisan Owner", session.Identity.Name)

	headers := map[string]string{"Authorization": "Bearer " + session.Token}
	resp, envelope = doRequest(t, http.MethodPost, srv.URL+"/api/v1/products",
		map[string]any{"name": "Rose Barfi", "category": "traditional", "price": 480, "in_stock": true},
		headers)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var product domain.Product
	require.NoError(t, json.Unmarshal(envelope["data"], &product))
	assert.Equal(t, "rose-barfi", product.Slug)
	assert.NotEmpty(t, product.ID)
}

func TestCreateProductValidation(t *testing.T) {
	srv, jwtManager := newTestServer(t, nil)

	token, err := jwtManager.Issue(auth.Identity{UserID: "owner-1", Name: "Artisan Owner"})
	require.NoError(t, err)
	headers := map[string]string{"Authorization": "Bearer " + token}

	resp, envelope := doRequest(t, http.MethodPost, srv.URL+"/api/v1/products",
		map[string]any{"name": "X", "price": -5}, headers)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorBody
	require.NoError(t, json.Unmarshal(envelope["error"], &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.NotEmpty(t, body.Fields)
}

func TestAssistantRecommend(t *testing.T) {
	srv, _ := newTestServer(t, &stubGenerator{text: "Our **Dark Chocolate Truffles** await."})

	resp, envelope := doRequest(t, http.MethodPost, srv.URL+"/api/v1/assistant/recommend",
		map[string]any{"prompt": "something rich"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out recommendResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &out))
	assert.Contains(t, out.Recommendation, "Truffles")
}

func TestAssistantRejectsEmptyPrompt(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, _ := doRequest(t, http.MethodPost, srv.URL+"/api/v1/assistant/recommend",
		map[string]any{"prompt": ""}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthMe(t *testing.T) {
	srv, jwtManager := newTestServer(t, nil)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/v1/auth/me", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me meResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &me))
	assert.False(t, me.Authenticated)

	token, err := jwtManager.Issue(auth.Identity{UserID: "owner-1", Name: "Artisan Owner"})
	require.NoError(t, err)

	resp, envelope = doRequest(t, http.MethodGet, srv.URL+"/api/v1/auth/me", nil,
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &me))
	assert.True(t, me.Authenticated)
	assert.Equal(t, "Artisan Owner", me.Identity.Name)
}

func TestInvalidTokenIsAnonymous(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/v1/auth/me", nil,
		map[string]string{"Authorization": "Bearer garbage"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me meResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &me))
	assert.False(t, me.Authenticated)
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/health/live")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/health/ready")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}
