package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/http/handler"
	apimiddleware "github.com/iho/fintrack/internal/adapter/http/middleware"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RootAnnouncesAPI(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /api/ to return 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "FinTrack AI Backend API") {
		t.Fatalf("expected API banner, got %s", rec.Body.String())
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterThrottlesAssistantRoutes(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1, nil)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodPost, "/api/ai/insights", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodPost, "/api/ai/insights", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}

	// Non-assistant routes are not rate limited
	req3 := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req3.RemoteAddr = "1.2.3.4:1234"
	rec3 := httptest.NewRecorder()
	router.ServeHTTP(rec3, req3)
	if rec3.Code != http.StatusOK {
		t.Fatalf("expected account listing to pass, got %d", rec3.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
		cfg.IdempotencyTTL = time.Hour
	}))

	body := `{"account_id":"acc-1","description":"Coffee","amount":-4.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	router := NewRouter(newRouterConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/accounts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard allow-origin, got %q", got)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Router")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"GET /api/",
		"POST /api/accounts/",
		"GET /api/accounts/",
		"PUT /api/accounts/{id}",
		"DELETE /api/accounts/{id}",
		"POST /api/accounts/{id}/holdings",
		"PUT /api/holdings/{id}",
		"POST /api/transactions/",
		"GET /api/analytics/spending-by-category",
		"GET /api/analytics/asset-allocation",
		"POST /api/ai/chat",
		"GET /api/ai/messages",
		"POST /api/ai/upload",
		"POST /api/ai/insights",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		AccountHandler:     handler.NewAccountHandler(stubAccountService{}),
		HoldingHandler:     handler.NewHoldingHandler(stubHoldingService{}),
		TransactionHandler: handler.NewTransactionHandler(stubTransactionService{}),
		AnalyticsHandler:   handler.NewAnalyticsHandler(stubAnalyticsService{}),
		AssistantHandler:   handler.NewAssistantHandler(stubAssistantService{}, nil),
		HealthHandler:      &handler.HealthHandler{},
		Logger:             zerolog.Nop(),
		CORSAllowedOrigins: []string{"*"},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubAccountService struct{}

func (stubAccountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: "acc"}, nil
}

func (stubAccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return &domain.Account{ID: id}, nil
}

func (stubAccountService) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

func (stubAccountService) UpdateAccount(ctx context.Context, input usecase.UpdateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: input.ID}, nil
}

func (stubAccountService) DeleteAccount(ctx context.Context, id string) error {
	return nil
}

type stubHoldingService struct{}

func (stubHoldingService) CreateHolding(ctx context.Context, input usecase.CreateHoldingInput) (*domain.Holding, error) {
	return &domain.Holding{ID: "hold"}, nil
}

func (stubHoldingService) ListHoldingsByAccount(ctx context.Context, accountID string) ([]*domain.Holding, error) {
	return []*domain.Holding{}, nil
}

func (stubHoldingService) UpdateHolding(ctx context.Context, input usecase.UpdateHoldingInput) (*domain.Holding, error) {
	return &domain.Holding{ID: input.ID}, nil
}

func (stubHoldingService) DeleteHolding(ctx context.Context, id string) error {
	return nil
}

type stubTransactionService struct{}

func (stubTransactionService) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: "tx"}, nil
}

func (stubTransactionService) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
	return []*domain.Transaction{}, nil
}

func (stubTransactionService) UpdateTransaction(ctx context.Context, input usecase.UpdateTransactionInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: input.ID}, nil
}

func (stubTransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return nil
}

type stubAnalyticsService struct{}

func (stubAnalyticsService) SpendingByCategory(ctx context.Context) ([]domain.CategorySpending, error) {
	return []domain.CategorySpending{}, nil
}

func (stubAnalyticsService) MonthlySpending(ctx context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (stubAnalyticsService) AssetAllocation(ctx context.Context) ([]domain.AllocationSlice, decimal.Decimal, error) {
	return []domain.AllocationSlice{}, decimal.Zero, nil
}

type stubAssistantService struct{}

func (stubAssistantService) Chat(ctx context.Context, message string) (string, error) {
	return "reply", nil
}

func (stubAssistantService) History(ctx context.Context, limit int) ([]*domain.ChatMessage, error) {
	return []*domain.ChatMessage{}, nil
}

func (stubAssistantService) ProcessDocument(ctx context.Context, data []byte, filename, contentType string) (domain.ImportResult, error) {
	return domain.ImportResult{Success: true}, nil
}

func (stubAssistantService) SpendingInsights(ctx context.Context) (string, error) {
	return "insights", nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
