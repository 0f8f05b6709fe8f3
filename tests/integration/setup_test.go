package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	httpAdapter "github.com/iho/fintrack/internal/adapter/http"
	"github.com/iho/fintrack/internal/adapter/http/handler"
	postgresRepo "github.com/iho/fintrack/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/fintrack/internal/adapter/repository/redis"
	"github.com/iho/fintrack/internal/assistant"
	infraredis "github.com/iho/fintrack/internal/infrastructure/redis"
	"github.com/iho/fintrack/internal/ingest"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/tests/testutil"
)

// scriptedModel plays canned completions in order so assistant flows
// run without a live model.
type scriptedModel struct {
	replies []string
	err     error
	calls   int
}

func (s *scriptedModel) Generate(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.calls >= len(s.replies) {
		return "", errors.New("no scripted reply left")
	}
	reply := s.replies[s.calls]
	s.calls++
	return reply, nil
}

// offlineModel is for tests that never reach the model.
func offlineModel() *scriptedModel {
	return &scriptedModel{err: errors.New("model offline")}
}

type testEnv struct {
	DB     *testutil.TestDB
	Redis  *redis.Client
	Router http.Handler
}

// newTestEnv wires the full HTTP stack against the test database and
// Redis, with the given model behind the assistant.
func newTestEnv(t *testing.T, model assistant.TextGenerator) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { _ = redisClient.Close() })

	// Cached analytics views and idempotency keys must not leak
	// between tests.
	if err := redisClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}

	pool := testDB.Pool
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	holdingRepo := postgresRepo.NewHoldingRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	chatRepo := postgresRepo.NewChatMessageRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	retrier := postgresRepo.NewRetrier()
	idGen := postgresRepo.NewULIDGenerator()

	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, holdingRepo, retrier, idGen, cache)
	holdingUC := usecase.NewHoldingUseCase(holdingRepo, accountRepo, idGen, cache)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, accountRepo, idGen, cache)
	analyticsUC := usecase.NewAnalyticsUseCase(transactionRepo, accountRepo, cache)
	assistantUC := usecase.NewAssistantUseCase(
		assistant.NewExtractor(model),
		assistant.NewResponder(model),
		assistant.NewAnalyst(model),
		ingest.NewProcessor(),
		accountRepo,
		transactionRepo,
		chatRepo,
		idGen,
		cache,
	)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     handler.NewAccountHandler(accountUC),
		HoldingHandler:     handler.NewHoldingHandler(holdingUC),
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		AnalyticsHandler:   handler.NewAnalyticsHandler(analyticsUC),
		AssistantHandler:   handler.NewAssistantHandler(assistantUC, nil),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     time.Minute,
		CORSAllowedOrigins: []string{"*"},
	})

	return &testEnv{
		DB:     testDB,
		Redis:  redisClient,
		Router: router,
	}
}

// do sends one request through the router. A non-nil body is sent as
// JSON.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, r)
	return w
}

// decode unmarshals a response body, failing the test on bad JSON.
func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
