//go:build integration

package router

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"insurance/internal/config"
	"insurance/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupIntegrationEngine(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("insurance_test"),
		tcPostgres.WithUsername("insurance"),
		tcPostgres.WithPassword("insurance"),
		tcPostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, pgC)
	require.NoError(t, err)

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, rdC)
	require.NoError(t, err)

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:                "test",
		DatabaseURL:        pgURL,
		DBMaxOpenConns:     10,
		DBMaxIdleConns:     2,
		RedisURL:           rdURL,
		RateLimitPerMinute: 10000,
	}

	require.NoError(t, infra.RunMigrations(cfg.DatabaseURL))

	db, err := infra.NewDatabase(cfg)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(ctx, cfg.RedisURL)
	require.NoError(t, err)
	require.NotNil(t, rdb)
	t.Cleanup(func() { _ = rdb.Close() })

	gin.SetMode(gin.TestMode)
	return New(cfg, db, rdb)
}

func TestIntegration_PolicyLifecycle(t *testing.T) {
	r := setupIntegrationEngine(t)
	seedScenario(t, r)

	w := do(t, r, http.MethodPost, "/api/v1/policies", policyBody(t))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/v1/policies", policyBody(t))
	require.Equal(t, http.StatusBadRequest, w.Code)
	var env envelope
	decodeJSON(t, w, &env)
	assert.Equal(t, "conflict", env.Code)

	w = do(t, r, http.MethodPatch, "/api/v1/holders/PS9393474S", jsonBody(t, map[string]any{"phoneNumber": "123456789"}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/v1/policies/RJHD21JD", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Cost   string `json:"cost"`
		Holder struct {
			PhoneNumber string `json:"phoneNumber"`
		} `json:"holder"`
	}
	decodeJSON(t, w, &got)
	assert.Equal(t, "100", got.Cost)
	assert.Equal(t, "123456789", got.Holder.PhoneNumber)

	w = do(t, r, http.MethodGet, "/health", nil)
	assert.JSONEq(t, `{"ok":true,"db":"connected","redis":"connected"}`, w.Body.String())
}

// Concurrent creates of the same key must leave exactly one record; the
// losers are answered with a conflict, never a 500.
func TestIntegration_ConcurrentCreateSameKey(t *testing.T) {
	r := setupIntegrationEngine(t)
	const n = 8

	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := do(t, r, http.MethodPost, "/api/v1/products", jsonBody(t, map[string]any{
				"productCode": "RACE01", "productName": "Race",
			}))
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, c := range codes {
		if c == http.StatusCreated {
			created++
			continue
		}
		assert.Equal(t, http.StatusBadRequest, c)
	}
	assert.Equal(t, 1, created)
}
