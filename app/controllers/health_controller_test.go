package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradsite/modteam/internal/pkg/testdb"
)

func healthCheck(t *testing.T, hc *HealthController) (int, map[string]string) {
	t.Helper()
	app := fiber.New()
	app.Get("/healthz", hc.HandleHealth)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHealthWithoutCache(t *testing.T) {
	code, body := healthCheck(t, NewHealthController(testdb.Open(t), nil))
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "disabled", body["cache"])
}

func TestHealthWithCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	code, body := healthCheck(t, NewHealthController(testdb.Open(t), client))
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "ok", body["cache"])
}

func TestHealthUnreachableCache(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	code, body := healthCheck(t, NewHealthController(testdb.Open(t), client))
	assert.Equal(t, fiber.StatusServiceUnavailable, code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "ok", body["database"])
	assert.NotEqual(t, "ok", body["cache"])
}
