package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/adapters/memory"
	"github.com/SscSPs/fastpay_escrow/internal/middleware"
	"github.com/SscSPs/fastpay_escrow/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func token(t *testing.T, accountID, role string, ttl time.Duration) string {
	t.Helper()
	signed, _, err := utils.GenerateJWT(accountID, role, testSecret, ttl, "test")
	require.NoError(t, err)
	return signed
}

func serve(r *gin.Engine, method, path, bearer string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/whoami", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		id, _ := middleware.GetUserIDFromContext(c)
		role, _ := middleware.GetRoleFromContext(c)
		c.String(http.StatusOK, id+"/"+role)
	})

	w := serve(r, http.MethodGet, "/whoami", token(t, "acc-1", "MERCHANT", time.Hour), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acc-1/MERCHANT", w.Body.String())

	w = serve(r, http.MethodGet, "/whoami", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.MethodGet, "/whoami", token(t, "acc-1", "USER", -time.Minute), nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")

	other, _, err := utils.GenerateJWT("acc-1", "USER", "another-secret", time.Hour, "test")
	require.NoError(t, err)
	w = serve(r, http.MethodGet, "/whoami", other, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.GET("/admin", middleware.AuthMiddleware(testSecret), middleware.RequireRole("ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/admin", token(t, "root", "ADMIN", time.Hour), nil, nil).Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/admin", token(t, "u1", "USER", time.Hour), nil, nil).Code)
}

func TestIdempotency(t *testing.T) {
	var calls int32
	store := memory.NewIdempotencyStore()
	r := gin.New()
	r.POST("/pay", middleware.AuthMiddleware(testSecret), middleware.Idempotency(store, time.Hour), func(c *gin.Context) {
		n := atomic.AddInt32(&calls, 1)
		c.JSON(http.StatusCreated, gin.H{"call": n})
	})
	r.POST("/fail", middleware.AuthMiddleware(testSecret), middleware.Idempotency(store, time.Hour), func(c *gin.Context) {
		atomic.AddInt32(&calls, 1)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})

	alice := token(t, "alice", "USER", time.Hour)
	bob := token(t, "bob", "USER", time.Hour)
	key := map[string]string{middleware.IdempotencyKeyHeader: "k-1"}

	first := serve(r, http.MethodPost, "/pay", alice, []byte(`{"a":1}`), key)
	require.Equal(t, http.StatusCreated, first.Code)

	replay := serve(r, http.MethodPost, "/pay", alice, []byte(`{"a":1}`), key)
	assert.Equal(t, http.StatusCreated, replay.Code)
	assert.Equal(t, "true", replay.Header().Get("Idempotent-Replayed"))
	assert.JSONEq(t, first.Body.String(), replay.Body.String())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	conflict := serve(r, http.MethodPost, "/pay", alice, []byte(`{"a":2}`), key)
	assert.Equal(t, http.StatusConflict, conflict.Code)

	// Keys are scoped per account.
	other := serve(r, http.MethodPost, "/pay", bob, []byte(`{"a":1}`), key)
	assert.Equal(t, http.StatusCreated, other.Code)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	// Without a key every request runs.
	serve(r, http.MethodPost, "/pay", alice, []byte(`{"a":1}`), nil)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))

	// Server failures release the key so the client can retry.
	failKey := map[string]string{middleware.IdempotencyKeyHeader: "k-fail"}
	serve(r, http.MethodPost, "/fail", alice, nil, failKey)
	serve(r, http.MethodPost, "/fail", alice, nil, failKey)
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewLimiter("2-M")
	require.NoError(t, err)
	r := gin.New()
	r.GET("/ping", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ping", "", nil, nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ping", "", nil, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/ping", "", nil, nil).Code)

	_, err = middleware.NewLimiter("not-a-rate")
	assert.Error(t, err)
}
