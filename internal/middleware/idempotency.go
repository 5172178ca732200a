package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader lets clients retry a write without repeating its effect.
	IdempotencyKeyHeader    = "Idempotency-Key"
	idempotencyReplayHeader = "Idempotent-Replayed"
	maxIdempotencyKeyLength = 128
)

// bodyRecorder keeps a copy of the response body so it can be replayed.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response when a write request is retried with
// the same Idempotency-Key and body, and answers 409 when the key is reused for
// a different request or while the first one is still running. Keys are scoped
// to the authenticated account, so it must run after AuthMiddleware.
// Requests without the header pass through untouched.
func Idempotency(repo portsrepo.IdempotencyRepository, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if repo == nil || key == "" || (c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut) {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key is too long"})
			return
		}

		ctx := c.Request.Context()
		logger := GetLoggerFromCtx(ctx).With(slog.String("idempotency_key", key))

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unable to read request body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		userID, _ := GetUserIDFromContext(c)
		scopedKey := userID + ":" + key
		requestHash := hashRequest(c.Request.Method, c.Request.URL.Path, userID, body)

		rec, err := repo.Get(ctx, scopedKey)
		if err != nil {
			logger.Error("Failed to read idempotency record", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if rec != nil {
			replayOrReject(c, rec, requestHash)
			return
		}

		if err := repo.Reserve(ctx, scopedKey, requestHash, ttl); err != nil {
			if errors.Is(err, apperrors.ErrIdempotencyConflict) {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "A request with this Idempotency-Key is already in progress"})
				return
			}
			logger.Error("Failed to reserve idempotency key", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Next()

		status := recorder.Status()
		if status >= http.StatusInternalServerError {
			// Let the client retry after a server failure.
			if err := repo.Release(ctx, scopedKey); err != nil {
				logger.Error("Failed to release idempotency key", slog.String("error", err.Error()))
			}
			return
		}
		if err := repo.Complete(ctx, scopedKey, status, recorder.body.Bytes(), ttl); err != nil {
			logger.Error("Failed to store idempotent response", slog.String("error", err.Error()))
		}
	}
}

func replayOrReject(c *gin.Context, rec *portsrepo.IdempotencyRecord, requestHash string) {
	switch {
	case rec.RequestHash != requestHash:
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Idempotency-Key was already used for a different request"})
	case rec.ResponseCode == 0:
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "A request with this Idempotency-Key is already in progress"})
	default:
		c.Header(idempotencyReplayHeader, "true")
		c.Data(rec.ResponseCode, "application/json; charset=utf-8", rec.ResponseBody)
		c.Abort()
	}
}

func hashRequest(method, path, userID string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{0})
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write([]byte(userID))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
