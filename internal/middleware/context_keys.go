package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is a custom type for keys stored in request and Gin contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	// userIDKey is the key used to store the authenticated account's ID.
	userIDKey = contextKey("userID")
	// roleKey is the key used to store the authenticated account's role.
	roleKey = contextKey("role")
	// loggerCtxKey is the key used to store the request-scoped logger.
	loggerCtxKey = contextKey("logger")
)

// GetUserIDFromContext retrieves the authenticated account ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(userIDKey).(string); ok && v != "" {
			return v, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetRoleFromContext retrieves the authenticated account's role from the Gin context.
func GetRoleFromContext(c *gin.Context) (string, bool) {
	if v, ok := c.Get(string(roleKey)); ok {
		role, ok := v.(string)
		return role, ok
	}
	if v, ok := c.Request.Context().Value(roleKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It falls back to slog.Default so callers never need a nil check.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}
