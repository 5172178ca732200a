package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// LogRejected logs a refused operation. Expected business rejections go to
// debug; anything else is an error.
func (s *BaseService) LogRejected(ctx context.Context, err error, msg string, keyvals ...any) {
	if isBusinessError(err) {
		args := make([]any, 0, len(keyvals)+1)
		args = append(args, slog.String("reason", err.Error()))
		args = append(args, keyvals...)
		s.LogDebug(ctx, msg, args...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

var businessErrors = []error{
	apperrors.ErrNotFound,
	apperrors.ErrValidation,
	apperrors.ErrDuplicate,
	apperrors.ErrUnauthorized,
	apperrors.ErrForbidden,
	apperrors.ErrInsufficientFunds,
	apperrors.ErrInvalidAmount,
	apperrors.ErrInvalidPrice,
	apperrors.ErrNotNegotiable,
	apperrors.ErrInvalidState,
	apperrors.ErrInvalidTransition,
	apperrors.ErrAlreadyResolved,
	apperrors.ErrListingUnavailable,
}

func isBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
