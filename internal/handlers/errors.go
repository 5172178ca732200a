package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"sync"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// errorStatuses maps sentinel errors to HTTP status codes. The first match wins,
// so more specific sentinels come first.
var errorStatuses = []struct {
	err    error
	status int
}{
	{apperrors.ErrNotFound, http.StatusNotFound},
	{apperrors.ErrValidation, http.StatusBadRequest},
	{apperrors.ErrInvalidAmount, http.StatusBadRequest},
	{apperrors.ErrInvalidPrice, http.StatusBadRequest},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized},
	{apperrors.ErrForbidden, http.StatusForbidden},
	{apperrors.ErrInsufficientFunds, http.StatusUnprocessableEntity},
	{apperrors.ErrDuplicate, http.StatusConflict},
	{apperrors.ErrAlreadyResolved, http.StatusConflict},
	{apperrors.ErrInvalidState, http.StatusConflict},
	{apperrors.ErrInvalidTransition, http.StatusConflict},
	{apperrors.ErrListingUnavailable, http.StatusConflict},
	{apperrors.ErrNotNegotiable, http.StatusConflict},
	{apperrors.ErrIdempotencyConflict, http.StatusConflict},
}

// statusFromError returns the HTTP status for err, or 500 for anything unknown.
func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 600 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes err as JSON. Internal failures are logged and hidden
// behind fallback; business rejections are echoed to the client.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
// dgt0 requires a strictly positive decimal.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// Validate decimals through their string form so struct-kind fields still
		// reach the tag functions.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		if err := v.RegisterValidation("dgt0", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			if err != nil {
				return false
			}
			return d.IsPositive()
		}); err != nil {
			slog.Error("Failed to register dgt0 validator", slog.String("error", err.Error()))
		}
	})
}
