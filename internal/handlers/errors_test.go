package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("%w: listing x", apperrors.ErrNotFound), http.StatusNotFound},
		{"invalid amount", apperrors.ErrInvalidAmount, http.StatusBadRequest},
		{"invalid price", apperrors.ErrInvalidPrice, http.StatusBadRequest},
		{"validation", apperrors.ErrValidation, http.StatusBadRequest},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"insufficient funds", fmt.Errorf("debit: %w", apperrors.ErrInsufficientFunds), http.StatusUnprocessableEntity},
		{"already resolved", apperrors.ErrAlreadyResolved, http.StatusConflict},
		{"invalid state", apperrors.ErrInvalidState, http.StatusConflict},
		{"invalid transition", apperrors.ErrInvalidTransition, http.StatusConflict},
		{"listing unavailable", apperrors.ErrListingUnavailable, http.StatusConflict},
		{"not negotiable", apperrors.ErrNotNegotiable, http.StatusConflict},
		{"duplicate", apperrors.ErrDuplicate, http.StatusConflict},
		{"app error code", apperrors.NewAppError(http.StatusServiceUnavailable, "db down", errors.New("dial")), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
