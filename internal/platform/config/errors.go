package config

import (
	"fmt"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
)

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: config: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}
