package model

import (
	"fmt"

	"github.com/freedakipad/shiftsolve/pkg/apperr"
)

// errDemandShape wraps a formatted message as an invalid-input AppError.
// scheduler.New returns it unchanged when a demand matrix fails Validate, so
// construction never starts.
func errDemandShape(format string, args ...any) error {
	return apperr.New(apperr.CodeInvalidInput, fmt.Sprintf(format, args...))
}
