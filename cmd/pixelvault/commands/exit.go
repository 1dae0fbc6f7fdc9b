package commands

import (
	"errors"

	"pixelvault/internal/domain"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitNoPayload    = 2
	ExitInvalidToken = 3
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrPayloadNotFound):
		return ExitNoPayload
	case errors.Is(err, domain.ErrInvalidToken):
		return ExitInvalidToken
	}
	return ExitFailure
}
