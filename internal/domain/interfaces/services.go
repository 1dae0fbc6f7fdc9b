package interfaces

import (
	domaintypes "pixelvault/internal/domain/types"
)

// PipelineService hides an encrypted payload in a grid and recovers it.
type PipelineService interface {
	Conceal(
		grid *domaintypes.Grid,
		passphrase string,
		plaintext []byte,
	) (*domaintypes.Grid, error)
	Reveal(grid *domaintypes.Grid, passphrase string) ([]byte, error)
	Plan(grid *domaintypes.Grid, plaintextLen int) (domaintypes.CapacityReport, error)
}

// PassphraseService applies the caller-side passphrase policy.
type PassphraseService interface {
	Check(passphrase string) error
}
