package interfaces

import (
	domaintypes "pixelvault/internal/domain/types"
)

// ImageStore loads and persists pixel grids.
type ImageStore interface {
	LoadGrid(path string) (*domaintypes.Grid, domaintypes.Format, error)
	SaveGrid(path string, grid *domaintypes.Grid) error
}
