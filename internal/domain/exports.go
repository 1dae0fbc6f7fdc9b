package domain

import (
	interfaces "pixelvault/internal/domain/interfaces"
	types "pixelvault/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Grid           = types.Grid
	SuiteID        = types.SuiteID
	Format         = types.Format
	Fingerprint    = types.Fingerprint
	CapacityReport = types.CapacityReport
	InspectReport  = types.InspectReport
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PipelineService   = interfaces.PipelineService
	PassphraseService = interfaces.PassphraseService
	ImageStore        = interfaces.ImageStore
)

// ChannelsPerPixel is the number of channels per pixel that carry payload bits.
const ChannelsPerPixel = types.ChannelsPerPixel

// NewGrid returns a zeroed grid of the given dimensions.
func NewGrid(width, height int) (*Grid, error) { return types.NewGrid(width, height) }

// DefaultDelimiter marks the end of an embedded payload. Changing it breaks
// compatibility with images produced earlier.
var DefaultDelimiter = []byte("#####")
