package types

// CapacityReport describes whether a framed payload fits a grid.
type CapacityReport struct {
	Width        int  `json:"width"`
	Height       int  `json:"height"`
	CapacityBits int  `json:"capacity_bits"`
	RequiredBits int  `json:"required_bits"`
	Fits         bool `json:"fits"`
}

// FreeBits is the number of unused channel LSBs after embedding; negative if it does not fit.
func (r CapacityReport) FreeBits() int { return r.CapacityBits - r.RequiredBits }

// InspectReport summarises an image on disk.
type InspectReport struct {
	Path         string `json:"path"`
	Format       Format `json:"format"`
	Lossless     bool   `json:"lossless"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	CapacityBits int    `json:"capacity_bits"`
	Delimited    bool   `json:"delimited"`
	PayloadBytes int    `json:"payload_bytes,omitempty"`
	Suite        string `json:"suite,omitempty"` // cipher suite detected from the payload header
}
