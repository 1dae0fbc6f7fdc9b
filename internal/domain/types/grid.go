package types

import (
	"errors"
	"fmt"
)

// ChannelsPerPixel is the number of colour channels carried per pixel (R, G, B).
const ChannelsPerPixel = 3

// ErrMalformedInput is wrapped by Validate failures.
var ErrMalformedInput = errors.New("malformed input")

// Grid is a decoded image reduced to three 8-bit channels per pixel.
//
// Pix holds Width*Height RGB triples in row-major order: the pixel at (x, y)
// starts at offset (y*Width+x)*3.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrid returns a zeroed grid of the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrMalformedInput, width, height)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*ChannelsPerPixel),
	}, nil
}

// Validate reports whether the dimensions agree with the pixel buffer.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrMalformedInput)
	}
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrMalformedInput, g.Width, g.Height)
	}
	if want := g.Width * g.Height * ChannelsPerPixel; len(g.Pix) != want {
		return fmt.Errorf("%w: %dx%d needs %d channel values, have %d",
			ErrMalformedInput, g.Width, g.Height, want, len(g.Pix))
	}
	return nil
}

// Offset returns the index of the R channel of pixel (x, y).
func (g *Grid) Offset(x, y int) int { return (y*g.Width + x) * ChannelsPerPixel }

// RGB returns the channel values of pixel (x, y).
func (g *Grid) RGB(x, y int) (r, gr, b uint8) {
	i := g.Offset(x, y)
	return g.Pix[i], g.Pix[i+1], g.Pix[i+2]
}

// SetRGB overwrites the channel values of pixel (x, y).
func (g *Grid) SetRGB(x, y int, r, gr, b uint8) {
	i := g.Offset(x, y)
	g.Pix[i], g.Pix[i+1], g.Pix[i+2] = r, gr, b
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Pix:    append([]uint8(nil), g.Pix...),
	}
}
