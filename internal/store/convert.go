package store

import (
	"image"
	"image/color"

	"pixelvault/internal/domain"
)

// gridFromImage copies the R, G and B channels of img into a new grid.
// Alpha is dropped; pixels are read non-premultiplied so opaque images keep
// their exact channel values.
func gridFromImage(img image.Image) (*domain.Grid, error) {
	b := img.Bounds()
	g, err := domain.NewGrid(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	i := 0
	switch src := img.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, y):]
			for x := 0; x < b.Dx(); x++ {
				copy(g.Pix[i:i+3], row[x*4:x*4+3])
				i += 3
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				g.Pix[i], g.Pix[i+1], g.Pix[i+2] = c.R, c.G, c.B
				i += 3
			}
		}
	}
	return g, nil
}

// imageFromGrid returns an opaque NRGBA image holding the grid's channels.
func imageFromGrid(g *domain.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for p := 0; p < g.Width*g.Height; p++ {
		copy(img.Pix[p*4:p*4+3], g.Pix[p*3:p*3+3])
		img.Pix[p*4+3] = 0xff
	}
	return img
}
