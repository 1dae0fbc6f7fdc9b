package store

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // cover only
	_ "image/jpeg" // cover only
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"pixelvault/internal/domain"
)

const (
	// imageFileMode is the permission given to saved images.
	imageFileMode = 0o644

	qoiMagic = "qoif"
)

// ImageFileStore loads and saves pixel grids as image files.
type ImageFileStore struct{}

// NewImageFileStore returns an image store rooted nowhere; paths are used as given.
func NewImageFileStore() *ImageFileStore { return &ImageFileStore{} }

// LoadGrid decodes the image at path and reports the detected format.
func (s *ImageFileStore) LoadGrid(path string) (*domain.Grid, domain.Format, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	img, format, err := decode(b)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	g, err := gridFromImage(img)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return g, format, nil
}

// LoadLossless is LoadGrid restricted to formats that preserve every channel
// value. A JPEG or GIF cannot carry an embedded payload and yields
// domain.ErrUnsupportedFormat.
func (s *ImageFileStore) LoadLossless(path string) (*domain.Grid, domain.Format, error) {
	g, format, err := s.LoadGrid(path)
	if err != nil {
		return nil, "", err
	}
	if !format.Lossless() {
		return nil, "", fmt.Errorf("%w: %s is %s", domain.ErrUnsupportedFormat, path, format)
	}
	return g, format, nil
}

// SaveGrid encodes grid in the lossless format named by path's extension.
func (s *ImageFileStore) SaveGrid(path string, grid *domain.Grid) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := encode(&buf, imageFromGrid(grid), format); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return writeFile(path, buf.Bytes(), imageFileMode)
}

// FormatForPath maps a file extension to a format SaveGrid can write.
func FormatForPath(path string) (domain.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	case ".qoi":
		return "qoi", nil
	}
	if ext == "" {
		ext = "(none)"
	}
	return "", fmt.Errorf("%w: cannot save %q images; use .png, .bmp, .tiff or .qoi", domain.ErrUnsupportedFormat, ext)
}

func decode(b []byte) (image.Image, domain.Format, error) {
	if bytes.HasPrefix(b, []byte(qoiMagic)) {
		img, err := qoi.Decode(bytes.NewReader(b))
		return img, "qoi", err
	}
	img, name, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		if err == image.ErrFormat {
			return nil, "", fmt.Errorf("%w: %v", domain.ErrUnsupportedFormat, err)
		}
		return nil, "", err
	}
	return img, domain.Format(name), nil
}

func encode(w io.Writer, img image.Image, format domain.Format) error {
	switch format {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "qoi":
		return qoi.Encode(w, img)
	}
	return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
}

// Compile-time assertion that ImageFileStore implements domain.ImageStore.
var _ domain.ImageStore = (*ImageFileStore)(nil)
