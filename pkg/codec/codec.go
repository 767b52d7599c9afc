// Package codec wraps image decoding and encoding for the annotator.
package codec

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used when no quality is configured.
const DefaultJPEGQuality = 90

// Codec loads and saves raster images. Formats are selected by file
// extension on save and sniffed from content on load.
type Codec struct {
	quality int
}

// New creates a Codec with the default JPEG quality.
func New() *Codec {
	return NewWithQuality(DefaultJPEGQuality)
}

// NewWithQuality creates a Codec encoding JPEG output at the given
// quality (1-100). Values outside that range fall back to the default.
func NewWithQuality(quality int) *Codec {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &Codec{quality: quality}
}

// Load decodes the image at path. It tries the registered decoders
// first and falls back to an explicit WebP decode for files whose
// extension does not match their content.
func (c *Codec) Load(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("decode image %s: unknown format", path)
}

// Flatten composites img onto an opaque white background and returns
// an RGBA canvas suitable for drawing. Any alpha in the source is
// resolved against white; fully opaque images copy through unchanged.
func (c *Codec) Flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	return dst
}

// Save encodes img to path, choosing the format from the extension.
// An existing file at path is overwritten.
func (c *Codec) Save(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(c.quality)); err != nil {
		return fmt.Errorf("save image %s: %w", path, err)
	}
	return nil
}
