// Package annotate draws a text label onto a single image.
//
// For each file the annotator decodes the input, flattens any alpha
// onto an opaque white background, measures the label with the resolved
// font, places it through the layout engine, draws a semi-transparent
// dark backing box plus the text, and encodes the result to the output
// path in the format implied by its extension.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/menta2k/photostamp/pkg/codec"
	"github.com/menta2k/photostamp/pkg/fonts"
	"github.com/menta2k/photostamp/pkg/layout"
	"github.com/menta2k/photostamp/pkg/types"
)

// backingFill is the semi-transparent dark fill drawn behind the label.
var backingFill = color.NRGBA{R: 0, G: 0, B: 0, A: 128}

// Options configures label rendering. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	FontSize float64      // label size in points
	Color    color.NRGBA  // text color, alpha is ignored
	Anchor   types.Anchor // placement zone
	Padding  int          // distance from the nearest edges in pixels
	Quality  int          // JPEG output quality (1-100)

	// FontPaths are font files tried before the platform defaults.
	FontPaths []string
}

// DefaultOptions returns the documented defaults: 30pt white text at
// the bottom-right corner with 10px padding.
func DefaultOptions() Options {
	return Options{
		FontSize: 30,
		Color:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Anchor:   types.AnchorBottomRight,
		Padding:  layout.DefaultPadding,
		Quality:  codec.DefaultJPEGQuality,
	}
}

// Annotator renders labels onto images. The cached font face mutates
// internal state while drawing, so an Annotator is not safe for
// concurrent use; create one per worker.
type Annotator struct {
	codec  *codec.Codec
	loader *fonts.Loader
	opts   Options

	face     font.Face
	faceSize float64
}

// New creates an Annotator with default options.
func New() *Annotator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates an Annotator with the given rendering options.
func NewWithOptions(opts Options) *Annotator {
	loader := fonts.New()
	if len(opts.FontPaths) > 0 {
		loader = fonts.NewWithCandidates(append(append([]string{}, opts.FontPaths...), fonts.DefaultCandidates()...))
	}
	return &Annotator{
		codec:  codec.NewWithQuality(opts.Quality),
		loader: loader,
		opts:   opts,
	}
}

// Options returns the rendering options in effect.
func (a *Annotator) Options() Options {
	return a.opts
}

// Annotate stamps text onto the image at task.Input and writes the
// result to task.Output. Decode, draw and encode errors are returned
// to the caller; the annotator never panics mid-batch.
func (a *Annotator) Annotate(task types.FileTask, text string) error {
	img, err := a.codec.Load(task.Input)
	if err != nil {
		return err
	}

	canvas := a.codec.Flatten(img)
	bounds := canvas.Bounds()

	face := a.resolveFace()
	textW, textH, ascent := measure(face, text)

	p := layout.Compute(bounds.Dx(), bounds.Dy(), textW, textH, a.opts.Anchor, a.opts.Padding)

	draw.Draw(canvas, p.Backing, image.NewUniform(backingFill), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.NRGBA{R: a.opts.Color.R, G: a.opts.Color.G, B: a.opts.Color.B, A: 255}),
		Face: face,
		Dot:  fixed.P(p.X, p.Y+ascent),
	}
	d.DrawString(text)

	if err := a.codec.Save(canvas, task.Output); err != nil {
		return fmt.Errorf("annotate %s: %w", task.Input, err)
	}
	return nil
}

// resolveFace loads the font face once and reuses it across the batch.
func (a *Annotator) resolveFace() font.Face {
	if a.face != nil && a.faceSize == a.opts.FontSize {
		return a.face
	}
	face, _ := a.loader.Load(a.opts.FontSize)
	a.face = face
	a.faceSize = a.opts.FontSize
	return face
}

// measure returns the pixel width and height of text under face, and
// the ascent used to convert the top-left origin into a baseline.
func measure(face font.Face, text string) (w, h, ascent int) {
	d := &font.Drawer{Face: face}
	w = d.MeasureString(text).Ceil()
	m := face.Metrics()
	ascent = m.Ascent.Ceil()
	h = ascent + m.Descent.Ceil()
	return w, h, ascent
}
