// Package layout computes label placement on an image canvas.
//
// Compute is a pure function of its inputs: given the canvas and text
// dimensions, an anchor and a padding, it returns the text origin and
// the backing rectangle drawn behind the text. It performs no I/O.
package layout

import (
	"image"

	"github.com/menta2k/photostamp/pkg/types"
)

const (
	// DefaultPadding is the distance in pixels between the label and
	// the nearest image edges.
	DefaultPadding = 10

	// BackingInset is how far the backing rectangle extends beyond the
	// text bounding box on every side.
	BackingInset = 2
)

// Compute returns the placement for a label of textW x textH pixels on
// a canvasW x canvasH canvas. Unknown anchors are treated as
// bottom-right. When the text is larger than the canvas the origin may
// be negative; callers rely on draw-time clipping rather than clamping
// here.
func Compute(canvasW, canvasH, textW, textH int, anchor types.Anchor, padding int) types.Placement {
	var x, y int
	switch anchor {
	case types.AnchorTopLeft:
		x, y = padding, padding
	case types.AnchorTopRight:
		x, y = canvasW-textW-padding, padding
	case types.AnchorBottomLeft:
		x, y = padding, canvasH-textH-padding
	case types.AnchorCenter:
		x, y = (canvasW-textW)/2, (canvasH-textH)/2
	default: // bottom_right, including unknown anchors
		x, y = canvasW-textW-padding, canvasH-textH-padding
	}

	return types.Placement{
		X:       x,
		Y:       y,
		Backing: image.Rect(x-BackingInset, y-BackingInset, x+textW+BackingInset, y+textH+BackingInset),
	}
}
