package types

import "image"

// Anchor names a placement zone for the label: one of the four corners
// or the center of the image.
type Anchor string

// Supported anchors. Unknown anchors fall back to AnchorBottomRight at
// layout time.
const (
	AnchorTopLeft     Anchor = "top_left"
	AnchorTopRight    Anchor = "top_right"
	AnchorBottomLeft  Anchor = "bottom_left"
	AnchorBottomRight Anchor = "bottom_right"
	AnchorCenter      Anchor = "center"
)

// Anchors returns all supported anchors in display order.
func Anchors() []Anchor {
	return []Anchor{
		AnchorTopLeft,
		AnchorTopRight,
		AnchorBottomLeft,
		AnchorBottomRight,
		AnchorCenter,
	}
}

// ParseAnchor maps a string to an Anchor. Returns false for anything
// that is not a supported anchor name.
func ParseAnchor(s string) (Anchor, bool) {
	switch Anchor(s) {
	case AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight, AnchorCenter:
		return Anchor(s), true
	}
	return "", false
}

// Placement is the computed position for a label on a canvas.
// X,Y is the top-left corner of the text bounding box; Backing is the
// filled rectangle drawn behind the text to keep it legible.
type Placement struct {
	X       int
	Y       int
	Backing image.Rectangle
}

// FileTask pairs one input image with its resolved output path.
type FileTask struct {
	Input  string
	Output string
}
