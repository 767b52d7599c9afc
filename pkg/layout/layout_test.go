package layout

import (
	"image"
	"testing"

	"github.com/menta2k/photostamp/pkg/types"
)

func TestComputeAnchors(t *testing.T) {
	const (
		canvasW = 800
		canvasH = 600
		textW   = 120
		textH   = 30
		padding = 10
	)

	tests := []struct {
		anchor types.Anchor
		wantX  int
		wantY  int
	}{
		{types.AnchorTopLeft, 10, 10},
		{types.AnchorTopRight, 800 - 120 - 10, 10},
		{types.AnchorBottomLeft, 10, 600 - 30 - 10},
		{types.AnchorBottomRight, 800 - 120 - 10, 600 - 30 - 10},
		{types.AnchorCenter, (800 - 120) / 2, (600 - 30) / 2},
	}

	for _, tt := range tests {
		p := Compute(canvasW, canvasH, textW, textH, tt.anchor, padding)
		if p.X != tt.wantX || p.Y != tt.wantY {
			t.Errorf("%s: got origin (%d,%d), want (%d,%d)", tt.anchor, p.X, p.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestComputeUnknownAnchorFallsBackToBottomRight(t *testing.T) {
	want := Compute(800, 600, 120, 30, types.AnchorBottomRight, 10)
	got := Compute(800, 600, 120, 30, types.Anchor("garbage"), 10)

	if got != want {
		t.Errorf("unknown anchor: got %+v, want bottom_right placement %+v", got, want)
	}
}

func TestComputeBackingContainsText(t *testing.T) {
	sizes := []struct {
		canvasW, canvasH int
		textW, textH     int
	}{
		{800, 600, 120, 30},
		{100, 100, 50, 12},
		{1920, 1080, 300, 60},
		{64, 64, 10, 8},
	}

	for _, s := range sizes {
		for _, anchor := range types.Anchors() {
			p := Compute(s.canvasW, s.canvasH, s.textW, s.textH, anchor, DefaultPadding)
			textBox := image.Rect(p.X, p.Y, p.X+s.textW, p.Y+s.textH)

			if !textBox.In(p.Backing) {
				t.Errorf("%s %dx%d: text box %v not contained in backing %v",
					anchor, s.canvasW, s.canvasH, textBox, p.Backing)
			}

			// The backing must extend exactly BackingInset beyond the text
			if p.Backing.Min.X != p.X-BackingInset || p.Backing.Min.Y != p.Y-BackingInset ||
				p.Backing.Max.X != p.X+s.textW+BackingInset || p.Backing.Max.Y != p.Y+s.textH+BackingInset {
				t.Errorf("%s: backing %v does not expand text by %d on all sides", anchor, p.Backing, BackingInset)
			}
		}
	}
}

func TestComputeIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		a := Compute(800, 600, 120, 30, types.AnchorCenter, DefaultPadding)
		b := Compute(800, 600, 120, 30, types.AnchorCenter, DefaultPadding)
		if a != b {
			t.Fatalf("identical inputs produced different placements: %+v vs %+v", a, b)
		}
	}
}

func TestComputeOversizedTextIsNotClamped(t *testing.T) {
	// Text wider than the canvas produces a negative origin; this is a
	// defined edge case and must not be clamped.
	p := Compute(100, 100, 300, 30, types.AnchorBottomRight, DefaultPadding)
	if p.X >= 0 {
		t.Errorf("expected negative X for oversized text, got %d", p.X)
	}
}
