package codec

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates a simple opaque test image
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{100, 150, 200, 255})
		}
	}
	return img
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	c := New()
	dir := t.TempDir()
	img := createTestImage(40, 30)

	for _, name := range []string{"out.png", "out.jpg", "out.jpeg", "out.bmp"} {
		path := filepath.Join(dir, name)
		if err := c.Save(img, path); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}

		loaded, err := c.Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}

		b := loaded.Bounds()
		if b.Dx() != 40 || b.Dy() != 30 {
			t.Errorf("%s: got %dx%d, want 40x30", name, b.Dx(), b.Dy())
		}
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	c := New()
	path := filepath.Join(t.TempDir(), "out.xyz")
	if err := c.Save(createTestImage(10, 10), path); err == nil {
		t.Error("expected error for unsupported output extension")
	}
}

func TestLoadMissingFile(t *testing.T) {
	c := New()
	if _, err := c.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.jpg")
	if err := os.WriteFile(path, []byte("this is not image data"), 0644); err != nil {
		t.Fatal(err)
	}

	c := New()
	if _, err := c.Load(path); err == nil {
		t.Error("expected error for garbage file")
	}
}

func TestFlattenCompositesAlphaOntoWhite(t *testing.T) {
	// Fully transparent source must flatten to pure white.
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	c := New()

	flat := c.Flatten(img)
	r, g, b, a := flat.At(4, 4).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("transparent pixel flattened to %v, want opaque white", flat.At(4, 4))
	}
}

func TestFlattenKeepsOpaquePixels(t *testing.T) {
	c := New()
	flat := c.Flatten(createTestImage(8, 8))

	got := flat.RGBAAt(3, 3)
	want := color.RGBA{100, 150, 200, 255}
	if got != want {
		t.Errorf("opaque pixel changed during flatten: got %v, want %v", got, want)
	}
}

func TestFlattenNormalizesBounds(t *testing.T) {
	// Source with a non-zero origin must produce a zero-origin canvas.
	img := image.NewRGBA(image.Rect(10, 20, 50, 60))
	c := New()

	flat := c.Flatten(img)
	if flat.Bounds().Min != (image.Point{}) {
		t.Errorf("flattened bounds start at %v, want origin", flat.Bounds().Min)
	}
	if flat.Bounds().Dx() != 40 || flat.Bounds().Dy() != 40 {
		t.Errorf("flattened size %dx%d, want 40x40", flat.Bounds().Dx(), flat.Bounds().Dy())
	}
}

func TestNewWithQualityClampsRange(t *testing.T) {
	if c := NewWithQuality(0); c.quality != DefaultJPEGQuality {
		t.Errorf("quality 0 not defaulted, got %d", c.quality)
	}
	if c := NewWithQuality(101); c.quality != DefaultJPEGQuality {
		t.Errorf("quality 101 not defaulted, got %d", c.quality)
	}
	if c := NewWithQuality(75); c.quality != 75 {
		t.Errorf("quality 75 not kept, got %d", c.quality)
	}
}
