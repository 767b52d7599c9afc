// Package fonts resolves a usable font face from a prioritized list of
// candidate font files, with an embedded fallback that never fails.
package fonts

import (
	"fmt"
	"log"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontDPI is the nominal screen resolution used for point-to-pixel
// conversion when building faces.
const fontDPI = 72

// DefaultCandidates returns the candidate font files tried in order.
// Paths for all platforms are listed; missing files are skipped, so the
// same list works everywhere.
func DefaultCandidates() []string {
	return []string{
		"/System/Library/Fonts/Helvetica.ttc",                  // macOS
		"/usr/share/fonts/truetype/freefont/FreeSans.ttf",      // Linux
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",      // Linux
		"C:/Windows/Fonts/arial.ttf",                           // Windows
	}
}

// fallbackNotice keeps the built-in font notice to a single line per
// process, no matter how many loaders the worker pool creates.
var fallbackNotice sync.Once

// Loader selects the first loadable font from its candidate list.
type Loader struct {
	candidates []string
}

// New creates a Loader with the platform default candidates.
func New() *Loader {
	return &Loader{candidates: DefaultCandidates()}
}

// NewWithCandidates creates a Loader trying the given files in order
// before the embedded fallback.
func NewWithCandidates(candidates []string) *Loader {
	return &Loader{candidates: candidates}
}

// Load returns a face at the given point size from the first candidate
// that exists and parses. When none load, it falls back to the embedded
// Go Regular font, which honors the requested size; source is the file
// that was used, or empty for the fallback.
func (l *Loader) Load(size float64) (face font.Face, source string) {
	for _, path := range l.candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		b, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ft, err := opentype.Parse(b)
		if err != nil {
			continue
		}
		f, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: fontDPI, Hinting: font.HintingFull})
		if err != nil {
			continue
		}
		return f, path
	}

	fallbackNotice.Do(func() {
		fmt.Println("note: using built-in font")
	})

	// goregular is embedded and always parses; the bitmap face is a
	// terminal guard so Load can never return nil.
	if ft, err := opentype.Parse(goregular.TTF); err == nil {
		if f, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: fontDPI, Hinting: font.HintingFull}); err == nil {
			return f, ""
		}
	}
	log.Printf("fonts: embedded face unavailable, using bitmap font")
	return basicfont.Face7x13, ""
}
