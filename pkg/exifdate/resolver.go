// Package exifdate extracts a capture date from embedded EXIF metadata.
package exifdate

import (
	"log"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifLayout is the only timestamp format EXIF date tags carry.
const exifLayout = "2006:01:02 15:04:05"

// DateFormat is the normalized calendar-date form returned by Resolve.
const DateFormat = "2006-01-02"

// dateTags are the recognized timestamp tags in priority order.
var dateTags = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
}

// Resolver reads capture dates from image files.
type Resolver struct{}

// New creates a Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve returns the capture date of the image at path as YYYY-MM-DD.
// The second return is false when the file has no readable metadata or
// no recognized tag parses; Resolve never fails the caller. Tags are
// tried in priority order and malformed values are skipped.
func (r *Resolver) Resolve(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("warning: cannot read capture time of %s: %v", path, err)
		return "", false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// No EXIF segment at all (PNG, BMP, stripped JPEG).
		return "", false
	}

	for _, tag := range dateTags {
		field, err := x.Get(tag)
		if err != nil {
			continue
		}
		s, err := field.StringVal()
		if err != nil {
			continue
		}
		if date, ok := dateFromValue(s); ok {
			return date, true
		}
	}
	return "", false
}

// dateFromValue normalizes one EXIF timestamp value to YYYY-MM-DD.
// Only the exact "YYYY:MM:DD HH:MM:SS" pattern is accepted; anything
// else is skipped so the next candidate tag can be tried.
func dateFromValue(s string) (string, bool) {
	t, err := time.Parse(exifLayout, s)
	if err != nil {
		return "", false
	}
	return t.Format(DateFormat), true
}
