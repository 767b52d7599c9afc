// Package photostamp annotates photographs with a visible capture-date
// label read from their EXIF metadata.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/menta2k/photostamp"
//	)
//
//	func main() {
//		stamper := photostamp.New()
//
//		// Annotate every supported image in a directory. Outputs go
//		// to a sibling "<dirname>_watermark" directory.
//		result, err := stamper.Run("./photos")
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(result.Summary())
//	}
//
// The package consists of four main components:
//
// 1. Resolver (pkg/exifdate): extracts capture dates from EXIF tags
// 2. Layout (pkg/layout): pure placement math for the label and its backing box
// 3. Annotator (pkg/annotate): decodes, draws and encodes one image
// 4. Orchestrator (pkg/batch): discovery, naming and batch accounting
//
// Labels are placed at a configurable corner or the center of the
// image over a semi-transparent dark backing box so they stay legible
// regardless of the underlying content. Images lacking a capture date
// are stamped with the current date instead.
package photostamp

import (
	"github.com/menta2k/photostamp/pkg/annotate"
	"github.com/menta2k/photostamp/pkg/batch"
	"github.com/menta2k/photostamp/pkg/exifdate"
	"github.com/menta2k/photostamp/pkg/types"
)

// Version of the photostamp tool, printed in the terminal report.
const Version = "1.0"

// Stamper provides a high-level interface combining date resolution,
// annotation and batch orchestration.
type Stamper struct {
	resolver     *exifdate.Resolver
	annotator    *annotate.Annotator
	orchestrator *batch.Orchestrator
}

// New creates a Stamper with default configuration.
func New() *Stamper {
	return NewWithOptions(annotate.DefaultOptions(), batch.DefaultOptions())
}

// NewWithOptions creates a Stamper rendering with aopts and running
// batches with bopts.
func NewWithOptions(aopts annotate.Options, bopts batch.Options) *Stamper {
	return &Stamper{
		resolver:     exifdate.New(),
		annotator:    annotate.NewWithOptions(aopts),
		orchestrator: batch.NewWithOptions(aopts, bopts),
	}
}

// ResolveDate returns the capture date of the image at path as
// YYYY-MM-DD, or false when no usable metadata exists.
func (s *Stamper) ResolveDate(path string) (string, bool) {
	return s.resolver.Resolve(path)
}

// AnnotateFile stamps text onto a single image, writing the result to
// outputPath in the format implied by its extension.
func (s *Stamper) AnnotateFile(inputPath, outputPath, text string) error {
	return s.annotator.Annotate(types.FileTask{Input: inputPath, Output: outputPath}, text)
}

// Run processes the file or directory at path and reports the
// aggregate counts. See batch.Orchestrator.Run.
func (s *Stamper) Run(path string) (batch.BatchResult, error) {
	return s.orchestrator.Run(path)
}

// GetVersion returns the tool version.
func GetVersion() string {
	return Version
}
