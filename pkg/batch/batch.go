// Package batch discovers input images, runs the annotator over each
// one and aggregates the per-file outcomes.
package batch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/menta2k/photostamp/internal/utils"
	"github.com/menta2k/photostamp/pkg/annotate"
	"github.com/menta2k/photostamp/pkg/exifdate"
	"github.com/menta2k/photostamp/pkg/types"
)

// OutputSuffix is inserted before the extension of every output file
// and appended to the output directory name.
const OutputSuffix = "_watermark"

// Failure records one file that could not be processed.
type Failure struct {
	Path   string
	Reason error
}

// BatchResult aggregates the outcome of one run.
type BatchResult struct {
	Total     int
	Succeeded int
	Failures  []Failure
}

// Options configures batch execution.
type Options struct {
	// Workers is the number of files processed concurrently. Values
	// below 1 mean one worker (strictly sequential).
	Workers int
}

// DefaultOptions runs one worker per CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// Orchestrator runs a batch of annotation tasks.
type Orchestrator struct {
	resolver *exifdate.Resolver
	annotate annotate.Options
	opts     Options

	// now supplies the fallback label date; replaced in tests.
	now func() time.Time
}

// New creates an Orchestrator with default options.
func New() *Orchestrator {
	return NewWithOptions(annotate.DefaultOptions(), DefaultOptions())
}

// NewWithOptions creates an Orchestrator rendering with aopts and
// executing with opts.
func NewWithOptions(aopts annotate.Options, opts Options) *Orchestrator {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Orchestrator{
		resolver: exifdate.New(),
		annotate: aopts,
		opts:     opts,
		now:      time.Now,
	}
}

// Discover resolves path into the list of input files and the output
// directory. A directory yields every contained regular file with a
// supported extension (non-recursive); a supported file yields itself.
// An invalid path or an empty candidate set is an error, reported
// before any output is created.
func (o *Orchestrator) Discover(path string) (files []string, outDir string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("invalid image path %s: %w", path, err)
	}

	var baseDir string
	switch {
	case info.IsDir():
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, "", fmt.Errorf("read directory %s: %w", path, err)
		}
		for _, e := range entries {
			if e.IsDir() || !e.Type().IsRegular() {
				continue
			}
			p := filepath.Join(path, e.Name())
			if utils.IsImageFile(p) {
				files = append(files, p)
			}
		}
		baseDir = path
	case utils.IsImageFile(path):
		files = []string{path}
		baseDir = filepath.Dir(path)
	default:
		return nil, "", fmt.Errorf("invalid image path or unsupported format: %s", path)
	}

	if len(files) == 0 {
		return nil, "", fmt.Errorf("no image files found in %s", path)
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		absBase = baseDir
	}
	outDir = filepath.Join(baseDir, filepath.Base(absBase)+OutputSuffix)
	return files, outDir, nil
}

// Run discovers images under path, annotates each with its capture
// date (or today's date when metadata is absent) and reports the
// aggregate counts. Per-file failures are logged and counted but never
// abort the batch; only discovery failures return an error.
func (o *Orchestrator) Run(path string) (BatchResult, error) {
	files, outDir, err := o.Discover(path)
	if err != nil {
		return BatchResult{}, err
	}

	if err := utils.EnsureDir(outDir); err != nil {
		return BatchResult{}, fmt.Errorf("create output directory: %w", err)
	}
	fmt.Printf("info: annotated images will be saved to %s\n", outDir)

	result := BatchResult{Total: len(files)}

	var mu sync.Mutex
	var wg sync.WaitGroup
	jobs := make(chan string)

	workers := o.opts.Workers
	if workers > len(files) {
		workers = len(files)
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			// One annotator per worker: font faces are not
			// goroutine-safe.
			worker := annotate.NewWithOptions(o.annotate)
			for p := range jobs {
				_, err := o.processFile(worker, p, outDir)
				mu.Lock()
				if err != nil {
					result.Failures = append(result.Failures, Failure{Path: p, Reason: err})
				} else {
					result.Succeeded++
				}
				mu.Unlock()
			}
		}()
	}

	for _, p := range files {
		jobs <- p
	}
	close(jobs)
	wg.Wait()

	return result, nil
}

// processFile annotates a single input image into outDir and returns
// the label text that was stamped.
func (o *Orchestrator) processFile(worker *annotate.Annotator, path, outDir string) (string, error) {
	name := filepath.Base(path)
	fmt.Printf("processing: %s\n", name)

	text, ok := o.resolver.Resolve(path)
	if !ok {
		text = o.now().Format(exifdate.DateFormat)
		fmt.Printf("note: no capture time for %s, using current date %s\n", name, text)
	}

	task := types.FileTask{
		Input:  path,
		Output: utils.OutputName(path, outDir, OutputSuffix),
	}

	if err := worker.Annotate(task, text); err != nil {
		log.Printf("error: processing %s failed: %v", name, err)
		return text, err
	}
	fmt.Printf("success: saved %s\n", filepath.Base(task.Output))
	return text, nil
}

// Summary formats the final success/total report line.
func (r BatchResult) Summary() string {
	return fmt.Sprintf("done: %d/%d files annotated", r.Succeeded, r.Total)
}

// String implements fmt.Stringer for logging.
func (f Failure) String() string {
	return fmt.Sprintf("%s: %v", filepath.Base(f.Path), f.Reason)
}
