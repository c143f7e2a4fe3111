package driver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"piuml/internal/align"
	"piuml/internal/diag"
	"piuml/internal/layout"
	"piuml/internal/source"
	"piuml/internal/style"
	"piuml/internal/uml"
)

// Options tunes one compilation run.
type Options struct {
	// MaxDiagnostics caps the bag; 0 falls back to DefaultMaxDiagnostics.
	MaxDiagnostics int
	// Sheet overrides the default style values.
	Sheet *style.Sheet
	// Logger receives stage progress at debug level. Nil disables it.
	Logger *log.Logger
	// IfaceID overrides the folded interface id generator, mainly for
	// deterministic test output.
	IfaceID func() string
}

const DefaultMaxDiagnostics = 64

// Model is the fully compiled form of one source file, the payload the
// renderers and the dump command consume.
type Model struct {
	Path      string         `json:"path"`
	Diagram   *uml.Diagram   `json:"diagram"`
	Alignment *align.Result  `json:"alignment"`
	Layout    *layout.Result `json:"layout"`
}

// CompileResult is the outcome of one file. Model is nil unless every
// stage succeeded; Bag holds whatever diagnostics were produced either
// way.
type CompileResult struct {
	FileSet *source.FileSet
	File    *source.File
	Model   *Model
	Bag     *diag.Bag
}

// OK reports whether the file compiled cleanly enough to have a model.
func (r *CompileResult) OK() bool {
	return r.Model != nil
}

// Compile runs the whole pipeline on one file. Stages run in order and
// the first failing stage stops the run: parse, model build, alignment
// resolution, layout. An error is returned only for I/O failures.
func Compile(path string, opts Options) (*CompileResult, error) {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = DefaultMaxDiagnostics
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	start := time.Now()
	pres, err := Parse(path, opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}
	res := &CompileResult{
		FileSet: pres.FileSet,
		File:    pres.File,
		Bag:     pres.Bag,
	}
	logger.Debug("parsed", "path", path, "diagnostics", pres.Bag.Len(), "elapsed", time.Since(start))
	if pres.Bag.HasErrors() {
		return res, nil
	}

	reporter := &diag.BagReporter{Bag: pres.Bag}

	d, ok := uml.Build(pres.Builder, pres.FileID, uml.Options{
		Reporter: reporter,
		IfaceID:  opts.IfaceID,
	})
	logger.Debug("model built", "path", path, "ok", ok)
	if !ok {
		return res, nil
	}

	ar, ok := align.Resolve(d, align.Default(), align.Options{Reporter: reporter})
	logger.Debug("alignment resolved", "path", path, "ok", ok, "groups", len(ar.Groups))
	if !ok {
		return res, nil
	}

	lres, ok := layout.Compute(d, ar, layout.Options{
		Reporter: reporter,
		Sheet:    opts.Sheet,
	})
	logger.Debug("layout solved", "path", path, "ok", ok, "elapsed", time.Since(start))
	if !ok {
		return res, nil
	}

	res.Model = &Model{
		Path:      path,
		Diagram:   d,
		Alignment: ar,
		Layout:    lres,
	}
	return res, nil
}
