package driver

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FileOutcome pairs one input path with its compilation outcome. Err is
// set for I/O failures only; everything else is in Result.Bag.
type FileOutcome struct {
	Path   string
	Result *CompileResult
	Err    error
}

// CompileFiles compiles every path concurrently. Each file gets its own
// file set and bag, so one bad file never poisons the others; outcomes
// come back in input order.
func CompileFiles(paths []string, opts Options) []FileOutcome {
	outcomes := make([]FileOutcome, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := Compile(path, opts)
			outcomes[i] = FileOutcome{Path: path, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures live in outcomes

	return outcomes
}
