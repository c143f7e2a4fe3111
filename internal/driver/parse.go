package driver

import (
	"fortio.org/safecast"

	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/lexer"
	"piuml/internal/parser"
	"piuml/internal/source"
)

// ParseResult carries the parsed statement tree and its diagnostics.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse loads path and parses it into a fresh arena set. An error is
// returned only for I/O failures; syntax problems land in the bag.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}
	result := parser.ParseFile(fs, lx, arenas, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: arenas,
		FileID:  result.File,
		Bag:     bag,
	}, nil
}
