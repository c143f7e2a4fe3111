package main

import (
	"testing"

	"piuml/internal/render"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		in     string
		format render.Format
		want   string
	}{
		{"diagram.pml", render.SVG, "diagram.svg"},
		{"dir/sub/model.pml", render.PDF, "dir/sub/model.pdf"},
		{"noext", render.PNG, "noext.png"},
		{"two.dots.pml", render.SVG, "two.dots.svg"},
	}
	for _, tc := range cases {
		if got := outputPath(tc.in, tc.format); got != tc.want {
			t.Errorf("outputPath(%q, %s) = %q, want %q", tc.in, tc.format, got, tc.want)
		}
	}
}
