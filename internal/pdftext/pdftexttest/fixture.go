// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftexttest generates small PDF files for tests.
package pdftexttest

import (
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders one A4 page per entry of pages, each holding a single
// line of Helvetica text, into dir/name and returns the path.
func WritePDF(t testing.TB, dir, name string, pages ...string) string {
	t.Helper()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		pdf.AddPage()
		pdf.Cell(0, 10, text)
	}

	path := filepath.Join(dir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}
