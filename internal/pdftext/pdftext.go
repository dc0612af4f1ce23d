// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts plain text from PDF files through pluggable
// backends. PDF parsing, layout reconstruction and text ordering are the
// backend's job; this package only selects a backend, checks that it is
// usable, and normalizes the result to valid UTF-8.
package pdftext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

var (
	// ErrMissingDependency reports that the selected backend cannot run in
	// this environment. Nothing is installed on demand.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrInput reports an input path that is missing, not a regular file,
	// or unreadable.
	ErrInput = errors.New("invalid input")

	// ErrExtraction reports a backend failure on the PDF content.
	ErrExtraction = errors.New("extraction failed")
)

// Extractor turns a PDF file into its plain text. The native, pdftotext and
// markitdown backends implement this interface.
type Extractor interface {
	// Name identifies the backend.
	Name() types.Backend

	// Extract reads the PDF at pdfPath and returns its full text.
	Extract(ctx context.Context, pdfPath string) (string, error)
}

// CheckInput verifies that path names a readable regular file.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", ErrInput, path)
		}
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrInput, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
	return f.Close()
}

// Extract checks the input and runs ex on it. Backend failures are wrapped
// with ErrExtraction. The returned text is valid UTF-8.
func Extract(ctx context.Context, ex Extractor, pdfPath string) (string, error) {
	if err := CheckInput(pdfPath); err != nil {
		return "", err
	}
	text, err := ex.Extract(ctx, pdfPath)
	if err != nil {
		// A killed subprocess reports its signal, not the context error.
		if cerr := ctx.Err(); cerr != nil && !errors.Is(err, cerr) {
			err = fmt.Errorf("%w: %w", cerr, err)
		}
		return "", fmt.Errorf("%w: %s backend on %s: %w", ErrExtraction, ex.Name(), pdfPath, err)
	}
	return strings.ToValidUTF8(text, "\uFFFD"), nil
}
