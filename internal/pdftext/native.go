// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

// NativeExtractor reads PDFs with the pure-Go github.com/ledongthuc/pdf
// reader. It is linked into the binary and is always available.
type NativeExtractor struct{}

// NewNativeExtractor returns the built-in extractor.
func NewNativeExtractor() *NativeExtractor {
	return &NativeExtractor{}
}

func (n *NativeExtractor) Name() types.Backend { return types.BackendNative }

// Extract returns the plain text of every page in page order, one newline
// between pages. Pages without a page object are skipped.
func (n *NativeExtractor) Extract(ctx context.Context, pdfPath string) (text string, err error) {
	// The reader panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF %s: %v", pdfPath, r)
		}
	}()

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var b strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("reading page %d of %s: %w", i, pdfPath, err)
		}
		b.WriteString(pageText)
		if i < numPages {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
