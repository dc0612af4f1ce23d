// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdf-extract/internal/sysexec"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

const defaultPdftotext = "pdftotext"

// PdftotextExtractor runs the poppler pdftotext binary and captures its
// standard output.
type PdftotextExtractor struct {
	bin    string
	layout bool
	exec   sysexec.Executor
}

// NewPdftotextExtractor resolves the pdftotext binary and returns an
// extractor for it. The error wraps ErrMissingDependency when the binary
// cannot be found.
func NewPdftotextExtractor(cfg types.PdftotextConfig, exec sysexec.Executor) (*PdftotextExtractor, error) {
	name := cfg.Path
	if name == "" {
		name = defaultPdftotext
	}
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: pdftotext binary %q not found (install poppler-utils or set --pdftotext): %w",
			ErrMissingDependency, name, err)
	}
	return &PdftotextExtractor{bin: bin, layout: cfg.Layout, exec: exec}, nil
}

func (p *PdftotextExtractor) Name() types.Backend { return types.BackendPdftotext }

// Extract runs pdftotext with UTF-8 output and Unix line endings, writing
// the text to stdout.
func (p *PdftotextExtractor) Extract(ctx context.Context, pdfPath string) (string, error) {
	args := []string{"-q", "-enc", "UTF-8", "-eol", "unix"}
	if p.layout {
		args = append(args, "-layout")
	}
	args = append(args, argPath(pdfPath), "-")

	var out bytes.Buffer
	if err := p.exec.RunPiped(ctx, p.bin, args, nil, &out); err != nil {
		return "", fmt.Errorf("pdftotext failed for %s: %w", pdfPath, err)
	}
	return out.String(), nil
}

// argPath keeps a relative path that begins with "-" from being read as an
// option by the external tool.
func argPath(path string) string {
	if strings.HasPrefix(path, "-") {
		return "." + string(filepath.Separator) + path
	}
	return path
}
