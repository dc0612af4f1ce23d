// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/pdf-extract/internal/container"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

const defaultMarkitdownImage = "markitdown:latest"

// MarkitdownExtractor extracts text by piping PDFs through the markitdown
// container image. It depends on a container.Runtime (docker or podman)
// injected at construction time.
type MarkitdownExtractor struct {
	runtime container.Runtime
	image   string
}

// NewMarkitdownExtractor verifies that image exists locally in rt. The
// error wraps ErrMissingDependency when it does not; the image is never
// pulled.
func NewMarkitdownExtractor(ctx context.Context, rt container.Runtime, cfg types.MarkitdownConfig) (*MarkitdownExtractor, error) {
	image := cfg.Image
	if image == "" {
		image = defaultMarkitdownImage
	}
	if err := rt.ImageExists(ctx, image); err != nil {
		return nil, fmt.Errorf("%w: markitdown image not available in %s: %w", ErrMissingDependency, rt.Name(), err)
	}
	return &MarkitdownExtractor{runtime: rt, image: image}, nil
}

func (m *MarkitdownExtractor) Name() types.Backend { return types.BackendMarkitdown }

// Extract streams the PDF at pdfPath into the container and returns what
// the container writes to stdout.
func (m *MarkitdownExtractor) Extract(ctx context.Context, pdfPath string) (string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Run(ctx, m.image, f, &out); err != nil {
		return "", fmt.Errorf("extracting %s with markitdown: %w", pdfPath, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("markitdown produced empty output for %s", pdfPath)
	}

	return out.String(), nil
}
