// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/pdf-extract/internal/container"
	"github.com/pdiddy/pdf-extract/internal/sysexec"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

// Resolve acquires the extraction capability named by cfg.Backend. An
// empty backend selects native. The auto backend prefers pdftotext and
// falls back to native when pdftotext is not installed.
func Resolve(ctx context.Context, cfg types.Config, exec sysexec.Executor) (Extractor, error) {
	switch cfg.Backend {
	case types.BackendNative, "":
		return NewNativeExtractor(), nil

	case types.BackendPdftotext:
		return NewPdftotextExtractor(cfg.Pdftotext, exec)

	case types.BackendMarkitdown:
		rt, err := container.Detect(ctx, exec)
		if err != nil {
			return nil, fmt.Errorf("%w: markitdown backend needs docker or podman: %w", ErrMissingDependency, err)
		}
		log.Debug().Str("runtime", rt.Name()).Msg("container runtime detected")
		return NewMarkitdownExtractor(ctx, rt, cfg.Markitdown)

	case types.BackendAuto:
		p, err := NewPdftotextExtractor(cfg.Pdftotext, exec)
		if err == nil {
			return p, nil
		}
		log.Debug().Err(err).Msg("pdftotext unavailable, using native backend")
		return NewNativeExtractor(), nil

	default:
		return nil, fmt.Errorf("unknown backend %q (valid: %v)", cfg.Backend, types.Backends)
	}
}
