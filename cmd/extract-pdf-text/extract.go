// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/pdf-extract/internal/pdftext"
	"github.com/pdiddy/pdf-extract/internal/sysexec"
	"github.com/pdiddy/pdf-extract/internal/textout"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

// executor runs external backends. Tests replace it.
var executor sysexec.Executor = sysexec.OS{}

// extractCommand acquires the configured backend, extracts inPath and writes
// the text to outPath, printing progress lines to stdout.
func extractCommand(ctx context.Context, cfg types.Config, inPath, outPath string, stdout io.Writer) error {
	ex, err := pdftext.Resolve(ctx, cfg, executor)
	if err != nil {
		return err
	}
	log.Debug().Str("backend", string(ex.Name())).Msg("backend ready")

	fmt.Fprintln(stdout, "Extracting text from", inPath)

	result, err := extractFile(ctx, ex, cfg.Timeout, inPath, outPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d characters to %s\n", result.Characters, outPath)

	if cfg.ReportPath != "" {
		if err := textout.WriteReport(cfg.ReportPath, result); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		log.Debug().Str("report", cfg.ReportPath).Msg("report written")
	}
	return nil
}

// extractFile runs ex on inPath and writes the text to outPath. The output
// is only touched once extraction has succeeded.
func extractFile(ctx context.Context, ex pdftext.Extractor, timeout time.Duration, inPath, outPath string) (types.Result, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := pdftext.Extract(ctx, ex, inPath)
	if err != nil {
		return types.Result{}, err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Int("bytes", len(text)).Msg("text extracted")

	stats, err := textout.Write(outPath, text)
	if err != nil {
		return types.Result{}, err
	}

	return types.Result{
		InputPath:   inPath,
		OutputPath:  outPath,
		Backend:     ex.Name(),
		Characters:  stats.Characters,
		Bytes:       stats.Bytes,
		SHA256:      stats.SHA256,
		ExtractedAt: time.Now().UTC(),
	}, nil
}
