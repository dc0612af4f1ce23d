// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textout writes extracted text and run reports to disk.
package textout

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrOutput reports that the destination could not be written.
var ErrOutput = errors.New("cannot write output")

// Stats describes text written by Write.
type Stats struct {
	// Characters is the number of Unicode code points.
	Characters int
	// Bytes is the UTF-8 encoded size.
	Bytes int
	// SHA256 is the hex digest of the content.
	SHA256 string
}

// StatsOf computes the statistics Write reports for text.
func StatsOf(text string) Stats {
	sum := sha256.Sum256([]byte(text))
	return Stats{
		Characters: utf8.RuneCountInString(text),
		Bytes:      len(text),
		SHA256:     hex.EncodeToString(sum[:]),
	}
}

// Write opens path for writing, creating or truncating it, and writes
// text. Symlinks are followed and an existing file keeps its mode. The
// parent directory must already exist.
func Write(path, text string) (Stats, error) {
	if err := writeFile(path, []byte(text)); err != nil {
		return Stats{}, err
	}
	return StatsOf(text), nil
}

func writeFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrOutput, path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrOutput, path, err)
	}
	return nil
}
