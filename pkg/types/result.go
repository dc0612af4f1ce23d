// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Result describes a completed extraction run.
type Result struct {
	// InputPath is the PDF that was read.
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is the text file that was written.
	OutputPath string `json:"output" yaml:"output"`

	// Backend is the capability that produced the text.
	Backend Backend `json:"backend" yaml:"backend"`

	// Characters is the number of Unicode code points written.
	Characters int `json:"characters" yaml:"characters"`

	// Bytes is the size of the written file.
	Bytes int `json:"bytes" yaml:"bytes"`

	// SHA256 is the hex digest of the written content.
	SHA256 string `json:"sha256" yaml:"sha256"`

	// ExtractedAt is when the output was written (UTC).
	ExtractedAt time.Time `json:"extracted_at" yaml:"extracted_at"`
}
