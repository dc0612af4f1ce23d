// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Backend identifies the text extraction capability.
type Backend string

const (
	BackendNative     Backend = "native"
	BackendPdftotext  Backend = "pdftotext"
	BackendMarkitdown Backend = "markitdown"
	BackendAuto       Backend = "auto"
)

// Backends lists every backend name accepted on the command line.
var Backends = []Backend{BackendNative, BackendPdftotext, BackendMarkitdown, BackendAuto}

// PdftotextConfig holds settings for the poppler pdftotext backend.
type PdftotextConfig struct {
	// Path is the pdftotext binary name or absolute path (default "pdftotext").
	Path string `json:"path" yaml:"path"`

	// Layout passes -layout to preserve the physical page layout.
	Layout bool `json:"layout" yaml:"layout"`
}

// MarkitdownConfig holds settings for the container-based markitdown backend.
type MarkitdownConfig struct {
	// Image is the container image to run (default "markitdown:latest").
	Image string `json:"image" yaml:"image"`
}

// Config holds the settings for a single extraction run.
type Config struct {
	// Backend selects the extraction capability.
	Backend Backend `json:"backend" yaml:"backend"`

	Pdftotext  PdftotextConfig  `json:"pdftotext" yaml:"pdftotext"`
	Markitdown MarkitdownConfig `json:"markitdown" yaml:"markitdown"`

	// ReportPath, when set, receives a YAML report of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`

	// Timeout bounds the extraction step. Zero disables the bound.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}
