// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sysexec wraps external process execution behind an interface so
// that backends which shell out (pdftotext, docker, podman) can be tested
// without the binaries installed.
package sysexec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Executor locates and runs external commands.
type Executor interface {
	// LookPath resolves file against PATH, as exec.LookPath does.
	LookPath(file string) (string, error)

	// RunSilent runs the command and discards its output. It returns nil
	// when the command exits with status zero.
	RunSilent(ctx context.Context, name string, args ...string) error

	// RunPiped runs the command with stdin and stdout attached to the given
	// reader and writer. Standard error is captured and included in the
	// returned error when the command fails.
	RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// OS is the production Executor backed by os/exec.
type OS struct{}

func (OS) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (OS) RunSilent(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (OS) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}
