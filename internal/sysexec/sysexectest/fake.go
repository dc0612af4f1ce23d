// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sysexectest provides a scripted sysexec.Executor for tests.
package sysexectest

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Fake records calls and returns configured responses.
type Fake struct {
	// Bins lists binaries for which LookPath succeeds.
	Bins map[string]bool

	// Silent lists "bin arg1 arg2" command lines for which RunSilent succeeds.
	Silent map[string]bool

	// Piped handles RunPiped. A nil Piped succeeds without output.
	Piped func(name string, args []string, stdin io.Reader, stdout io.Writer) error

	// Block makes RunPiped wait until its context is done.
	Block bool

	// Calls records every command line that was run, in order.
	Calls []string
}

func (f *Fake) LookPath(file string) (string, error) {
	if f.Bins[file] {
		if strings.HasPrefix(file, "/") {
			return file, nil
		}
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("executable file not found in $PATH: " + file)
}

func (f *Fake) RunSilent(_ context.Context, name string, args ...string) error {
	key := commandLine(name, args)
	f.Calls = append(f.Calls, key)
	if f.Silent[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (f *Fake) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	f.Calls = append(f.Calls, commandLine(name, args))
	if f.Block {
		<-ctx.Done()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.Piped != nil {
		return f.Piped(name, args, stdin, stdout)
	}
	return nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
