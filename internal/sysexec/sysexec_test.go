// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sysexec

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestOSLookPath(t *testing.T) {
	requireShell(t)

	path, err := OS{}.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = OS{}.LookPath("definitely-not-a-real-binary-3f9a")
	assert.Error(t, err)
}

func TestOSRunSilent(t *testing.T) {
	sh := requireShell(t)
	ctx := context.Background()

	assert.NoError(t, OS{}.RunSilent(ctx, sh, "-c", "exit 0"))
	assert.Error(t, OS{}.RunSilent(ctx, sh, "-c", "exit 3"))
}

func TestOSRunPiped(t *testing.T) {
	sh := requireShell(t)
	ctx := context.Background()

	t.Run("stdin to stdout", func(t *testing.T) {
		var out bytes.Buffer
		err := OS{}.RunPiped(ctx, sh, []string{"-c", "cat"}, strings.NewReader("piped text"), &out)
		require.NoError(t, err)
		assert.Equal(t, "piped text", out.String())
	})

	t.Run("stderr included in error", func(t *testing.T) {
		var out bytes.Buffer
		err := OS{}.RunPiped(ctx, sh, []string{"-c", "echo broken >&2; exit 1"}, nil, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("cancelled context stops the command", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		var out bytes.Buffer
		err := OS{}.RunPiped(cctx, sh, []string{"-c", "sleep 5"}, nil, &out)
		assert.Error(t, err)
	})
}
