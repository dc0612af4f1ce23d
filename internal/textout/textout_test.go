// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

func TestStatsOf(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantChars int
		wantBytes int
	}{
		{name: "empty", text: "", wantChars: 0, wantBytes: 0},
		{name: "ascii", text: "Hello World\n", wantChars: 12, wantBytes: 12},
		{name: "multibyte", text: "naïve café", wantChars: 10, wantBytes: 12},
		{name: "cjk", text: "文字", wantChars: 2, wantBytes: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatsOf(tt.text)
			assert.Equal(t, tt.wantChars, got.Characters)
			assert.Equal(t, tt.wantBytes, got.Bytes)
			assert.Len(t, got.SHA256, 64)
		})
	}
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		StatsOf("").SHA256)
}

func TestWrite(t *testing.T) {
	t.Run("creates file with exact content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		stats, err := Write(path, "Hello World\n")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Hello World\n", string(data))
		assert.Equal(t, 12, stats.Characters)
	})

	t.Run("truncates existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("a much longer previous content"), 0o644))

		_, err := Write(path, "short")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "short", string(data))
	})

	t.Run("writes empty text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		stats, err := Write(path, "")
		require.NoError(t, err)
		assert.Zero(t, stats.Characters)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("missing parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")
		_, err := Write(path, "text")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutput))
		assert.Contains(t, err.Error(), path)
	})

	t.Run("writes through a symlink", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "real.txt")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))
		link := filepath.Join(dir, "link.txt")
		require.NoError(t, os.Symlink(target, link))

		_, err := Write(link, "Hello World\n")
		require.NoError(t, err)

		info, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink, "link must remain a symlink")

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "Hello World\n", string(data))
	})

	t.Run("keeps mode of existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
		require.NoError(t, os.Chmod(path, 0o600))

		_, err := Write(path, "new")
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("writes to a character device", func(t *testing.T) {
		info, err := os.Stat(os.DevNull)
		if err != nil || info.Mode()&os.ModeCharDevice == 0 {
			t.Skip("no character device null")
		}

		_, err = Write(os.DevNull, "discarded")
		require.NoError(t, err)

		info, err = os.Stat(os.DevNull)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeCharDevice, "device must not be replaced")
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Write(filepath.Join(dir, "out.txt"), "text")
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "out.txt", entries[0].Name())
	})

	t.Run("identical runs produce identical files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		first, err := Write(path, "deterministic\n")
		require.NoError(t, err)
		firstData, err := os.ReadFile(path)
		require.NoError(t, err)

		second, err := Write(path, "deterministic\n")
		require.NoError(t, err)
		secondData, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, firstData, secondData)
		assert.Equal(t, first.SHA256, second.SHA256)
	})
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	result := types.Result{
		InputPath:   "in.pdf",
		OutputPath:  "out.txt",
		Backend:     types.BackendNative,
		Characters:  12,
		Bytes:       12,
		SHA256:      "abc",
		ExtractedAt: at,
	}

	require.NoError(t, WriteReport(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: native")
	assert.Contains(t, string(data), "characters: 12")

	var got types.Result
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.True(t, at.Equal(got.ExtractedAt), "extracted_at = %v, want %v", got.ExtractedAt, at)
	got.ExtractedAt = at
	assert.Equal(t, result, got)
}
