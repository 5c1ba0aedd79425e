package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/covall/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriter_WriteFile(t *testing.T) {
	t.Run("creates parents and writes content", func(t *testing.T) {
		aw := NewAtomicWriter(DefaultAtomicConfig())

		target := filepath.Join(t.TempDir(), "coverage", "css", "app.css")
		require.NoError(t, aw.WriteFile(target, []byte("body{}"), 0o644))

		assert.Equal(t, "body{}", string(readFileBytes(t, target)))
	})

	t.Run("replaces existing content and leaves no temp files", func(t *testing.T) {
		aw := NewAtomicWriter(AtomicWriteConfig{UseFsync: true})

		dir := t.TempDir()
		target := filepath.Join(dir, "coverageFiles.js")
		writeTestFile(t, target, "old")

		require.NoError(t, aw.WriteFile(target, []byte("new"), 0o644))

		assert.Equal(t, "new", string(readFileBytes(t, target)))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("unwritable destination keeps previous content", func(t *testing.T) {
		aw := NewAtomicWriter(DefaultAtomicConfig())

		dir := t.TempDir()
		// a directory in place of the target makes the rename fail
		target := filepath.Join(dir, "out.js")
		mustMkdirAll(t, filepath.Join(target, "child"))

		err := aw.WriteFile(target, []byte("data"), 0o644)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrIO)

		info, statErr := os.Stat(target)
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file should be removed")
	})

	t.Run("parent is a file", func(t *testing.T) {
		aw := NewAtomicWriter(DefaultAtomicConfig())

		dir := t.TempDir()
		blocker := filepath.Join(dir, "coverage")
		writeTestFile(t, blocker, "not a dir")

		err := aw.WriteFile(filepath.Join(blocker, "out.js"), []byte("data"), 0o644)
		assert.ErrorIs(t, err, apperrors.ErrIO)
	})
}
