package adapter

import (
	"os"
	"path/filepath"

	"github.com/mouse-blink/covall/internal/apperrors"
)

// AtomicWriteConfig controls atomic writing behavior.
type AtomicWriteConfig struct {
	UseFsync   bool   // flush the temp file before the rename
	TempSuffix string // suffix for temporary files
}

// DefaultAtomicConfig returns the settings used by the CLI.
func DefaultAtomicConfig() AtomicWriteConfig {
	return AtomicWriteConfig{
		UseFsync:   false,
		TempSuffix: ".covall.tmp",
	}
}

// AtomicWriter writes a file through a sibling temp file and a rename, so the
// destination is either the previous content or the complete new content.
type AtomicWriter struct {
	config AtomicWriteConfig
}

// NewAtomicWriter creates a new atomic writer.
func NewAtomicWriter(config AtomicWriteConfig) *AtomicWriter {
	if config.TempSuffix == "" {
		config.TempSuffix = DefaultAtomicConfig().TempSuffix
	}

	return &AtomicWriter{config: config}
}

// WriteFile atomically replaces path with content. Parent directories are
// created when missing.
func (aw *AtomicWriter) WriteFile(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &apperrors.IOError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*"+aw.config.TempSuffix)
	if err != nil {
		return &apperrors.IOError{Op: "create", Path: path, Err: err}
	}

	tmpPath := tmp.Name()

	fail := func(op string, err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return &apperrors.IOError{Op: op, Path: path, Err: err}
	}

	if _, err := tmp.Write(content); err != nil {
		return fail("write", err)
	}

	if aw.config.UseFsync {
		if err := tmp.Sync(); err != nil {
			return fail("sync", err)
		}
	}

	if err := tmp.Chmod(perm); err != nil {
		return fail("chmod", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)

		return &apperrors.IOError{Op: "close", Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)

		return &apperrors.IOError{Op: "rename", Path: path, Err: err}
	}

	return nil
}
