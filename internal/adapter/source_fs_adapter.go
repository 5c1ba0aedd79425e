// Package adapter contains filesystem and persistence adapters for covall.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/covall/internal/apperrors"
	m "github.com/mouse-blink/covall/internal/model"
)

var errNotDirectory = errors.New("not a directory")

// SourceFSAdapter abstracts the filesystem operations the workflow relies on,
// so the orchestration can be tested without touching the disk.
type SourceFSAdapter interface {
	// Enumerate lists every regular file under root in inventory order.
	// Files whose root-relative path matches one of the exclude globs are
	// left out.
	Enumerate(root m.Path, exclude []string) (m.FileInventory, error)

	// ReadFile loads a file from disk. A missing file yields an
	// apperrors.NotFoundError, anything else an apperrors.IOError.
	ReadFile(path m.Path) ([]byte, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Enumerate walks root, reading subdirectories concurrently. The result is
// sorted afterwards, so scheduling never affects the order. Any failure
// discards everything collected so far.
func (a *LocalSourceFSAdapter) Enumerate(root m.Path, exclude []string) (m.FileInventory, error) {
	rootStr := string(root)

	info, err := os.Stat(rootStr)
	if err != nil {
		return nil, &apperrors.NotFoundError{Path: rootStr, Err: err}
	}

	if !info.IsDir() {
		return nil, &apperrors.NotFoundError{Path: rootStr, Err: errNotDirectory}
	}

	var (
		mu    sync.Mutex
		files []string
	)

	g, ctx := errgroup.WithContext(context.Background())

	var walkDir func(dir string) error

	walkDir = func(dir string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return &apperrors.IOError{Op: "readdir", Path: dir, Err: err}
		}

		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())

			isDir, isFile, err := classifyEntry(full, entry)
			if err != nil {
				return err
			}

			if isDir {
				g.Go(func() error { return walkDir(full) })

				continue
			}

			if !isFile {
				continue
			}

			skip, err := isExcluded(rootStr, full, exclude)
			if err != nil {
				return err
			}

			if skip {
				continue
			}

			mu.Lock()
			files = append(files, m.NormalizeSlashes(filepath.ToSlash(full)))
			mu.Unlock()
		}

		return nil
	}

	g.Go(func() error { return walkDir(rootStr) })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return SortInventory(files), nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &apperrors.NotFoundError{Path: string(path), Err: err}
		}

		return nil, &apperrors.IOError{Op: "read", Path: string(path), Err: err}
	}

	return data, nil
}

// classifyEntry resolves symlinks once: links to regular files count as files,
// links to directories are not followed.
func classifyEntry(full string, entry fs.DirEntry) (isDir, isFile bool, err error) {
	mode := entry.Type()

	switch {
	case mode.IsDir():
		return true, false, nil
	case mode.IsRegular():
		return false, true, nil
	case mode&fs.ModeSymlink != 0:
		target, err := os.Stat(full)
		if err != nil {
			return false, false, &apperrors.IOError{Op: "stat", Path: full, Err: err}
		}

		return false, target.Mode().IsRegular(), nil
	default:
		return false, false, nil
	}
}

func isExcluded(root, full string, patterns []string) (bool, error) {
	if len(patterns) == 0 {
		return false, nil
	}

	rel, err := filepath.Rel(root, full)
	if err != nil {
		return false, err
	}

	rel = filepath.ToSlash(rel)

	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}

		if matched {
			return true, nil
		}
	}

	return false, nil
}

// SortInventory orders paths so that, inside every directory, its own files
// come before anything in its subdirectories. See CompareInventoryPaths.
func SortInventory(paths []string) m.FileInventory {
	sorted := slices.Clone(paths)
	if sorted == nil {
		sorted = []string{}
	}

	slices.SortFunc(sorted, CompareInventoryPaths)

	return m.FileInventory(sorted)
}
