package adapter

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/mouse-blink/covall/internal/apperrors"
	m "github.com/mouse-blink/covall/internal/model"
)

var errEmptyAsset = errors.New("asset is empty")

// DefaultAssets is the report viewer shipped with the template package.
var DefaultAssets = []string{
	"index.html",
	"css/about.css",
	"css/app.css",
	"js/about.js",
	"js/app.js",
	"js/chunk-vendors.js",
}

// AssetStager copies report template files into the output directory.
type AssetStager interface {
	// Stage copies every name from source to the same relative path under
	// dest. Each copy is independent; the result has one entry per name.
	Stage(source fs.FS, names []string, dest m.Path) []m.StageResult
}

// LocalAssetStager stages assets onto the local filesystem.
type LocalAssetStager struct {
	writer *AtomicWriter
}

// NewAssetStager constructs a LocalAssetStager.
func NewAssetStager(writer *AtomicWriter) *LocalAssetStager {
	if writer == nil {
		writer = NewAtomicWriter(DefaultAtomicConfig())
	}

	return &LocalAssetStager{writer: writer}
}

// Stage implements AssetStager.
func (s *LocalAssetStager) Stage(source fs.FS, names []string, dest m.Path) []m.StageResult {
	results := make([]m.StageResult, 0, len(names))

	for _, name := range names {
		results = append(results, m.StageResult{
			Name: name,
			Err:  s.stageOne(source, name, dest),
		})
	}

	return results
}

func (s *LocalAssetStager) stageOne(source fs.FS, name string, dest m.Path) error {
	if source == nil {
		return &apperrors.NotFoundError{Path: name, Err: fs.ErrNotExist}
	}

	data, err := fs.ReadFile(source, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &apperrors.NotFoundError{Path: name, Err: err}
		}

		return &apperrors.IOError{Op: "read", Path: name, Err: err}
	}

	// an empty template means a broken install
	if len(data) == 0 {
		return &apperrors.NotFoundError{Path: name, Err: errEmptyAsset}
	}

	target := filepath.Join(string(dest), filepath.FromSlash(name))

	return s.writer.WriteFile(target, data, 0o644)
}
