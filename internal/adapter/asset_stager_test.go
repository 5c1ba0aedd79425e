package adapter

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/mouse-blink/covall/internal/apperrors"
	m "github.com/mouse-blink/covall/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAssetStager_Stage(t *testing.T) {
	t.Run("copies every asset creating directories", func(t *testing.T) {
		source := fstest.MapFS{}
		for _, name := range DefaultAssets {
			source[name] = &fstest.MapFile{Data: []byte("content of " + name)}
		}

		dest := t.TempDir()
		results := NewAssetStager(nil).Stage(source, DefaultAssets, m.Path(dest))

		require.Len(t, results, len(DefaultAssets))

		for i, result := range results {
			assert.Equal(t, DefaultAssets[i], result.Name)
			assert.NoError(t, result.Err)
			assert.Equal(t, "content of "+result.Name, string(readFileBytes(t, filepath.Join(dest, filepath.FromSlash(result.Name)))))
		}
	})

	t.Run("one failure does not stop the others", func(t *testing.T) {
		source := fstest.MapFS{
			"index.html":  &fstest.MapFile{Data: []byte("<html></html>")},
			"css/app.css": &fstest.MapFile{Data: []byte{}},
			"js/app.js":   &fstest.MapFile{Data: []byte("app()")},
		}

		dest := t.TempDir()
		results := NewAssetStager(nil).Stage(source, []string{"index.html", "css/about.css", "css/app.css", "js/app.js"}, m.Path(dest))

		require.Len(t, results, 4)
		assert.NoError(t, results[0].Err)
		assert.ErrorIs(t, results[1].Err, apperrors.ErrNotFound, "missing asset")
		assert.ErrorIs(t, results[2].Err, apperrors.ErrNotFound, "empty asset")
		assert.NoError(t, results[3].Err)

		assert.Equal(t, "app()", string(readFileBytes(t, filepath.Join(dest, "js", "app.js"))))
		assert.NoFileExists(t, filepath.Join(dest, "css", "app.css"))
	})

	t.Run("nil source fails every asset", func(t *testing.T) {
		results := NewAssetStager(nil).Stage(nil, []string{"index.html"}, m.Path(t.TempDir()))

		require.Len(t, results, 1)
		assert.ErrorIs(t, results[0].Err, apperrors.ErrNotFound)
	})

	t.Run("write failure is reported per asset", func(t *testing.T) {
		source := fstest.MapFS{
			"css/app.css": &fstest.MapFile{Data: []byte("a")},
			"index.html":  &fstest.MapFile{Data: []byte("b")},
		}

		dest := t.TempDir()
		writeTestFile(t, filepath.Join(dest, "css"), "blocks the css directory")

		results := NewAssetStager(nil).Stage(source, []string{"css/app.css", "index.html"}, m.Path(dest))

		assert.ErrorIs(t, results[0].Err, apperrors.ErrIO)
		assert.NoError(t, results[1].Err)
	})
}
