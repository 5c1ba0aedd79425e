package adapter

import (
	"testing"

	m "github.com/mouse-blink/covall/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCompareInventoryPaths(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "src/a.js", "src/a.js", 0},
		{"siblings lexicographic", "src/a.js", "src/b.js", -1},
		{"file before subdirectory", "src/z.js", "src/a/b.js", -1},
		{"subdirectory after file", "src/a/b.js", "src/z.js", 1},
		{"file before sibling dir with smaller name", "src/zeta.js", "src/-dir/a.js", -1},
		{"subdirectories lexicographic", "src/a/x.js", "src/b/a.js", -1},
		{"uppercase sorts before lowercase", "src/B.js", "src/a.js", -1},
		{"deeper nesting", "src/a/b.js", "src/a/b/c.js", -1},
		{"dot-suffixed sibling directory before plain", "src/a.b/x.js", "src/a/x.js", -1},
		{"dash-suffixed sibling directory before plain", "src/a-old/z.js", "src/a/x.js", -1},
		{"space-suffixed sibling directory before plain", "src/a b/x.js", "src/a/x.js", -1},
		{"letter-suffixed sibling directory after plain", "src/ab/x.js", "src/a/x.js", 1},
		{"dot-suffixed sibling file after plain", "src/a.b", "src/a", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareInventoryPaths(tt.a, tt.b))
		})
	}
}

func TestSortInventory(t *testing.T) {
	input := []string{
		"src/lib/deep/x.js",
		"src/zz.js",
		"src/lib/a.js",
		"src/a.js",
		"src/App/main.js",
		"src/lib/z.js",
	}

	got := SortInventory(input)

	assert.Equal(t, m.FileInventory{
		"src/a.js",
		"src/zz.js",
		"src/App/main.js",
		"src/lib/a.js",
		"src/lib/z.js",
		"src/lib/deep/x.js",
	}, got)

	// input is left untouched
	assert.Equal(t, "src/lib/deep/x.js", input[0])
}

func TestSortInventory_SiblingDirectoriesWithPunctuation(t *testing.T) {
	got := SortInventory([]string{
		"src/a/x.js",
		"src/a.b/y.js",
		"src/a-old/z.js",
		"src/m.js",
	})

	assert.Equal(t, m.FileInventory{
		"src/m.js",
		"src/a-old/z.js",
		"src/a.b/y.js",
		"src/a/x.js",
	}, got)
}

func TestSortInventory_Empty(t *testing.T) {
	got := SortInventory(nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
