package adapter

import (
	"cmp"
	"strings"
)

// CompareInventoryPaths compares two slash-separated paths segment by segment.
// At the first position where they differ, a final segment (a file) sorts
// before a segment that continues into a subdirectory. Two files compare
// lexicographically; two directories compare as if each were followed by its
// slash, so "a-old/" and "a.b/" sort before "a/".
func CompareInventoryPaths(a, b string) int {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")

	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}

		aLeaf := i == len(as)-1
		bLeaf := i == len(bs)-1

		switch {
		case aLeaf && !bLeaf:
			return -1
		case !aLeaf && bLeaf:
			return 1
		case aLeaf:
			return strings.Compare(as[i], bs[i])
		default:
			return strings.Compare(as[i]+"/", bs[i]+"/")
		}
	}

	return cmp.Compare(len(as), len(bs))
}
