// Package model defines the data structures shared by the coverage pipeline.
package model

import "strings"

// Path represents a file system path.
type Path string

// FileInventory is the ordered list of source files discovered under the
// source root. Entries use forward slashes regardless of the host OS.
type FileInventory []string

// NormalizeSlashes rewrites every backslash in s to a forward slash.
func NormalizeSlashes(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}
