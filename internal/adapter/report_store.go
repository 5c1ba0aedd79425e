package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mouse-blink/covall/internal/apperrors"
	m "github.com/mouse-blink/covall/internal/model"
)

// ReportStore persists and retrieves merged coverage as a named array literal.
type ReportStore interface {
	SaveCoverage(path m.Path, identifier string, coverage m.MergedCoverage) error
	LoadCoverage(path m.Path, identifier string) (m.MergedCoverage, error)
}

// LocalReportStore writes coverage literals to the local filesystem.
type LocalReportStore struct {
	writer *AtomicWriter
}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore(writer *AtomicWriter) *LocalReportStore {
	if writer == nil {
		writer = NewAtomicWriter(DefaultAtomicConfig())
	}

	return &LocalReportStore{writer: writer}
}

// SaveCoverage renders coverage and replaces path atomically.
func (rs *LocalReportStore) SaveCoverage(path m.Path, identifier string, coverage m.MergedCoverage) error {
	data, err := RenderCoverage(identifier, coverage)
	if err != nil {
		return err
	}

	return rs.writer.WriteFile(string(path), data, 0o644)
}

// LoadCoverage reads a literal previously written by SaveCoverage.
func (rs *LocalReportStore) LoadCoverage(path m.Path, identifier string) (m.MergedCoverage, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &apperrors.NotFoundError{Path: string(path), Err: err}
		}

		return nil, &apperrors.IOError{Op: "read", Path: string(path), Err: err}
	}

	coverage, err := ParseCoverage(identifier, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return coverage, nil
}

// RenderCoverage produces `<identifier> = [ ... ];` where the bracketed part
// is indented JSON, one object per record.
func RenderCoverage(identifier string, coverage m.MergedCoverage) ([]byte, error) {
	if coverage == nil {
		coverage = m.MergedCoverage{}
	}

	var body bytes.Buffer

	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(coverage); err != nil {
		return nil, fmt.Errorf("encode coverage: %w", err)
	}

	var out bytes.Buffer

	out.Grow(len(identifier) + body.Len() + 8)
	out.WriteString(identifier)
	out.WriteString(" = ")
	out.Write(bytes.TrimRight(body.Bytes(), "\n"))
	out.WriteString(";\n")

	return out.Bytes(), nil
}

// ParseCoverage is the inverse of RenderCoverage.
func ParseCoverage(identifier string, data []byte) (m.MergedCoverage, error) {
	text := strings.TrimSpace(string(data))

	rest, ok := strings.CutPrefix(text, identifier)
	if !ok {
		return nil, fmt.Errorf("coverage literal does not start with %q", identifier)
	}

	rest, ok = strings.CutPrefix(strings.TrimSpace(rest), "=")
	if !ok {
		return nil, fmt.Errorf("coverage literal is missing '=' after %q", identifier)
	}

	rest = strings.TrimSuffix(strings.TrimSpace(rest), ";")

	var coverage m.MergedCoverage
	if err := json.Unmarshal([]byte(rest), &coverage); err != nil {
		return nil, fmt.Errorf("decode coverage: %w", err)
	}

	if coverage == nil {
		coverage = m.MergedCoverage{}
	}

	return coverage, nil
}
