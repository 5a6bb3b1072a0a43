package parsers

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Factory picks parsers and writers by file extension or format name.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// GetParser returns a parser for the given file name.
func (f *Factory) GetParser(fileName string) (Parser, error) {
	switch formatOf(fileName) {
	case FormatCSV:
		return NewCSVParser(), nil
	case FormatXLSX, "xls":
		return NewXLSXParser(), nil
	}
	return nil, fmt.Errorf("unsupported file type: %s (must be .csv or .xlsx)", fileName)
}

// GetWriter accepts either a bare format ("csv") or a file name ("round.xlsx").
func (f *Factory) GetWriter(format string) (Writer, error) {
	switch formatOf(format) {
	case FormatCSV:
		return NewCSVWriter(), nil
	case FormatXLSX:
		return NewXLSXWriter(), nil
	}
	return nil, fmt.Errorf("unsupported export format: %s (must be csv or xlsx)", format)
}

func formatOf(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if ext := filepath.Ext(name); ext != "" {
		return strings.TrimPrefix(ext, ".")
	}
	return name
}
