package parsers

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVParser reads the grid layout from comma separated text.
type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

func (p *CSVParser) Parse(fileData []byte) (*ParsedScorecard, error) {
	reader := csv.NewReader(bytes.NewReader(stripBOM(fileData)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse CSV: %w", ErrInvalidFormat, err)
	}
	return parseGrid(rows)
}

// CSVWriter writes the grid layout as CSV.
type CSVWriter struct{}

func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

func (w *CSVWriter) Extension() string { return FormatCSV }

func (w *CSVWriter) Write(sheet *ParsedScorecard) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.WriteAll(buildGrid(sheet)); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}
