package parsers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const (
	nameHeader  = "Name"
	parLabel    = "Par"
	totalHeader = "Total"
)

// parseGrid turns rows of cells into a ParsedScorecard. The header row names
// holes 1..N in order; an optional trailing Total column is ignored. The row
// after the header is the par row when its first cell reads "Par".
func parseGrid(rows [][]string) (*ParsedScorecard, error) {
	rows = dropBlankRows(rows)
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: must contain a header and at least one player row", ErrInvalidFormat)
	}

	holes, err := holeColumns(rows[0])
	if err != nil {
		return nil, err
	}

	sheet := &ParsedScorecard{}
	body := rows[1:]
	if isPARRow(cell(body[0], 0)) {
		pars, err := readCells(body[0], holes, false)
		if err != nil {
			return nil, fmt.Errorf("%w: par row: %w", ErrInvalidFormat, err)
		}
		sheet.Pars = pars
		body = body[1:]
	}

	for i, row := range body {
		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			continue
		}
		strokes, err := readCells(row, holes, true)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d (%s): %w", ErrInvalidFormat, i+2, name, err)
		}
		sheet.Players = append(sheet.Players, PlayerScores{Name: name, Strokes: strokes})
	}

	if len(sheet.Players) == 0 {
		return nil, fmt.Errorf("%w: no player rows found", ErrInvalidFormat)
	}
	return sheet, nil
}

// holeColumns validates the header and returns the hole count.
func holeColumns(header []string) (int, error) {
	holes := 0
	for i := 1; i < len(header); i++ {
		col := strings.TrimSpace(header[i])
		if strings.EqualFold(col, totalHeader) && i == len(header)-1 {
			break
		}
		if col == "" && i == len(header)-1 {
			break
		}
		n, err := strconv.Atoi(col)
		if err != nil || n != holes+1 {
			return 0, fmt.Errorf("%w: header column %d must be hole %d, got %q", ErrInvalidFormat, i+1, holes+1, col)
		}
		holes++
	}
	if holes == 0 {
		return 0, fmt.Errorf("%w: header has no hole columns", ErrInvalidFormat)
	}
	return holes, nil
}

// readCells reads columns 1..holes. With allowBlank, empty and "-" cells read
// as 0.
func readCells(row []string, holes int, allowBlank bool) ([]int, error) {
	out := make([]int, holes)
	for h := 1; h <= holes; h++ {
		val := strings.TrimSpace(cell(row, h))
		if val == "" || val == "-" {
			if allowBlank {
				continue
			}
			return nil, fmt.Errorf("hole %d is blank", h)
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("hole %d: %q is not a number", h, val)
		}
		if n <= 0 {
			return nil, fmt.Errorf("hole %d: %d must be positive", h, n)
		}
		out[h-1] = n
	}
	return out, nil
}

// buildGrid is the inverse of parseGrid. A Total column is appended.
func buildGrid(sheet *ParsedScorecard) [][]string {
	holes := sheet.HoleCount()
	header := make([]string, 0, holes+2)
	header = append(header, nameHeader)
	for h := 1; h <= holes; h++ {
		header = append(header, strconv.Itoa(h))
	}
	header = append(header, totalHeader)

	rows := [][]string{header}
	if len(sheet.Pars) > 0 {
		rows = append(rows, gridRow(parLabel, sheet.Pars, holes))
	}
	for _, p := range sheet.Players {
		rows = append(rows, gridRow(p.Name, p.Strokes, holes))
	}
	return rows
}

func gridRow(label string, values []int, holes int) []string {
	row := make([]string, 0, holes+2)
	row = append(row, label)
	total := 0
	for h := 0; h < holes; h++ {
		v := 0
		if h < len(values) {
			v = values[h]
		}
		if v == 0 {
			row = append(row, "-")
			continue
		}
		total += v
		row = append(row, strconv.Itoa(v))
	}
	return append(row, strconv.Itoa(total))
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func dropBlankRows(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// isPARRow checks if a row header indicates it's a par row.
func isPARRow(cellValue string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(cellValue))
	return normalized == "PAR" || normalized == "PARS" || normalized == "P"
}

// stripBOM removes a UTF-8 byte order mark and normalises line endings.
func stripBOM(data []byte) []byte {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	return bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
}
