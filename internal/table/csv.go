package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrEmpty is returned when a CSV input has no header row.
var ErrEmpty = errors.New("no columns to parse")

var missingTokens = map[string]bool{
	"":    true,
	"nan": true,
	"NaN": true,
	"NA":  true,
	"N/A": true,
}

func parseCell(s string) float64 {
	s = strings.TrimSpace(s)
	if missingTokens[s] {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ReadFile parses a CSV file with a header row.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses CSV with a header row. A column is numeric when every
// non-missing cell parses as a float; otherwise it is text. Rows shorter
// than the header are padded with missing cells.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	cells := make([][]string, len(header))
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line++
		if len(rec) > len(header) {
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(header), len(rec))
		}
		for i := range header {
			v := ""
			if i < len(rec) {
				v = rec[i]
			}
			cells[i] = append(cells[i], v)
		}
	}

	cols := make([]*Column, len(header))
	for i, name := range header {
		cols[i] = inferColumn(name, cells[i])
	}
	return New(cols...)
}

func inferColumn(name string, cells []string) *Column {
	nums := make([]float64, len(cells))
	for i, s := range cells {
		s = strings.TrimSpace(s)
		if missingTokens[s] {
			nums[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return &Column{Name: name, Kind: Text, Str: append([]string{}, cells...)}
		}
		nums[i] = v
	}
	return &Column{Name: name, Kind: Numeric, Num: nums}
}

// WriteCSV writes the header and every row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return err
	}
	rec := make([]string, len(t.cols))
	for r := 0; r < t.rows; r++ {
		for i, c := range t.cols {
			rec[i] = c.Cell(r)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table as CSV to path, replacing any existing file.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
