package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

const utf8BOM = "\uFEFF"

// Table is a parsed delimited file: a header plus raw string rows.
type Table struct {
	Source string
	Header []string
	Rows   [][]string
	index  map[string]int
}

func New(source string, header []string, rows [][]string) *Table {
	t := &Table{Source: source, Header: header, Rows: rows, index: make(map[string]int, len(header))}
	for i, name := range header {
		// first occurrence wins for duplicated header names
		if _, ok := t.index[name]; !ok {
			t.index[name] = i
		}
	}
	return t
}

// Read parses CSV content whose first record is the header.
func Read(source string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return New(source, nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", source, err)
	}
	header = lo.Map(header, func(name string, i int) string {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		return strings.TrimSpace(name)
	})

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", source, err)
		}
		if isBlank(record) {
			continue
		}
		rows = append(rows, record)
	}

	return New(source, header, rows), nil
}

func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Read(path, f)
}

func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Missing returns the columns from want that the header lacks, in want order.
func (t *Table) Missing(want ...string) []string {
	return lo.Filter(want, func(column string, _ int) bool {
		return !t.Has(column)
	})
}

// Value returns the trimmed cell of row for column, or "" when the column is
// absent or the row is short.
func (t *Table) Value(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Write emits rows as CSV without a header.
func Write(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// WriteFile writes rows to path, creating parent directories as needed.
func WriteFile(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func isBlank(record []string) bool {
	return lo.EveryBy(record, func(cell string) bool {
		return strings.TrimSpace(cell) == ""
	})
}
