package events

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
	"github.com/de-tools/lytx-reports/pkg/store/csvtable"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const (
	ColumnEmployeeID = "Employee ID"
	ColumnGroup      = "Group"

	Handheld          = "HANDHELD"
	Inattentive       = "INATTENTIVE"
	FollowingDistance = "FOLLOWING_DISTANCE"
	LaneDeparture     = "LANE_DEPARTURE"
	RollingStop       = "ROLLING_STOP"
	CriticalDistance  = "CRITICAL_DISTANCE"

	columnTotalEvents = "Total Events_Total"
)

// MetricColumns are the event counts carried into the final report.
var MetricColumns = []string{
	Handheld,
	Inattentive,
	FollowingDistance,
	LaneDeparture,
	RollingStop,
	CriticalDistance,
}

var droppedColumns = []string{
	"Total Score_Total",
	"Total Score_Trend",
	"Total Events_Trend",
	"Recent Notes",
}

// Record is one driver line of a normalized event file.
type Record struct {
	EmployeeID string
	Group      string
	Counts     map[string]float64
}

// Count returns the value of column, 0 when the record lacks it.
func (r Record) Count(column string) float64 {
	return r.Counts[column]
}

// Table is a normalized event file, or the union of several.
type Table struct {
	Sources []string
	Columns []string
	Records []Record
}

func requiredColumns() []string {
	return append([]string{ColumnEmployeeID, ColumnGroup, columnTotalEvents}, droppedColumns...)
}

// ReadFile parses the event export at path and normalizes it under label.
func ReadFile(ctx context.Context, path, label string) (*Table, error) {
	raw, err := csvtable.ReadFile(path)
	if err != nil {
		return nil, err
	}

	table, err := Normalize(raw, label)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("label", label).
		Int("rows", len(table.Records)).
		Msg("event report normalized")
	return table, nil
}

// Normalize maps a raw event export onto the common driver schema. The
// vendor's score, trend and notes columns are dropped and the per-file event
// total is renamed to label. Empty cells count as 0.
func Normalize(raw *csvtable.Table, label string) (*Table, error) {
	if missing := raw.Missing(requiredColumns()...); len(missing) > 0 {
		return nil, &domain.MissingColumnError{Path: raw.Source, Columns: missing}
	}

	columns := outputColumns(raw, label)
	counted := lo.Without(columns, ColumnEmployeeID, ColumnGroup)

	records := make([]Record, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		// header is line 1
		record, err := normalizeRow(raw, i+2, row, counted, label)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return &Table{
		Sources: []string{raw.Source},
		Columns: columns,
		Records: records,
	}, nil
}

// outputColumns lists the normalized schema of one file. A metric column
// present in the source takes precedence over a label of the same name.
func outputColumns(raw *csvtable.Table, label string) []string {
	columns := []string{ColumnEmployeeID, ColumnGroup}
	for _, metric := range MetricColumns {
		if raw.Has(metric) {
			columns = append(columns, metric)
		}
	}
	if !lo.Contains(columns, label) {
		columns = append(columns, label)
	}
	return columns
}

func normalizeRow(raw *csvtable.Table, line int, row []string, counted []string, label string) (Record, error) {
	record := Record{
		EmployeeID: raw.Value(row, ColumnEmployeeID),
		Group:      raw.Value(row, ColumnGroup),
		Counts:     make(map[string]float64, len(counted)),
	}

	for _, column := range counted {
		source := column
		if column == label && !raw.Has(label) {
			source = columnTotalEvents
		}

		value, err := parseCount(raw.Value(row, source))
		if err != nil {
			return Record{}, &domain.InvalidValueError{Path: raw.Source, Line: line, Column: source, Value: raw.Value(row, source)}
		}
		record.Counts[column] = value
	}

	return record, nil
}

func parseCount(cell string) (float64, error) {
	cell = strings.ReplaceAll(cell, ",", "")
	if cell == "" || strings.EqualFold(cell, "nan") {
		return 0, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("parse count: %w", err)
	}
	return v, nil
}
