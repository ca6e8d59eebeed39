package accidents

import (
	"context"
	"strings"
	"time"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
	"github.com/de-tools/lytx-reports/pkg/store/csvtable"
	"github.com/rs/zerolog"
)

const (
	ColumnDriver      = "Driver"
	ColumnDate        = "Accident date"
	ColumnPreventable = "Preventable"
)

var dateLayouts = []string{
	domain.DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04 PM",
	"01/02/2006",
	"Jan 2, 2006",
}

// ReadFile parses and normalizes the accident log at path.
func ReadFile(ctx context.Context, path string) ([]domain.AccidentRecord, error) {
	raw, err := csvtable.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Normalize(ctx, raw)
}

// Normalize keeps the driver, date and preventability of each accident.
// Dates lose their time component. Preventable values other than Yes/No are
// kept verbatim, marked unrecognized and logged.
func Normalize(ctx context.Context, raw *csvtable.Table) ([]domain.AccidentRecord, error) {
	if missing := raw.Missing(ColumnDriver, ColumnDate, ColumnPreventable); len(missing) > 0 {
		return nil, &domain.MissingColumnError{Path: raw.Source, Columns: missing}
	}

	logger := zerolog.Ctx(ctx)
	records := make([]domain.AccidentRecord, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		line := i + 2

		value := raw.Value(row, ColumnDate)
		date, err := ParseDate(value)
		if err != nil {
			return nil, &domain.InvalidValueError{Path: raw.Source, Line: line, Column: ColumnDate, Value: value}
		}

		rawPreventable := raw.Value(row, ColumnPreventable)
		preventable := ParsePreventable(rawPreventable)
		if preventable == domain.PreventableUnrecognized {
			logger.Warn().
				Err(domain.ErrUnrecognizedPreventable).
				Str("path", raw.Source).
				Int("line", line).
				Str("value", rawPreventable).
				Msg("accident kept with unrecognized preventable value")
		}

		records = append(records, domain.AccidentRecord{
			Driver:         raw.Value(row, ColumnDriver),
			Date:           date,
			Preventable:    preventable,
			RawPreventable: rawPreventable,
		})
	}

	return records, nil
}

func ParsePreventable(value string) domain.Preventability {
	switch value {
	case "Yes":
		return domain.PreventableYes
	case "No":
		return domain.PreventableNo
	default:
		return domain.PreventableUnrecognized
	}
}

// ParseDate returns the calendar date of value. An empty value yields the
// zero time, which falls outside every reporting window.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		t, err = time.Parse(layout, value)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, err
}
