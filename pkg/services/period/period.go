package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
)

// MonthStart returns the first day of the month preceding ref's month.
// ref is moved back by its day-of-month before the day is reset to 1.
func MonthStart(ref time.Time) time.Time {
	prev := ref.AddDate(0, 0, -ref.Day())
	return time.Date(prev.Year(), prev.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of the month preceding ref's month.
func MonthEnd(ref time.Time) time.Time {
	return truncate(ref.AddDate(0, 0, -ref.Day()))
}

// Default returns the previous calendar month relative to ref.
func Default(ref time.Time) domain.ReportingPeriod {
	return domain.ReportingPeriod{Start: MonthStart(ref), End: MonthEnd(ref)}
}

func New(start, end time.Time) (domain.ReportingPeriod, error) {
	p := domain.ReportingPeriod{Start: truncate(start), End: truncate(end)}
	if p.Start.After(p.End) {
		return domain.ReportingPeriod{}, fmt.Errorf("%w: start %s is after end %s",
			domain.ErrInvalidPeriod, p.Start.Format(domain.DateLayout), p.End.Format(domain.DateLayout))
	}
	return p, nil
}

// Resolve builds the period for a run. A nil bound falls back to the
// default computed from ref.
func Resolve(start, end *time.Time, ref time.Time) (domain.ReportingPeriod, error) {
	def := Default(ref)
	if start != nil {
		def.Start = *start
	}
	if end != nil {
		def.End = *end
	}
	return New(def.Start, def.End)
}

// ParseDate parses a YYYY-MM-DD value. An empty string yields nil.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return &t, nil
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
