package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
	"github.com/de-tools/lytx-reports/pkg/services/accidents"
	"github.com/de-tools/lytx-reports/pkg/services/events"
	"github.com/de-tools/lytx-reports/pkg/services/loader"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Options describe one report run. Period is resolved by the caller once
// and shared by both reports.
type Options struct {
	Directory     string
	AccidentsFile string
	Period        domain.ReportingPeriod
}

func (o Options) accidentsFile() string {
	if o.AccidentsFile == "" {
		return domain.DefaultAccidentsFile
	}
	return o.AccidentsFile
}

// EventsReport holds every table built for the events summary.
type EventsReport struct {
	Period   domain.ReportingPeriod
	Skipped  []loader.FileResult
	Tables   []*events.Table
	Combined *events.Table
	Rows     []domain.EventsRow
}

// AccidentReport holds the normalized accident log and its summary.
type AccidentReport struct {
	Period  domain.ReportingPeriod
	Source  string
	Records []domain.AccidentRecord
	Rows    []domain.AccidentsRow
}

// NewEventsReport reads every event export in the directory. Non-CSV entries
// are logged and skipped; a file that cannot be normalized fails the report.
func NewEventsReport(ctx context.Context, opts Options) (*EventsReport, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("directory", opts.Directory).Msg("reading individual event reports")

	files, err := loader.ListReportFiles(ctx, opts.Directory, opts.accidentsFile())
	if err != nil {
		return nil, err
	}

	valid, skipped := lo.FilterReject(files, func(f loader.FileResult, _ int) bool {
		return f.OK()
	})
	for _, f := range skipped {
		logger.Warn().Err(f.Err).Str("path", f.Path).Msg("skipping file")
	}

	report := &EventsReport{Period: opts.Period, Skipped: skipped}
	for _, f := range valid {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		table, err := events.ReadFile(ctx, f.Path, f.Label)
		if err != nil {
			return nil, fmt.Errorf("failed to read event report %s: %w", f.Path, err)
		}
		report.Tables = append(report.Tables, table)
	}

	logger.Info().Int("files", len(report.Tables)).Msg("combining event reports")
	report.Combined = events.Combine(report.Tables...)

	logger.Info().Msg("creating final events report")
	report.Rows = events.Aggregate(report.Combined, opts.Period)

	return report, nil
}

// NewAccidentReport locates and summarizes the accident log. A missing log
// yields an error matching domain.ErrFileNotFound.
func NewAccidentReport(ctx context.Context, opts Options) (*AccidentReport, error) {
	logger := zerolog.Ctx(ctx)
	name := opts.accidentsFile()

	logger.Info().Str("file", name).Msg("verifying accident report exists")
	path, err := loader.LocateFile(opts.Directory, name)
	if err != nil {
		return nil, err
	}

	records, err := accidents.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accident report %s: %w", path, err)
	}

	logger.Info().Int("accidents", len(records)).Msg("creating final accidents report")
	return &AccidentReport{
		Period:  opts.Period,
		Source:  path,
		Records: records,
		Rows:    accidents.Aggregate(records, opts.Period),
	}, nil
}

// Result is the outcome of a full run. AccidentErr records why the accident
// report is absent; it never affects the events report.
type Result struct {
	Events      *EventsReport
	Accidents   *AccidentReport
	AccidentErr error
}

// Run builds both reports independently. The returned error reports an
// events failure; Result is always non-nil and holds whatever was built.
// Accident failures are recorded on the result instead.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	result := &Result{}

	evts, eventsErr := NewEventsReport(ctx, opts)
	if eventsErr != nil {
		logger.Error().Err(eventsErr).Msg("events report failed")
		eventsErr = fmt.Errorf("events report: %w", eventsErr)
	}
	result.Events = evts

	acc, err := NewAccidentReport(ctx, opts)
	switch {
	case err == nil:
		result.Accidents = acc
	case errors.Is(err, domain.ErrFileNotFound):
		logger.Warn().Err(err).Msg("continuing without accident report")
		result.AccidentErr = err
	default:
		logger.Error().Err(err).Msg("accident report failed")
		result.AccidentErr = err
	}

	return result, eventsErr
}
