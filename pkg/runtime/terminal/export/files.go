package export

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
	"github.com/de-tools/lytx-reports/pkg/store/csvtable"
	"github.com/samber/lo"
)

// EventsFileName is the output name of the events report for period.
func EventsFileName(period domain.ReportingPeriod) string {
	return fmt.Sprintf("lytx_report_%s.csv", period.Start.Format(domain.DateLayout))
}

func AccidentsFileName(period domain.ReportingPeriod) string {
	return fmt.Sprintf("lytx_accidents_report_%s.csv", period.Start.Format(domain.DateLayout))
}

// EventsRecords renders rows in report column order:
// DRIVER, FLEET, START DATE, END DATE, HANDHELD DEVICE, INATTENTIVE,
// FOLLOWING DISTANCE, LANE DEPARTURE, ROLLING STOP, CRITICAL DISTANCE.
func EventsRecords(rows []domain.EventsRow) [][]string {
	return lo.Map(rows, func(r domain.EventsRow, _ int) []string {
		return []string{
			r.Driver,
			r.Fleet,
			r.Start.Format(domain.DateLayout),
			r.End.Format(domain.DateLayout),
			formatCount(r.Handheld),
			formatCount(r.Inattentive),
			formatCount(r.FollowingDistance),
			formatCount(r.LaneDeparture),
			formatCount(r.RollingStop),
			formatCount(r.CriticalDistance),
		}
	})
}

// AccidentsRecords renders rows as DRIVER, ACCIDENTS THIS MONTH, TOTAL ACCIDENTS.
func AccidentsRecords(rows []domain.AccidentsRow) [][]string {
	return lo.Map(rows, func(r domain.AccidentsRow, _ int) []string {
		return []string{r.Driver, strconv.Itoa(r.ThisMonth), strconv.Itoa(r.Total)}
	})
}

// Writer saves headerless report files into a directory
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteEvents writes the events report and returns its path.
func (w *Writer) WriteEvents(period domain.ReportingPeriod, rows []domain.EventsRow) (string, error) {
	path := filepath.Join(w.dir, EventsFileName(period))
	if err := csvtable.WriteFile(path, EventsRecords(rows)); err != nil {
		return "", err
	}
	return path, nil
}

func (w *Writer) WriteAccidents(period domain.ReportingPeriod, rows []domain.AccidentsRow) (string, error) {
	path := filepath.Join(w.dir, AccidentsFileName(period))
	if err := csvtable.WriteFile(path, AccidentsRecords(rows)); err != nil {
		return "", err
	}
	return path, nil
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
