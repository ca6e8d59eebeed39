package report

import (
	"path/filepath"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
)

// Summary digests a run for console output.
func (r *Result) Summary() *domain.Summary {
	summary := &domain.Summary{Title: "Lytx driver report"}
	if r.Events == nil {
		return summary
	}
	summary.Period = r.Events.Period

	var totals [6]float64
	for _, row := range r.Events.Rows {
		totals[0] += row.Handheld
		totals[1] += row.Inattentive
		totals[2] += row.FollowingDistance
		totals[3] += row.LaneDeparture
		totals[4] += row.RollingStop
		totals[5] += row.CriticalDistance
	}
	names := []string{"HANDHELD DEVICE", "INATTENTIVE", "FOLLOWING DISTANCE", "LANE DEPARTURE", "ROLLING STOP", "CRITICAL DISTANCE"}

	eventsSection := domain.SummarySection{
		Title: "Events",
		Summary: map[string]interface{}{
			"Drivers":       len(r.Events.Rows),
			"Files read":    len(r.Events.Tables),
			"Files skipped": len(r.Events.Skipped),
		},
	}
	for i, name := range names {
		eventsSection.Details = append(eventsSection.Details, domain.SummaryDetail{
			Name:        name,
			Value:       totals[i],
			Description: "events across all drivers",
		})
	}
	for _, f := range r.Events.Skipped {
		eventsSection.Details = append(eventsSection.Details, domain.SummaryDetail{
			Name:        filepath.Base(f.Path),
			Value:       "skipped",
			Description: f.Err.Error(),
		})
	}
	summary.Sections = append(summary.Sections, eventsSection)

	accidentsSection := domain.SummarySection{Title: "Accidents", Summary: map[string]interface{}{}}
	if r.Accidents == nil {
		accidentsSection.Summary["Status"] = "not generated"
		if r.AccidentErr != nil {
			accidentsSection.Summary["Reason"] = r.AccidentErr.Error()
		}
	} else {
		var month, total int
		for _, row := range r.Accidents.Rows {
			month += row.ThisMonth
			total += row.Total
		}
		accidentsSection.Summary["Drivers"] = len(r.Accidents.Rows)
		accidentsSection.Summary["Preventable this month"] = month
		accidentsSection.Summary["Preventable total"] = total
	}
	summary.Sections = append(summary.Sections, accidentsSection)

	return summary
}
