package events

import (
	"github.com/de-tools/lytx-reports/pkg/models/domain"
)

// Aggregate folds the combined table into one row per driver. Drivers appear
// in the order they are first encountered; FLEET is the Group of a driver's
// first record. Records without an Employee ID are ignored.
func Aggregate(combined *Table, period domain.ReportingPeriod) []domain.EventsRow {
	if combined == nil {
		return nil
	}

	var rows []domain.EventsRow
	index := make(map[string]int)

	for _, r := range combined.Records {
		if r.EmployeeID == "" {
			continue
		}

		i, ok := index[r.EmployeeID]
		if !ok {
			i = len(rows)
			index[r.EmployeeID] = i
			rows = append(rows, domain.EventsRow{
				Driver: r.EmployeeID,
				Fleet:  r.Group,
				Start:  period.Start,
				End:    period.End,
			})
		}

		row := &rows[i]
		row.Handheld += r.Count(Handheld)
		row.Inattentive += r.Count(Inattentive)
		row.FollowingDistance += r.Count(FollowingDistance)
		row.LaneDeparture += r.Count(LaneDeparture)
		row.RollingStop += r.Count(RollingStop)
		row.CriticalDistance += r.Count(CriticalDistance)
	}

	return rows
}
