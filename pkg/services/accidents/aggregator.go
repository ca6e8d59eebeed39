package accidents

import (
	"github.com/de-tools/lytx-reports/pkg/models/domain"
	"github.com/samber/lo"
)

// Aggregate counts preventable accidents per driver. Total covers every
// preventable accident; ThisMonth only those strictly inside the period, so
// accidents on the first or last day are not counted. Drivers without a
// preventable accident are omitted.
func Aggregate(records []domain.AccidentRecord, period domain.ReportingPeriod) []domain.AccidentsRow {
	preventable := lo.Filter(records, func(r domain.AccidentRecord, _ int) bool {
		return r.IsPreventable() && r.Driver != ""
	})

	var rows []domain.AccidentsRow
	index := make(map[string]int)
	for _, r := range preventable {
		i, ok := index[r.Driver]
		if !ok {
			i = len(rows)
			index[r.Driver] = i
			rows = append(rows, domain.AccidentsRow{Driver: r.Driver})
		}

		rows[i].Total++
		if period.Within(r.Date) {
			rows[i].ThisMonth++
		}
	}

	return rows
}
