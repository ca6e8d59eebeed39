package events

import "github.com/samber/lo"

// Combine concatenates tables row-wise. The result carries the union of all
// columns in first-seen order; a record lacking a column gets 0 for it.
// Rows are neither merged nor deduplicated.
func Combine(tables ...*Table) *Table {
	combined := &Table{}
	for _, t := range tables {
		if t == nil {
			continue
		}
		combined.Sources = append(combined.Sources, t.Sources...)
		combined.Columns = lo.Union(combined.Columns, t.Columns)
	}

	counted := lo.Without(combined.Columns, ColumnEmployeeID, ColumnGroup)
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, r := range t.Records {
			counts := make(map[string]float64, len(counted))
			for _, column := range counted {
				counts[column] = r.Count(column)
			}
			combined.Records = append(combined.Records, Record{
				EmployeeID: r.EmployeeID,
				Group:      r.Group,
				Counts:     counts,
			})
		}
	}

	return combined
}
