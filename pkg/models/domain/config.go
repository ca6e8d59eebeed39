package domain

import "fmt"

const DefaultAccidentsFile = "accidents_report.csv"

// ReportProfile is a named set of report locations
type ReportProfile struct {
	Name          string
	ReportDir     string
	AccidentsFile string
	OutputDir     string
}

func (p ReportProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.ReportDir)
}
