package domain

import (
	"fmt"
	"time"
)

// DateLayout is the textual form of a calendar date in file names and report cells.
const DateLayout = "2006-01-02"

// ReportingPeriod represents the calendar window a report summarizes
type ReportingPeriod struct {
	Start time.Time
	End   time.Time
}

// Duration returns the number of calendar days covered, both bounds included.
func (p ReportingPeriod) Duration() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// Within reports whether date lies strictly between Start and End.
// Dates equal to either bound are outside the window.
func (p ReportingPeriod) Within(date time.Time) bool {
	if date.IsZero() {
		return false
	}
	return date.After(p.Start) && date.Before(p.End)
}

func (p ReportingPeriod) String() string {
	return fmt.Sprintf("%s..%s", p.Start.Format(DateLayout), p.End.Format(DateLayout))
}

// EventsRow is one driver line of the events report
type EventsRow struct {
	Driver            string
	Fleet             string
	Start             time.Time
	End               time.Time
	Handheld          float64
	Inattentive       float64
	FollowingDistance float64
	LaneDeparture     float64
	RollingStop       float64
	CriticalDistance  float64
}

// AccidentsRow is one driver line of the accidents report
type AccidentsRow struct {
	Driver    string
	ThisMonth int
	Total     int
}

// Summary is a console-friendly digest of a report run
type Summary struct {
	Title    string
	Period   ReportingPeriod
	Sections []SummarySection
}

// SummarySection represents a logical section in the summary
type SummarySection struct {
	Title   string
	Summary map[string]interface{}
	Details []SummaryDetail
}

// SummaryDetail represents a single line within a section
type SummaryDetail struct {
	Name        string
	Value       interface{}
	Description string
}
