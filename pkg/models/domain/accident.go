package domain

import "time"

type Preventability int

const (
	PreventableNo Preventability = iota
	PreventableYes
	PreventableUnrecognized
)

func (p Preventability) String() string {
	switch p {
	case PreventableYes:
		return "Yes"
	case PreventableNo:
		return "No"
	default:
		return "Unrecognized"
	}
}

// AccidentRecord is a normalized accident log line. RawPreventable keeps the
// source text so unrecognized values survive normalization.
type AccidentRecord struct {
	Driver         string
	Date           time.Time
	Preventable    Preventability
	RawPreventable string
}

func (a AccidentRecord) IsPreventable() bool {
	return a.Preventable == PreventableYes
}
