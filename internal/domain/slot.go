package domain

// Period classifies a slot by its start hour.
type Period string

const (
	PeriodMorning Period = "Morning"
	PeriodEvening Period = "Evening"
)

// TimeSlot represents one bookable time window on a given date.
// Value object: immutable once produced, equal by value, no identity.
// Start and End are 12-hour formatted ("10:00 AM"), matching the widget's
// display contract and the column format of the spreadsheet store.
type TimeSlot struct {
	Start         string
	End           string
	DurationLabel string
	Period        Period
}

// Describe renders the slot the way it is written into the booking record,
// e.g. "10:00 AM - 1:00 PM (3 Hours)".
func (s TimeSlot) Describe() string {
	return s.Start + " - " + s.End + " (" + s.DurationLabel + ")"
}

// DurationLabelFor maps a slot length in minutes to its fixed display label.
// The policy table only ever uses the five catalog durations.
func DurationLabelFor(minutes int) string {
	switch minutes {
	case 30:
		return "30 Minutes"
	case 60:
		return "1 Hour"
	case 90:
		return "1.5 Hours"
	case 120:
		return "2 Hours"
	case 180:
		return "3 Hours"
	default:
		return ""
	}
}
