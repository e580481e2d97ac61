package domain

import (
	"sort"
	"time"

	"github.com/godivinity-atl/GOD-BookingService/pkg/types"
)

// Booking represents an accepted booking submission as journaled locally.
// Bookings are immutable once submitted: no update or cancellation
// lifecycle exists.
type Booking struct {
	ID              int64
	ProgramID       ProgramID
	ProgramName     string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	SlotDescription string // "10:00 AM - 1:00 PM (3 Hours)"

	// Host contact details from the booking form
	HostName  string
	HostEmail string
	HostPhone string
	Street    string
	City      string
	State     string
	ZipCode   string

	Occasion        *string
	AdditionalNotes *string

	CreatedAt time.Time
}

// FullAddress joins the address fields the way the spreadsheet stores them.
func (b *Booking) FullAddress() string {
	return b.Street + ", " + b.City + ", " + b.State + " " + b.ZipCode
}

// DateString returns the booking day as an ISO YYYY-MM-DD string.
func (b *Booking) DateString() string {
	return b.BookingDate.Format(DateFormat)
}

// BlockedDates is a set of ISO YYYY-MM-DD day strings on which no further
// bookings may be made. Blocking is per calendar day across all programs:
// once any program is booked on a date, the whole day is closed.
type BlockedDates map[string]struct{}

// NewBlockedDates builds a set from raw date strings, dropping empties.
func NewBlockedDates(dates []string) BlockedDates {
	set := make(BlockedDates, len(dates))
	for _, d := range dates {
		if d == "" {
			continue
		}
		set[d] = struct{}{}
	}
	return set
}

// Has reports whether the given ISO date string is blocked.
func (s BlockedDates) Has(date string) bool {
	_, ok := s[date]
	return ok
}

// HasDate reports whether the given calendar day is blocked.
func (s BlockedDates) HasDate(date time.Time) bool {
	return s.Has(date.Format(DateFormat))
}

// Add inserts a date string into the set.
func (s BlockedDates) Add(date string) {
	s[date] = struct{}{}
}

// Merge returns the union of two sets, leaving both inputs unchanged.
func (s BlockedDates) Merge(other BlockedDates) BlockedDates {
	merged := make(BlockedDates, len(s)+len(other))
	for d := range s {
		merged[d] = struct{}{}
	}
	for d := range other {
		merged[d] = struct{}{}
	}
	return merged
}

// Strings returns the set as a sorted slice.
func (s BlockedDates) Strings() []string {
	out := make([]string, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
