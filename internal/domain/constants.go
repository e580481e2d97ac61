package domain

// DateFormat is the ISO day layout used across the service: blocked-date
// strings, sheet rows and API query parameters all use it.
const DateFormat = "2006-01-02" // YYYY-MM-DD

// BookingYear is the single operative calendar year the widget books into.
const BookingYear = 2026

// SlotStrideMinutes is the stagger between successive slot starts within
// one window.
const SlotStrideMinutes = 30

// Business validation constants
const (
	MaxNameLength     = 120
	MaxAddressLength  = 300
	MaxOccasionLength = 200
	MaxNotesLength    = 500
)
