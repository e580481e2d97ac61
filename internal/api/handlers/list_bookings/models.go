package list_bookings

import (
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

// BookingResponse HTTP модель записи журнала в списке
type BookingResponse struct {
	ID              int64   `json:"id"`
	ProgramID       string  `json:"programId"`
	ProgramName     string  `json:"programName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	SlotDescription string  `json:"slotDescription"`
	HostName        string  `json:"hostName"`
	HostPhone       string  `json:"hostPhone"`
	Occasion        *string `json:"occasion,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// BookingsResponse HTTP модель списка записей журнала за период
type BookingsResponse struct {
	From     string            `json:"from"`
	To       string            `json:"to"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomain конвертирует записи журнала в HTTP response
func FromDomain(from, to time.Time, list []*domain.Booking) *BookingsResponse {
	out := make([]BookingResponse, len(list))
	for i, b := range list {
		out[i] = BookingResponse{
			ID:              b.ID,
			ProgramID:       string(b.ProgramID),
			ProgramName:     b.ProgramName,
			Date:            b.DateString(),
			StartTime:       b.StartTime.String(),
			DurationMinutes: b.DurationMinutes,
			SlotDescription: b.SlotDescription,
			HostName:        b.HostName,
			HostPhone:       b.HostPhone,
			Occasion:        b.Occasion,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		}
	}

	return &BookingsResponse{
		From:     from.Format(domain.DateFormat),
		To:       to.Format(domain.DateFormat),
		Bookings: out,
	}
}
