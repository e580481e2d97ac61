package get_booking

import (
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

// BookingResponse HTTP модель записи журнала для операторского просмотра:
// в отличие от ответа на создание брони, содержит полные контактные данные
type BookingResponse struct {
	ID              int64   `json:"id"`
	ProgramID       string  `json:"programId"`
	ProgramName     string  `json:"programName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	SlotDescription string  `json:"slotDescription"`
	HostName        string  `json:"hostName"`
	HostEmail       string  `json:"hostEmail"`
	HostPhone       string  `json:"hostPhone"`
	HostAddress     string  `json:"hostAddress"`
	Occasion        *string `json:"occasion,omitempty"`
	AdditionalNotes *string `json:"additionalNotes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// FromDomain конвертирует запись журнала в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		ProgramID:       string(b.ProgramID),
		ProgramName:     b.ProgramName,
		Date:            b.DateString(),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		SlotDescription: b.SlotDescription,
		HostName:        b.HostName,
		HostEmail:       b.HostEmail,
		HostPhone:       b.HostPhone,
		HostAddress:     b.FullAddress(),
		Occasion:        b.Occasion,
		AdditionalNotes: b.AdditionalNotes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
