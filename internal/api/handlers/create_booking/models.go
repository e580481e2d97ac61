package create_booking

import (
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	createBooking "github.com/godivinity-atl/GOD-BookingService/internal/usecase/create_booking"
	"github.com/godivinity-atl/GOD-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Теги validate отсекают мусор на границе; бизнес-проверки (каталог,
// слот, занятость даты) живут в use case.
type CreateBookingRequest struct {
	ProgramID       string  `json:"programId" validate:"required"`
	Date            string  `json:"date" validate:"required"` // "2026-01-03"
	StartTime       string  `json:"startTime" validate:"required"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,gt=0"`
	HostName        string  `json:"hostName" validate:"required,max=120"`
	HostEmail       string  `json:"hostEmail" validate:"required,email"`
	HostPhone       string  `json:"hostPhone" validate:"required,max=30"`
	Street          string  `json:"street" validate:"required,max=200"`
	City            string  `json:"city" validate:"required,max=100"`
	State           string  `json:"state" validate:"required,max=100"`
	ZipCode         string  `json:"zipCode" validate:"required,max=20"`
	Occasion        *string `json:"occasion,omitempty" validate:"omitempty,max=200"`
	AdditionalNotes *string `json:"additionalNotes,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	ProgramID       string `json:"programId"`
	ProgramName     string `json:"programName"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	SlotDescription string `json:"slotDescription"`
	HostName        string `json:"hostName"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ProgramID:       domain.ProgramID(r.ProgramID),
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		HostName:        r.HostName,
		HostEmail:       r.HostEmail,
		HostPhone:       r.HostPhone,
		Street:          r.Street,
		City:            r.City,
		State:           r.State,
		ZipCode:         r.ZipCode,
		Occasion:        r.Occasion,
		AdditionalNotes: r.AdditionalNotes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ProgramID:       string(resp.ProgramID),
		ProgramName:     resp.ProgramName,
		Date:            resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		SlotDescription: resp.SlotDescription,
		HostName:        resp.HostName,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
