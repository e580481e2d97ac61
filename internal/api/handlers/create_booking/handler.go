package create_booking

import (
	"errors"
	"net/http"

	"github.com/godivinity-atl/GOD-BookingService/internal/api/handlers"
	createBooking "github.com/godivinity-atl/GOD-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFields      = "missing or invalid booking fields"
	msgInvalidDateFormat  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgProgramNotFound    = "program not found"
	msgInvalidDate        = "invalid booking date"
	msgOutsideBookingYear = "date is outside the booking year"
	msgDateNotAvailable   = "selected date is no longer available"
	msgInvalidTimeSlot    = "invalid time slot for this program and date"
	msgSubmitFailed       = "failed to record the booking, please try again"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrProgramNotFound):
			h.logger.Warn("POST /bookings - Program not found: program_id=%s", req.ProgramID)
			handlers.RespondNotFound(w, msgProgramNotFound)

		case errors.Is(err, createBooking.ErrDateNotAvailable):
			h.logger.Warn("POST /bookings - Date not available: program_id=%s, date=%s", req.ProgramID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: program_id=%s, date=%s, time=%s",
				req.ProgramID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: program_id=%s, date=%s", req.ProgramID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrOutsideBookingYear):
			h.logger.Warn("POST /bookings - Date outside booking year: program_id=%s, date=%s", req.ProgramID, req.Date)
			handlers.RespondBadRequest(w, msgOutsideBookingYear)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: program_id=%s, error=%v", req.ProgramID, err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, createBooking.ErrSubmitFailed):
			h.logger.Error("POST /bookings - Relay rejected booking: program_id=%s, date=%s, error=%v",
				req.ProgramID, req.Date, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmitFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: program_id=%s, date=%s, error=%v",
				req.ProgramID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, program_id=%s, date=%s",
		result.ID, result.ProgramID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
