package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/godivinity-atl/GOD-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/godivinity-atl/GOD-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingProgramID   = "program id is required"
	msgMissingDate        = "date is required"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgProgramNotFound    = "program not found"
	msgOutsideBookingYear = "date is outside the booking year"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/programs/{programId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	programID := vars["programId"]
	if programID == "" {
		h.logger.Warn("GET /programs/{id}/available-slots - Missing program ID")
		handlers.RespondBadRequest(w, msgMissingProgramID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /programs/{id}/available-slots - Missing date: program_id=%s", programID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(programID, dateStr)
	if err != nil {
		h.logger.Warn("GET /programs/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProgramNotFound):
			h.logger.Warn("GET /programs/{id}/available-slots - Program not found: program_id=%s", programID)
			handlers.RespondNotFound(w, msgProgramNotFound)

		case errors.Is(err, getAvailableSlots.ErrOutsideBookingYear):
			h.logger.Warn("GET /programs/{id}/available-slots - Date outside booking year: program_id=%s, date=%s",
				programID, dateStr)
			handlers.RespondBadRequest(w, msgOutsideBookingYear)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /programs/{id}/available-slots - Invalid input: program_id=%s, date=%s, error=%v",
				programID, dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /programs/{id}/available-slots - Failed to get slots: program_id=%s, date=%s, error=%v",
				programID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /programs/{id}/available-slots - Slots retrieved: program_id=%s, date=%s, selectable=%t, slots_count=%d",
		programID, dateStr, result.Selectable, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
