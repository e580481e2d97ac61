package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/api/handlers"
	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	"github.com/godivinity-atl/GOD-BookingService/internal/service/bookings"
)

const (
	msgMissingRange = "from and to query parameters are required"
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange = "to must not be before from"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: from, to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /bookings - Missing date range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListBookings(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidRange):
			h.logger.Warn("GET /bookings - Invalid range: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: from=%s, to=%s, error=%v",
				fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: from=%s, to=%s, count=%d", fromStr, toStr, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(from, to, result))
}
