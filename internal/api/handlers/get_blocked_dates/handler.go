package get_blocked_dates

import (
	"net/http"

	"github.com/godivinity-atl/GOD-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blocked, err := h.service.GetBlockedDates(r.Context())
	if err != nil {
		h.logger.Error("GET /blocked-dates - Failed to get blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-dates - Blocked dates retrieved: count=%d", len(blocked))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(blocked))
}
