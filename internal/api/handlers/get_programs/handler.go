package get_programs

import (
	"net/http"

	"github.com/godivinity-atl/GOD-BookingService/internal/api/handlers"
	"github.com/godivinity-atl/GOD-BookingService/internal/catalog"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/programs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	programs := catalog.List()

	h.logger.Info("GET /programs - Catalog retrieved: programs_count=%d", len(programs))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(programs))
}
