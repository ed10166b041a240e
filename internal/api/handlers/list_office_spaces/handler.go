package list_office_spaces

import (
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
)

type Handler struct {
	service OfficesService
	logger  Logger
}

func NewHandler(service OfficesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/office-spaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /office-spaces - Failed to list office spaces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
