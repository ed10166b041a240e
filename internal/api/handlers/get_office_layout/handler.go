package get_office_layout

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/offices"
)

const (
	msgOfficeSpaceNotFound = "офис не найден"
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

// Handle GET /api/v1/office-spaces/{officeSpaceID}/layout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	officeSpaceID := mux.Vars(r)["officeSpaceID"]

	result, err := h.service.GetLayout(r.Context(), officeSpaceID)
	if err != nil {
		switch {
		case errors.Is(err, offices.ErrOfficeSpaceNotFound):
			h.logger.Warn("GET /office-spaces/{id}/layout - Office space not found: id=%s", officeSpaceID)
			handlers.RespondNotFound(w, msgOfficeSpaceNotFound)

		default:
			h.logger.Error("GET /office-spaces/{id}/layout - Failed to get layout: id=%s, error=%v", officeSpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
