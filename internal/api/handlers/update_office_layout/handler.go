package update_office_layout

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/offices"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMalformedLayout     = "некорректная разметка офиса"
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

// Handle PUT /api/v1/office-spaces/{officeSpaceID}/layout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	officeSpaceID := mux.Vars(r)["officeSpaceID"]

	var req UpdateLayoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /office-spaces/{id}/layout - Invalid request body: id=%s, error=%v", officeSpaceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	document, err := req.ToLayoutDocument()
	if err != nil {
		h.logger.Warn("PUT /office-spaces/{id}/layout - Failed to build document: id=%s, error=%v", officeSpaceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateLayout(r.Context(), officeSpaceID, document); err != nil {
		switch {
		case errors.Is(err, offices.ErrMalformedLayout):
			h.logger.Warn("PUT /office-spaces/{id}/layout - Malformed layout: id=%s, error=%v", officeSpaceID, err)
			handlers.RespondBadRequest(w, msgMalformedLayout)

		case errors.Is(err, offices.ErrOfficeSpaceNotFound):
			h.logger.Warn("PUT /office-spaces/{id}/layout - Office space not found: id=%s", officeSpaceID)
			handlers.RespondNotFound(w, msgOfficeSpaceNotFound)

		default:
			h.logger.Error("PUT /office-spaces/{id}/layout - Failed to update layout: id=%s, error=%v", officeSpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /office-spaces/{id}/layout - Layout updated: id=%s", officeSpaceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
