package create_office_space

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/offices"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "некорректное название офиса"
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

// Handle POST /api/v1/office-spaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOfficeSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /office-spaces - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, offices.ErrInvalidInput):
			h.logger.Warn("POST /office-spaces - Invalid name: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)

		default:
			h.logger.Error("POST /office-spaces - Failed to create office space: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /office-spaces - Office space created: id=%s, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(result))
}
