package create_desk

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/layouteditor"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidName         = "некорректное название стола"
	msgOfficeSpaceNotFound = "офис не найден"
	msgDeskAlreadyExists   = "стол с таким названием уже существует"
)

type Handler struct {
	editorFactory LayoutEditorFactory
	logger        Logger
}

func NewHandler(editorFactory LayoutEditorFactory, logger Logger) *Handler {
	return &Handler{
		editorFactory: editorFactory,
		logger:        logger,
	}
}

// Handle POST /api/v1/office-spaces/{officeSpaceID}/desks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	officeSpaceID := mux.Vars(r)["officeSpaceID"]

	var req CreateDeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /office-spaces/{id}/desks - Invalid request body: office_id=%s, error=%v", officeSpaceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	editor, err := h.editorFactory.Open(r.Context(), officeSpaceID)
	if err != nil {
		if errors.Is(err, layouteditor.ErrOfficeSpaceNotFound) {
			h.logger.Warn("POST /office-spaces/{id}/desks - Office space not found: office_id=%s", officeSpaceID)
			handlers.RespondNotFound(w, msgOfficeSpaceNotFound)
			return
		}
		h.logger.Error("POST /office-spaces/{id}/desks - Failed to open editor: office_id=%s, error=%v", officeSpaceID, err)
		handlers.RespondInternalError(w)
		return
	}
	defer editor.Close()

	obj, err := editor.AddDesk(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, layouteditor.ErrDeskAlreadyExists):
			h.logger.Warn("POST /office-spaces/{id}/desks - Desk already exists: office_id=%s, name=%q", officeSpaceID, req.Name)
			handlers.RespondError(w, http.StatusConflict, msgDeskAlreadyExists)

		case errors.Is(err, layouteditor.ErrInvalidInput):
			h.logger.Warn("POST /office-spaces/{id}/desks - Invalid name: office_id=%s, error=%v", officeSpaceID, err)
			handlers.RespondBadRequest(w, msgInvalidName)

		default:
			h.logger.Error("POST /office-spaces/{id}/desks - Failed to create desk: office_id=%s, error=%v", officeSpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if err := editor.SaveLayout(r.Context()); err != nil {
		h.logger.Error("POST /office-spaces/{id}/desks - Failed to save layout: office_id=%s, error=%v", officeSpaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /office-spaces/{id}/desks - Desk created: office_id=%s, desk_id=%s, name=%q",
		officeSpaceID, obj.DeskID, obj.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromEditorObject(officeSpaceID, obj))
}
