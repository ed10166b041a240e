package delete_desk

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/layouteditor"
)

const (
	msgOfficeSpaceNotFound = "офис не найден"
	msgDeskNotFound        = "стол не найден"
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

// Handle DELETE /api/v1/office-spaces/{officeSpaceID}/desks/{deskName}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	officeSpaceID := vars["officeSpaceID"]
	deskName := vars["deskName"]

	editor, err := h.editorFactory.Open(r.Context(), officeSpaceID)
	if err != nil {
		if errors.Is(err, layouteditor.ErrOfficeSpaceNotFound) {
			h.logger.Warn("DELETE /office-spaces/{id}/desks/{name} - Office space not found: office_id=%s", officeSpaceID)
			handlers.RespondNotFound(w, msgOfficeSpaceNotFound)
			return
		}
		h.logger.Error("DELETE /office-spaces/{id}/desks/{name} - Failed to open editor: office_id=%s, error=%v", officeSpaceID, err)
		handlers.RespondInternalError(w)
		return
	}
	defer editor.Close()

	if err := editor.DeleteDesk(r.Context(), deskName); err != nil {
		switch {
		case errors.Is(err, layouteditor.ErrDeskNotFound):
			h.logger.Warn("DELETE /office-spaces/{id}/desks/{name} - Desk not found: office_id=%s, name=%q", officeSpaceID, deskName)
			handlers.RespondNotFound(w, msgDeskNotFound)

		default:
			h.logger.Error("DELETE /office-spaces/{id}/desks/{name} - Failed to delete desk: office_id=%s, name=%q, error=%v",
				officeSpaceID, deskName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if err := editor.SaveLayout(r.Context()); err != nil {
		h.logger.Error("DELETE /office-spaces/{id}/desks/{name} - Failed to save layout: office_id=%s, error=%v", officeSpaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /office-spaces/{id}/desks/{name} - Desk deleted: office_id=%s, name=%q", officeSpaceID, deskName)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
