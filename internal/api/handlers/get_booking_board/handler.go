package get_booking_board

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	getBoard "github.com/m04kA/SMC-DeskBookingService/internal/usecase/get_booking_board"
)

const (
	msgOfficeSpaceNotFound = "офис не найден"
	msgInvalidRequest      = "некорректный запрос"
)

type Handler struct {
	useCase GetBookingBoardUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingBoardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/office-spaces/{officeSpaceID}/board
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	officeSpaceID := mux.Vars(r)["officeSpaceID"]

	// Доска доступна и без аутентификации, UserID влияет только на флаги mine
	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getBoard.Request{
		OfficeSpaceID: officeSpaceID,
		UserID:        userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBoard.ErrOfficeSpaceNotFound):
			h.logger.Warn("GET /office-spaces/{id}/board - Office space not found: id=%s", officeSpaceID)
			handlers.RespondNotFound(w, msgOfficeSpaceNotFound)

		case errors.Is(err, getBoard.ErrInvalidInput):
			h.logger.Warn("GET /office-spaces/{id}/board - Invalid request: id=%s, error=%v", officeSpaceID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /office-spaces/{id}/board - Failed to build board: id=%s, error=%v", officeSpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
