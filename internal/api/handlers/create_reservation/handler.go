package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	submitBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgDeskNotFound       = "стол не найден"
	msgDateOutOfWindow    = "дата вне окна бронирования"
	msgSlotConflict       = "выбранный временной слот недоступен"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: user_id=%s, error=%v", userID, err)
		if errors.Is(err, domain.ErrUnknownTimeSlot) {
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: user_id=%s, desk_id=%s, date=%s, slot=%s",
				userID, req.DeskID, req.Date, req.Slot)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, submitBooking.ErrDeskNotFound):
			h.logger.Warn("POST /reservations - Desk not found: user_id=%s, desk_id=%s", userID, req.DeskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, submitBooking.ErrDateOutOfWindow):
			h.logger.Warn("POST /reservations - Date out of window: user_id=%s, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, submitBooking.ErrNotAuthenticated):
			h.logger.Warn("POST /reservations - Not authenticated")
			handlers.RespondUnauthorized(w)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, desk_id=%s, error=%v",
				userID, req.DeskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, user_id=%s, desk_id=%s, date=%s, slot=%s",
		result.ID, userID, result.DeskID, req.Date, result.Slot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
