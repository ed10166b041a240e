package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/reservations"
)

const (
	msgReservationNotFound = "бронирование не найдено"
	msgNotOwner            = "можно отменять только свои бронирования"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationID}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	reservationID := mux.Vars(r)["reservationID"]

	if err := h.service.Cancel(r.Context(), reservationID, userID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: id=%s, user_id=%s", reservationID, userID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrNotOwner):
			h.logger.Warn("DELETE /reservations/{id} - Not owner: id=%s, user_id=%s", reservationID, userID)
			handlers.RespondForbidden(w, msgNotOwner)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to cancel reservation: id=%s, user_id=%s, error=%v",
				reservationID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation cancelled: id=%s, user_id=%s", reservationID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
