package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	submitBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/submit_booking"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	DeskID string `json:"deskId"`
	Date   string `json:"date"` // "2025-10-15"
	Slot   string `json:"slot"` // morning | afternoon | full_day
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          string `json:"id"`
	DeskID      string `json:"deskId"`
	UserID      string `json:"userId"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) (*submitBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := domain.ParseTimeSlot(r.Slot)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		UserID: userID,
		DeskID: r.DeskID,
		Date:   date,
		Slot:   slot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		DeskID:      resp.DeskID,
		UserID:      resp.UserID,
		Date:        resp.Date.Format(domain.DateFormat),
		Slot:        string(resp.Slot),
		DisplayName: resp.DisplayName,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
