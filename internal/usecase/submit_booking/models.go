package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// Request запрос на создание бронирования
type Request struct {
	UserID string
	DeskID string
	Date   time.Time
	Slot   domain.TimeSlot
}

// Response созданное бронирование
type Response struct {
	ID          string
	DeskID      string
	UserID      string
	Date        time.Time
	Slot        domain.TimeSlot
	DisplayName string
	CreatedAt   time.Time
}
