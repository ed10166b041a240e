package submit_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// validateRequest проверяет входные данные до обращения к хранилищу
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return ErrNotAuthenticated
	}
	if strings.TrimSpace(req.DeskID) == "" {
		return fmt.Errorf("%w: desk id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.Slot.IsValid() {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, string(req.Slot))
	}
	return nil
}

// validateDate проверяет попадание даты в окно бронирования (сегодня + 6 дней)
func validateDate(date time.Time, now time.Time) error {
	window := domain.NewDateWindow(now)
	if !window.Contains(date) {
		return fmt.Errorf("%w: booking is allowed from %s to %s",
			ErrDateOutOfWindow,
			window.First().Format(domain.DateFormat),
			window.Last().Format(domain.DateFormat))
	}
	return nil
}
