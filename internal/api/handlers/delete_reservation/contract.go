package delete_reservation

import "context"

type ReservationsService interface {
	Cancel(ctx context.Context, reservationID string, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
