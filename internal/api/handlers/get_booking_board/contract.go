package get_booking_board

import (
	"context"

	getBoard "github.com/m04kA/SMC-DeskBookingService/internal/usecase/get_booking_board"
)

type GetBookingBoardUseCase interface {
	Execute(ctx context.Context, req *getBoard.Request) (*getBoard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
