package delete_desk

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/service/layouteditor"
)

// LayoutEditorFactory открывает сессию редактора разметки офиса
// Удаление стола идет через редактор, чтобы вместе со столом пропадала
// его фигура на карте
type LayoutEditorFactory interface {
	Open(ctx context.Context, officeSpaceID string) (*layouteditor.Editor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
