package create_desk

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/service/layouteditor"
)

// LayoutEditorFactory открывает сессию редактора разметки офиса
// Добавление стола идет через редактор, чтобы вместе со столом появлялась
// фигура с геометрией по умолчанию
type LayoutEditorFactory interface {
	Open(ctx context.Context, officeSpaceID string) (*layouteditor.Editor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
