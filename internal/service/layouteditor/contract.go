package layouteditor

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// LayoutProvider читает и сохраняет разметку офиса
type LayoutProvider interface {
	GetLayout(ctx context.Context, officeSpaceID string) ([]domain.DeskShape, error)
	UpdateLayout(ctx context.Context, officeSpaceID string, layoutDocument string) error
}

// DeskManager управляет столами офиса
type DeskManager interface {
	ListByOfficeSpace(ctx context.Context, officeSpaceID string) ([]*domain.Desk, error)
	Create(ctx context.Context, officeSpaceID string, name string) (*domain.Desk, error)
	Delete(ctx context.Context, officeSpaceID string, name string) error
}

// Surface рабочая поверхность редактора разметки
// Каждая сессия редактирования владеет собственной поверхностью,
// общего глобального состояния между сессиями нет
type Surface interface {
	// AddObject добавляет объект на поверхность
	AddObject(obj *Object)

	// RemoveObject убирает объект с поверхности
	RemoveObject(id string)

	// ObjectByID возвращает объект по идентификатору
	ObjectByID(id string) (*Object, bool)

	// Objects возвращает все объекты в порядке добавления
	Objects() []*Object

	// SetTransform обновляет позицию/размер/поворот объекта
	SetTransform(id string, rect Rect) bool

	// Select помечает объект выбранным, пустой id снимает выбор
	Select(id string) bool

	// Selected возвращает текущий выбранный объект
	Selected() (*Object, bool)

	// Clear убирает все объекты и сбрасывает выбор
	Clear()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
