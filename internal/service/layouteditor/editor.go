package layouteditor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/layout"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/offices"
)

// Editor сессия редактирования разметки одного офиса
// Сессия владеет собственной рабочей поверхностью, правки видны
// другим пользователям только после SaveLayout
type Editor struct {
	officeSpaceID string
	surface       Surface

	layoutProvider LayoutProvider
	deskManager    DeskManager
	logger         Logger
}

// Factory открывает сессии редактирования разметки
type Factory struct {
	layoutProvider LayoutProvider
	deskManager    DeskManager
	logger         Logger
}

// NewFactory создает фабрику сессий редактора
func NewFactory(layoutProvider LayoutProvider, deskManager DeskManager, logger Logger) *Factory {
	return &Factory{
		layoutProvider: layoutProvider,
		deskManager:    deskManager,
		logger:         logger,
	}
}

// Open загружает текущую разметку офиса на новую рабочую поверхность
// Столы без фигуры на поверхность не попадают, фигура появится при
// следующем добавлении через редактор
func (f *Factory) Open(ctx context.Context, officeSpaceID string) (*Editor, error) {
	shapes, err := f.layoutProvider.GetLayout(ctx, officeSpaceID)
	if err != nil {
		if errors.Is(err, offices.ErrOfficeSpaceNotFound) {
			return nil, ErrOfficeSpaceNotFound
		}
		f.logger.Error("Open: failed to load layout for office id=%s: %v", officeSpaceID, err)
		return nil, fmt.Errorf("%w: Open - load layout: %v", ErrInternal, err)
	}

	deskList, err := f.deskManager.ListByOfficeSpace(ctx, officeSpaceID)
	if err != nil {
		if errors.Is(err, desks.ErrOfficeSpaceNotFound) {
			return nil, ErrOfficeSpaceNotFound
		}
		f.logger.Error("Open: failed to load desks for office id=%s: %v", officeSpaceID, err)
		return nil, fmt.Errorf("%w: Open - load desks: %v", ErrInternal, err)
	}

	surface := NewMemorySurface()
	for i := range shapes {
		shape := shapes[i]
		obj := &Object{
			ID:     shape.ID,
			DeskID: shape.DeskID,
			Name:   shape.Name,
			Rect: &Rect{
				X:        shape.X,
				Y:        shape.Y,
				Width:    shape.Width,
				Height:   shape.Height,
				Fill:     shape.Fill,
				Rotation: shape.Rotation,
			},
		}
		// Старые документы могут не содержать desk_id, восстанавливаем
		// привязку по имени стола
		if obj.DeskID == "" {
			for _, desk := range deskList {
				if shape.MatchesDesk(desk) {
					obj.DeskID = desk.ID
					break
				}
			}
		}
		surface.AddObject(obj)
	}

	f.logger.Info("Open: editor session started for office id=%s (%d shapes)", officeSpaceID, len(shapes))
	return &Editor{
		officeSpaceID:  officeSpaceID,
		surface:        surface,
		layoutProvider: f.layoutProvider,
		deskManager:    f.deskManager,
		logger:         f.logger,
	}, nil
}

// Surface возвращает рабочую поверхность сессии
func (e *Editor) Surface() Surface {
	return e.surface
}

// AddDesk создает стол и его фигуру с геометрией по умолчанию
// Сначала создается запись стола, затем фигура - фигура без стола
// существовать не должна
func (e *Editor) AddDesk(ctx context.Context, name string) (*Object, error) {
	desk, err := e.deskManager.Create(ctx, e.officeSpaceID, name)
	if err != nil {
		switch {
		case errors.Is(err, desks.ErrOfficeSpaceNotFound):
			return nil, ErrOfficeSpaceNotFound
		case errors.Is(err, desks.ErrDeskAlreadyExists):
			return nil, ErrDeskAlreadyExists
		case errors.Is(err, desks.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		e.logger.Error("AddDesk: failed to create desk in office id=%s: %v", e.officeSpaceID, err)
		return nil, fmt.Errorf("%w: AddDesk - create desk: %v", ErrInternal, err)
	}

	obj := &Object{
		ID:     uuid.NewString(),
		DeskID: desk.ID,
		Name:   desk.Name,
		Rect: &Rect{
			X:        domain.DefaultShapeX,
			Y:        domain.DefaultShapeY,
			Width:    domain.DefaultShapeWidth,
			Height:   domain.DefaultShapeHeight,
			Fill:     domain.DefaultShapeFill,
			Rotation: 0,
		},
	}
	e.surface.AddObject(obj)

	e.logger.Info("AddDesk: added desk id=%s name=%q to surface of office id=%s", desk.ID, desk.Name, e.officeSpaceID)
	return obj, nil
}

// DeleteSelected удаляет выбранную фигуру вместе с ее столом
func (e *Editor) DeleteSelected(ctx context.Context) error {
	obj, ok := e.surface.Selected()
	if !ok {
		return ErrNoSelection
	}

	err := e.DeleteDesk(ctx, obj.Name)
	if errors.Is(err, ErrDeskNotFound) {
		// Стол уже удален в другой сессии, фигуру все равно убираем
		e.logger.Warn("DeleteSelected: desk name=%q already gone in office id=%s", obj.Name, e.officeSpaceID)
		e.surface.RemoveObject(obj.ID)
		return nil
	}
	return err
}

// DeleteDesk удаляет стол по имени вместе с его фигурами на поверхности
func (e *Editor) DeleteDesk(ctx context.Context, name string) error {
	if err := e.deskManager.Delete(ctx, e.officeSpaceID, name); err != nil {
		switch {
		case errors.Is(err, desks.ErrOfficeSpaceNotFound):
			return ErrOfficeSpaceNotFound
		case errors.Is(err, desks.ErrDeskNotFound):
			return ErrDeskNotFound
		}
		e.logger.Error("DeleteDesk: failed to delete desk name=%q in office id=%s: %v", name, e.officeSpaceID, err)
		return fmt.Errorf("%w: DeleteDesk - delete desk: %v", ErrInternal, err)
	}

	for _, obj := range e.surface.Objects() {
		if obj.Name == name {
			e.surface.RemoveObject(obj.ID)
		}
	}

	e.logger.Info("DeleteDesk: removed desk name=%q from office id=%s", name, e.officeSpaceID)
	return nil
}

// SaveLayout сериализует поверхность и сохраняет разметку офиса
// Объекты без геометрии в документ не попадают
func (e *Editor) SaveLayout(ctx context.Context) error {
	objects := e.surface.Objects()
	shapes := make([]domain.DeskShape, 0, len(objects))
	for _, obj := range objects {
		if obj.Rect == nil {
			e.logger.Warn("SaveLayout: object id=%s name=%q has no rect, skipping", obj.ID, obj.Name)
			continue
		}
		shapes = append(shapes, domain.DeskShape{
			ID:       obj.ID,
			X:        obj.Rect.X,
			Y:        obj.Rect.Y,
			Width:    obj.Rect.Width,
			Height:   obj.Rect.Height,
			Fill:     obj.Rect.Fill,
			Name:     obj.Name,
			Rotation: domain.NormalizeRotation(obj.Rect.Rotation),
			DeskID:   obj.DeskID,
		})
	}

	document, err := layout.Serialize(shapes)
	if err != nil {
		e.logger.Error("SaveLayout: failed to serialize surface of office id=%s: %v", e.officeSpaceID, err)
		return fmt.Errorf("%w: SaveLayout - serialize: %v", ErrInternal, err)
	}

	if err := e.layoutProvider.UpdateLayout(ctx, e.officeSpaceID, document); err != nil {
		if errors.Is(err, offices.ErrOfficeSpaceNotFound) {
			return ErrOfficeSpaceNotFound
		}
		e.logger.Error("SaveLayout: failed to persist layout of office id=%s: %v", e.officeSpaceID, err)
		return fmt.Errorf("%w: SaveLayout - persist: %v", ErrInternal, err)
	}

	e.logger.Info("SaveLayout: persisted layout for office id=%s (%d shapes)", e.officeSpaceID, len(shapes))
	return nil
}

// Close освобождает рабочую поверхность сессии
func (e *Editor) Close() {
	e.surface.Clear()
	e.logger.Info("Close: editor session closed for office id=%s", e.officeSpaceID)
}
