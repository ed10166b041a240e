package layouteditor

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/layout"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/offices"
)

// fakeBackend имитирует связку offices + desks сервисов поверх памяти
type fakeBackend struct {
	shapes    []domain.DeskShape
	deskList  []*domain.Desk
	saved     string
	saveCount int
	nextDesk  int
}

func (f *fakeBackend) GetLayout(_ context.Context, officeSpaceID string) ([]domain.DeskShape, error) {
	if officeSpaceID != "office-1" {
		return nil, offices.ErrOfficeSpaceNotFound
	}
	return f.shapes, nil
}

func (f *fakeBackend) UpdateLayout(_ context.Context, officeSpaceID string, layoutDocument string) error {
	if officeSpaceID != "office-1" {
		return offices.ErrOfficeSpaceNotFound
	}
	f.saved = layoutDocument
	f.saveCount++
	return nil
}

func (f *fakeBackend) ListByOfficeSpace(_ context.Context, officeSpaceID string) ([]*domain.Desk, error) {
	if officeSpaceID != "office-1" {
		return nil, desks.ErrOfficeSpaceNotFound
	}
	return f.deskList, nil
}

func (f *fakeBackend) Create(_ context.Context, officeSpaceID string, name string) (*domain.Desk, error) {
	for _, d := range f.deskList {
		if d.Name == name {
			return nil, desks.ErrDeskAlreadyExists
		}
	}
	f.nextDesk++
	desk := &domain.Desk{
		ID:            fmt.Sprintf("desk-%d", f.nextDesk),
		OfficeSpaceID: officeSpaceID,
		Name:          name,
	}
	f.deskList = append(f.deskList, desk)
	return desk, nil
}

func (f *fakeBackend) Delete(_ context.Context, _ string, name string) error {
	for i, d := range f.deskList {
		if d.Name == name {
			f.deskList = append(f.deskList[:i], f.deskList[i+1:]...)
			return nil
		}
	}
	return desks.ErrDeskNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFactory(backend *fakeBackend) *Factory {
	return NewFactory(backend, backend, nopLogger{})
}

func TestOpen_OfficeNotFound(t *testing.T) {
	factory := newFactory(&fakeBackend{})

	_, err := factory.Open(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOfficeSpaceNotFound)
}

func TestOpen_RestoresDeskBindingByName(t *testing.T) {
	backend := &fakeBackend{
		shapes: []domain.DeskShape{
			{ID: "s1", X: 1, Y: 2, Width: 10, Height: 20, Name: "Desk 1"},
		},
		deskList: []*domain.Desk{{ID: "desk-1", Name: "Desk 1"}},
	}
	factory := newFactory(backend)

	editor, err := factory.Open(context.Background(), "office-1")
	require.NoError(t, err)

	objects := editor.Surface().Objects()
	require.Len(t, objects, 1)
	assert.Equal(t, "desk-1", objects[0].DeskID)
}

func TestAddDesk_CreatesDeskAndDefaultShape(t *testing.T) {
	backend := &fakeBackend{}
	factory := newFactory(backend)

	editor, err := factory.Open(context.Background(), "office-1")
	require.NoError(t, err)

	obj, err := editor.AddDesk(context.Background(), "Window desk")
	require.NoError(t, err)

	assert.Equal(t, "desk-1", obj.DeskID)
	assert.Equal(t, "Window desk", obj.Name)
	assert.NotEmpty(t, obj.ID)

	require.NotNil(t, obj.Rect)
	assert.Equal(t, domain.DefaultShapeX, obj.Rect.X)
	assert.Equal(t, domain.DefaultShapeY, obj.Rect.Y)
	assert.Equal(t, domain.DefaultShapeWidth, obj.Rect.Width)
	assert.Equal(t, domain.DefaultShapeHeight, obj.Rect.Height)
	assert.Equal(t, domain.DefaultShapeFill, obj.Rect.Fill)
}

func TestAddDesk_DuplicateName(t *testing.T) {
	backend := &fakeBackend{deskList: []*domain.Desk{{ID: "desk-1", Name: "Desk 1"}}}
	factory := newFactory(backend)

	editor, err := factory.Open(context.Background(), "office-1")
	require.NoError(t, err)

	_, err = editor.AddDesk(context.Background(), "Desk 1")
	assert.ErrorIs(t, err, ErrDeskAlreadyExists)
}

func TestEditScenario_AddMoveRotateSave(t *testing.T) {
	backend := &fakeBackend{}
	factory := newFactory(backend)

	editor, err := factory.Open(context.Background(), "office-1")
	require.NoError(t, err)

	obj, err := editor.AddDesk(context.Background(), "Desk A")
	require.NoError(t, err)

	// Двигаем и поворачиваем фигуру на поверхности
	moved := *obj.Rect
	moved.X = 300
	moved.Y = 120
	moved.Rotation = 45
	require.True(t, editor.Surface().SetTransform(obj.ID, moved))

	require.NoError(t, editor.SaveLayout(context.Background()))
	require.Equal(t, 1, backend.saveCount)

	shapes, err := layout.Parse(backend.saved)
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	assert.Equal(t, 300.0, shapes[0].X)
	assert.Equal(t, 120.0, shapes[0].Y)
	assert.Equal(t, 45.0, shapes[0].Rotation)
	assert.Equal(t, "desk-1", shapes[0].DeskID)
	assert.Equal(t, "Desk A", shapes[0].Name)
}

func TestSaveLayout_DropsObjectsWithoutRect(t *testing.T) {
	backend := &fakeBackend{}
	factory := newFactory(backend)

	editor, err := factory.Open(context.Background(), "office-1")
	require.NoError(t, err)

	_, err = editor.AddDesk(context.Background(), "Desk A")
	require.NoError(t, err)

	editor.Surface().AddObject(&Object{ID: "ghost", Name: "Ghost desk"})

	require.NoError(t, editor.SaveLayout(context.Background()))

	shapes, err := layout.Parse(backend.saved)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, "Desk A", shapes[0].Name)
}

func TestDeleteSelected(t *testing.T) {
	backend := &fakeBackend{}
	factory := newFactory(backend)

	editor, err := factory.Open(context.Background(), "office-1")
	require.NoError(t, err)

	obj, err := editor.AddDesk(context.Background(), "Desk A")
	require.NoError(t, err)

	// Без выбора удалять нечего
	assert.ErrorIs(t, editor.DeleteSelected(context.Background()), ErrNoSelection)

	require.True(t, editor.Surface().Select(obj.ID))
	require.NoError(t, editor.DeleteSelected(context.Background()))

	assert.Empty(t, editor.Surface().Objects())
	assert.Empty(t, backend.deskList)
}

func TestDeleteDesk_NotFound(t *testing.T) {
	factory := newFactory(&fakeBackend{})

	editor, err := factory.Open(context.Background(), "office-1")
	require.NoError(t, err)

	assert.ErrorIs(t, editor.DeleteDesk(context.Background(), "missing"), ErrDeskNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	backend := &fakeBackend{}
	factory := newFactory(backend)

	first, err := factory.Open(context.Background(), "office-1")
	require.NoError(t, err)
	second, err := factory.Open(context.Background(), "office-1")
	require.NoError(t, err)

	_, err = first.AddDesk(context.Background(), "Desk A")
	require.NoError(t, err)

	// Правки одной сессии не видны другой до сохранения
	assert.Len(t, first.Surface().Objects(), 1)
	assert.Empty(t, second.Surface().Objects())
}
