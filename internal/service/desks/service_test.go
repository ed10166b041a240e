package desks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskstorage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/officespace"
)

type fakeDeskRepo struct {
	desks  []*domain.Desk
	nextID int
}

func (f *fakeDeskRepo) Create(_ context.Context, officeSpaceID string, name string) (*domain.Desk, error) {
	for _, d := range f.desks {
		if d.Name == name {
			return nil, deskstorage.ErrDeskAlreadyExists
		}
	}
	f.nextID++
	desk := &domain.Desk{ID: "desk-1", OfficeSpaceID: officeSpaceID, Name: name}
	f.desks = append(f.desks, desk)
	return desk, nil
}

func (f *fakeDeskRepo) GetByOfficeSpace(_ context.Context, _ string) ([]*domain.Desk, error) {
	return f.desks, nil
}

func (f *fakeDeskRepo) DeleteByOfficeAndName(_ context.Context, _ string, name string) error {
	for i, d := range f.desks {
		if d.Name == name {
			f.desks = append(f.desks[:i], f.desks[i+1:]...)
			return nil
		}
	}
	return deskstorage.ErrDeskNotFound
}

type fakeOfficeRepo struct {
	exists bool
}

func (f *fakeOfficeRepo) GetByID(_ context.Context, id string) (*domain.OfficeSpace, error) {
	if !f.exists {
		return nil, officespace.ErrOfficeSpaceNotFound
	}
	return &domain.OfficeSpace{ID: id}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_AutoName(t *testing.T) {
	repo := &fakeDeskRepo{desks: []*domain.Desk{
		{ID: "d1", Name: "Desk 1"},
		{ID: "d2", Name: "Desk 2"},
	}}
	svc := NewService(repo, &fakeOfficeRepo{exists: true}, nopLogger{})

	// Пустое имя превращается в "Desk {число столов + 1}"
	desk, err := svc.Create(context.Background(), "office-1", "  ")
	require.NoError(t, err)
	assert.Equal(t, "Desk 3", desk.Name)
}

func TestCreate_ExplicitName(t *testing.T) {
	svc := NewService(&fakeDeskRepo{}, &fakeOfficeRepo{exists: true}, nopLogger{})

	desk, err := svc.Create(context.Background(), "office-1", "Window desk")
	require.NoError(t, err)
	assert.Equal(t, "Window desk", desk.Name)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := &fakeDeskRepo{desks: []*domain.Desk{{ID: "d1", Name: "Desk 1"}}}
	svc := NewService(repo, &fakeOfficeRepo{exists: true}, nopLogger{})

	_, err := svc.Create(context.Background(), "office-1", "Desk 1")
	assert.ErrorIs(t, err, ErrDeskAlreadyExists)
}

func TestCreate_OfficeNotFound(t *testing.T) {
	svc := NewService(&fakeDeskRepo{}, &fakeOfficeRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), "missing", "Desk 1")
	assert.ErrorIs(t, err, ErrOfficeSpaceNotFound)
}

func TestDelete(t *testing.T) {
	repo := &fakeDeskRepo{desks: []*domain.Desk{{ID: "d1", Name: "Desk 1"}}}
	svc := NewService(repo, &fakeOfficeRepo{exists: true}, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "office-1", "Desk 1"))
	assert.Empty(t, repo.desks)

	err := svc.Delete(context.Background(), "office-1", "Desk 1")
	assert.ErrorIs(t, err, ErrDeskNotFound)
}
