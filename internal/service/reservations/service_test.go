package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/reservation"
)

type fakeRepo struct {
	byID      map[string]*domain.Reservation
	deleted   []string
	deleteErr error
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeRepo) GetByFilter(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	return nil, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCancel_Owner(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*domain.Reservation{
		"r1": {ID: "r1", UserID: "user-1", DeskID: "desk-1", Slot: domain.SlotMorning},
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "r1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, repo.deleted)
}

func TestCancel_NotOwner(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*domain.Reservation{
		"r1": {ID: "r1", UserID: "user-1"},
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "r1", "user-2")
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Empty(t, repo.deleted)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{byID: map[string]*domain.Reservation{}}, nopLogger{})

	err := svc.Cancel(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_RepositoryError(t *testing.T) {
	repo := &fakeRepo{
		byID:      map[string]*domain.Reservation{"r1": {ID: "r1", UserID: "user-1"}},
		deleteErr: errors.New("connection lost"),
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "r1", "user-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{byID: map[string]*domain.Reservation{}}, nopLogger{})

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
