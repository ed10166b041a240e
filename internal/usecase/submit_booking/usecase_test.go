package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskstorage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
)

type fakeReservationRepo struct {
	existing  []*domain.Reservation
	created   *domain.Reservation
	getErr    error
	createErr error
}

func (f *fakeReservationRepo) GetByDeskAndDate(_ context.Context, _ string, _ time.Time) ([]*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	res.ID = "res-new"
	res.CreatedAt = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	f.created = res
	return res, nil
}

type fakeDeskRepo struct {
	desk *domain.Desk
	err  error
}

func (f *fakeDeskRepo) GetByID(_ context.Context, _ string) (*domain.Desk, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.desk, nil
}

type fakeUserClient struct {
	name string
	err  error
}

func (f *fakeUserClient) GetDisplayName(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.name, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	t time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.t
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)

func newTestUseCase(resRepo *fakeReservationRepo, deskRepo *fakeDeskRepo, userClient *fakeUserClient, txMgr *fakeTxManager) *UseCase {
	uc := NewUseCase(resRepo, deskRepo, userClient, txMgr, nopLogger{})
	uc.timeProvider = &fixedTime{t: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID: "user-1",
		DeskID: "desk-1",
		Date:   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		Slot:   domain.SlotMorning,
	}
}

func TestExecute_Success(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(
		resRepo,
		&fakeDeskRepo{desk: &domain.Desk{ID: "desk-1", OfficeSpaceID: "office-1", Name: "Desk 1"}},
		&fakeUserClient{name: "Ivan Petrov"},
		txMgr,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "res-new", resp.ID)
	assert.Equal(t, "desk-1", resp.DeskID)
	assert.Equal(t, domain.SlotMorning, resp.Slot)
	assert.Equal(t, "Ivan Petrov", resp.DisplayName)
	assert.Equal(t, 1, txMgr.calls)

	// Дата пишется без временной части
	require.NotNil(t, resRepo.created)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), resRepo.created.Date)
}

func TestExecute_SlotConflict_FullDayTaken(t *testing.T) {
	resRepo := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{ID: "r1", DeskID: "desk-1", UserID: "user-2", Slot: domain.SlotFullDay},
		},
	}
	uc := newTestUseCase(resRepo, &fakeDeskRepo{desk: &domain.Desk{ID: "desk-1"}}, &fakeUserClient{name: "x"}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, resRepo.created)
}

func TestExecute_SlotConflict_FullDayOverHalfDay(t *testing.T) {
	resRepo := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{ID: "r1", DeskID: "desk-1", UserID: "user-2", Slot: domain.SlotAfternoon},
		},
	}
	uc := newTestUseCase(resRepo, &fakeDeskRepo{desk: &domain.Desk{ID: "desk-1"}}, &fakeUserClient{name: "x"}, &fakeTxManager{})

	req := validRequest()
	req.Slot = domain.SlotFullDay

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_MorningAndAfternoonCoexist(t *testing.T) {
	resRepo := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{ID: "r1", DeskID: "desk-1", UserID: "user-2", Slot: domain.SlotMorning},
		},
	}
	uc := newTestUseCase(resRepo, &fakeDeskRepo{desk: &domain.Desk{ID: "desk-1"}}, &fakeUserClient{name: "x"}, &fakeTxManager{})

	req := validRequest()
	req.Slot = domain.SlotAfternoon

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotAfternoon, resp.Slot)
}

func TestExecute_NotAuthenticated(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeDeskRepo{desk: &domain.Desk{ID: "desk-1"}}, &fakeUserClient{name: "x"}, &fakeTxManager{})

	req := validRequest()
	req.UserID = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestExecute_DeskNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeDeskRepo{err: deskstorage.ErrDeskNotFound}, &fakeUserClient{name: "x"}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDeskNotFound)
}

func TestExecute_DateOutOfWindow(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeDeskRepo{desk: &domain.Desk{ID: "desk-1"}}, &fakeUserClient{name: "x"}, &fakeTxManager{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, domain.DateWindowDays) // первый день за окном

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateOutOfWindow)

	req.Date = testNow.AddDate(0, 0, -1)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateOutOfWindow)
}

func TestExecute_InvalidSlot(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeDeskRepo{desk: &domain.Desk{ID: "desk-1"}}, &fakeUserClient{name: "x"}, &fakeTxManager{})

	req := validRequest()
	req.Slot = domain.TimeSlot("evening")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DisplayNameDegradation(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	uc := newTestUseCase(resRepo, &fakeDeskRepo{desk: &domain.Desk{ID: "desk-1"}}, &fakeUserClient{err: errors.New("user service down")}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Недоступность UserService не блокирует бронирование
	assert.Equal(t, domain.UnknownUserName, resp.DisplayName)
}

func TestExecute_ConflictDetectedInsideTransaction(t *testing.T) {
	// Бронирование появляется между проверками - имитируем тем, что
	// репозиторий возвращает конфликтующую запись уже внутри транзакции
	resRepo := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{ID: "r1", DeskID: "desk-1", UserID: "user-2", Slot: domain.SlotMorning},
		},
	}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(resRepo, &fakeDeskRepo{desk: &domain.Desk{ID: "desk-1"}}, &fakeUserClient{name: "x"}, txMgr)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, 1, txMgr.calls)
}
