package get_booking_board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	officeRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/officespace"
	"github.com/m04kA/SMC-DeskBookingService/internal/layout"
	"github.com/m04kA/SMC-DeskBookingService/pkg/ptr"
)

// UseCase use case сборки доски бронирования офиса
// Доска собирается синхронно в рамках запроса: окно дат, столы,
// бронирования и разметка читаются заново на каждый вызов, поэтому
// ответ всегда консистентен на момент чтения
type UseCase struct {
	officeRepo      OfficeSpaceRepository
	deskRepo        DeskRepository
	reservationRepo ReservationRepository
	nameCache       DisplayNameCache
	userClient      UserServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	officeRepo OfficeSpaceRepository,
	deskRepo DeskRepository,
	reservationRepo ReservationRepository,
	nameCache DisplayNameCache,
	userClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		officeRepo:      officeRepo,
		deskRepo:        deskRepo,
		reservationRepo: reservationRepo,
		nameCache:       nameCache,
		userClient:      userClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case сборки доски бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(req.OfficeSpaceID) == "" {
		return nil, fmt.Errorf("%w: office space id is required", ErrInvalidInput)
	}

	// 2. Строим окно дат: сегодня + 6 следующих дней
	now := uc.timeProvider.Now()
	window := domain.NewDateWindow(now)

	// 3. Получаем офис
	office, err := uc.officeRepo.GetByID(ctx, req.OfficeSpaceID)
	if err != nil {
		if errors.Is(err, officeRepo.ErrOfficeSpaceNotFound) {
			uc.logger.Warn("GetBookingBoard: office space id=%s not found", req.OfficeSpaceID)
			return nil, ErrOfficeSpaceNotFound
		}
		uc.logger.Error("GetBookingBoard: failed to get office space id=%s: %v", req.OfficeSpaceID, err)
		return nil, fmt.Errorf("%w: failed to get office space: %v", ErrInternal, err)
	}

	// 4. Получаем столы офиса
	deskList, err := uc.deskRepo.GetByOfficeSpace(ctx, req.OfficeSpaceID)
	if err != nil {
		uc.logger.Error("GetBookingBoard: failed to get desks for office id=%s: %v", req.OfficeSpaceID, err)
		return nil, fmt.Errorf("%w: failed to get desks: %v", ErrInternal, err)
	}

	// 5. Получаем бронирования всех столов в пределах окна одним запросом
	deskIDs := make([]string, 0, len(deskList))
	for _, desk := range deskList {
		deskIDs = append(deskIDs, desk.ID)
	}

	reservations, err := uc.reservationRepo.GetByFilter(ctx, domain.ReservationFilter{
		DeskIDs:   deskIDs,
		StartDate: ptr.Ptr(window.First()),
		EndDate:   ptr.Ptr(window.Last()),
	})
	if err != nil {
		uc.logger.Error("GetBookingBoard: failed to get reservations for office id=%s: %v", req.OfficeSpaceID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Резолвим актуальные отображаемые имена
	// Любой сбой кэша или UserService деградирует до снапшотов имен,
	// сохраненных при бронировании
	names := uc.resolveDisplayNames(ctx, reservations)

	// 7. Группируем бронирования по столам и собираем строки доски
	byDesk := make(map[string][]*domain.Reservation, len(deskList))
	for _, res := range reservations {
		byDesk[res.DeskID] = append(byDesk[res.DeskID], res)
	}

	rows := make([]DeskRow, 0, len(deskList))
	for _, desk := range deskList {
		rows = append(rows, uc.buildDeskRow(desk, byDesk[desk.ID], window, names, req.UserID))
	}

	// 8. Разбираем разметку и накладываем занятость на сегодня
	// Некорректный документ не ломает доску, карта просто остается пустой
	shapes, err := layout.Parse(office.LayoutDocument)
	if err != nil {
		uc.logger.Warn("GetBookingBoard: malformed layout for office id=%s, rendering without map: %v",
			req.OfficeSpaceID, err)
		shapes = nil
	}
	shapeViews := buildShapeViews(shapes, deskList, byDesk, now)

	uc.logger.Info("GetBookingBoard: office id=%s, %d desks, %d reservations in window %s..%s",
		req.OfficeSpaceID, len(deskList), len(reservations),
		window.First().Format(domain.DateFormat), window.Last().Format(domain.DateFormat))

	return &Response{
		OfficeSpaceID:   office.ID,
		OfficeSpaceName: office.Name,
		Dates:           window,
		Desks:           rows,
		Shapes:          shapeViews,
	}, nil
}

// buildDeskRow собирает строку доски для одного стола
func (uc *UseCase) buildDeskRow(
	desk *domain.Desk,
	reservations []*domain.Reservation,
	window domain.DateWindow,
	names map[string]string,
	requestingUserID string,
) DeskRow {
	cells := make([]Cell, 0, len(window))
	for _, date := range window {
		onDate := make([]*domain.Reservation, 0, 2)
		for _, res := range reservations {
			if res.IsOnDate(date) {
				onDate = append(onDate, res)
			}
		}

		availability := domain.ComputeDayAvailability(onDate)

		views := make([]ReservationView, 0, len(onDate))
		for _, res := range onDate {
			views = append(views, ReservationView{
				ID:          res.ID,
				Slot:        res.Slot,
				DisplayName: displayNameFor(res, names),
				Mine:        requestingUserID != "" && res.IsOwnedBy(requestingUserID),
			})
		}

		cells = append(cells, Cell{
			Date:            date,
			MorningBooked:   availability.MorningBooked,
			AfternoonBooked: availability.AfternoonBooked,
			FullDayBooked:   availability.FullDayBooked,
			Offered:         availability.Offered,
			Reservations:    views,
		})
	}

	return DeskRow{
		DeskID: desk.ID,
		Name:   desk.Name,
		Cells:  cells,
	}
}

// resolveDisplayNames возвращает актуальные имена пользователей из кэша,
// догружая недостающие из UserService одним bulk-запросом
func (uc *UseCase) resolveDisplayNames(ctx context.Context, reservations []*domain.Reservation) map[string]string {
	if len(reservations) == 0 {
		return nil
	}

	userIDs := make(map[string]struct{})
	for _, res := range reservations {
		userIDs[res.UserID] = struct{}{}
	}

	cached, ok, err := uc.nameCache.Get(ctx)
	if err != nil {
		uc.logger.Warn("GetBookingBoard: display name cache read failed: %v", err)
	}
	if !ok || cached == nil {
		cached = make(map[string]string)
	}

	missing := make([]string, 0, len(userIDs))
	for id := range userIDs {
		if _, found := cached[id]; !found {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return cached
	}

	fetched, err := uc.userClient.GetDisplayNames(ctx, missing)
	if err != nil {
		uc.logger.Warn("GetBookingBoard: failed to fetch %d display names, using snapshots: %v",
			len(missing), err)
		return cached
	}
	for id, name := range fetched {
		cached[id] = name
	}

	if err := uc.nameCache.Set(ctx, cached); err != nil {
		uc.logger.Warn("GetBookingBoard: display name cache write failed: %v", err)
	}

	return cached
}

// displayNameFor выбирает имя для отображения: актуальное из резолвера,
// иначе снапшот из бронирования, иначе заглушка
func displayNameFor(res *domain.Reservation, names map[string]string) string {
	if name, ok := names[res.UserID]; ok && name != "" {
		return name
	}
	if res.DisplayName != "" {
		return res.DisplayName
	}
	return domain.UnknownUserName
}

// buildShapeViews накладывает занятость на сегодня на фигуры разметки
func buildShapeViews(
	shapes []domain.DeskShape,
	deskList []*domain.Desk,
	byDesk map[string][]*domain.Reservation,
	now time.Time,
) []ShapeView {
	views := make([]ShapeView, 0, len(shapes))
	for i := range shapes {
		shape := shapes[i]
		occupied := false
		for _, desk := range deskList {
			if !shape.MatchesDesk(desk) {
				continue
			}
			for _, res := range byDesk[desk.ID] {
				if res.IsOnDate(now) {
					occupied = true
					break
				}
			}
			break
		}
		views = append(views, ShapeView{
			DeskShape:     shape,
			OccupiedToday: occupied,
		})
	}
	return views
}
