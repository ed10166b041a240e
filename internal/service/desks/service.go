package desks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskstorage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/officespace"
)

// Service сервис для работы со столами офиса
type Service struct {
	deskRepo   DeskRepository
	officeRepo OfficeSpaceRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(deskRepo DeskRepository, officeRepo OfficeSpaceRepository, logger Logger) *Service {
	return &Service{
		deskRepo:   deskRepo,
		officeRepo: officeRepo,
		logger:     logger,
	}
}

// ListByOfficeSpace возвращает столы офиса, отсортированные по имени
func (s *Service) ListByOfficeSpace(ctx context.Context, officeSpaceID string) ([]*domain.Desk, error) {
	if _, err := s.officeRepo.GetByID(ctx, officeSpaceID); err != nil {
		if errors.Is(err, officespace.ErrOfficeSpaceNotFound) {
			s.logger.Warn("ListByOfficeSpace: office space id=%s not found", officeSpaceID)
			return nil, ErrOfficeSpaceNotFound
		}
		s.logger.Error("ListByOfficeSpace: repository error for office id=%s: %v", officeSpaceID, err)
		return nil, fmt.Errorf("%w: ListByOfficeSpace - repository error: %v", ErrInternal, err)
	}

	result, err := s.deskRepo.GetByOfficeSpace(ctx, officeSpaceID)
	if err != nil {
		s.logger.Error("ListByOfficeSpace: repository error for office id=%s: %v", officeSpaceID, err)
		return nil, fmt.Errorf("%w: ListByOfficeSpace - repository error: %v", ErrInternal, err)
	}

	return result, nil
}

// Create создает новый стол в офисе
// Пустое имя заменяется на автоматическое "Desk {n+1}", где n - текущее число столов
func (s *Service) Create(ctx context.Context, officeSpaceID string, name string) (*domain.Desk, error) {
	if _, err := s.officeRepo.GetByID(ctx, officeSpaceID); err != nil {
		if errors.Is(err, officespace.ErrOfficeSpaceNotFound) {
			s.logger.Warn("Create: office space id=%s not found", officeSpaceID)
			return nil, ErrOfficeSpaceNotFound
		}
		s.logger.Error("Create: repository error for office id=%s: %v", officeSpaceID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		existing, err := s.deskRepo.GetByOfficeSpace(ctx, officeSpaceID)
		if err != nil {
			s.logger.Error("Create: failed to count desks for office id=%s: %v", officeSpaceID, err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		name = fmt.Sprintf("Desk %d", len(existing)+1)
	}
	if len(name) > domain.MaxDeskNameLength {
		s.logger.Warn("Create: desk name too long (%d chars) for office id=%s", len(name), officeSpaceID)
		return nil, fmt.Errorf("%w: desk name is too long", ErrInvalidInput)
	}

	desk, err := s.deskRepo.Create(ctx, officeSpaceID, name)
	if err != nil {
		if errors.Is(err, deskstorage.ErrDeskAlreadyExists) {
			s.logger.Warn("Create: desk name=%q already exists in office id=%s", name, officeSpaceID)
			return nil, ErrDeskAlreadyExists
		}
		s.logger.Error("Create: repository error for office id=%s: %v", officeSpaceID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created desk id=%s name=%q in office id=%s", desk.ID, desk.Name, officeSpaceID)
	return desk, nil
}

// Delete удаляет стол офиса по имени
// Бронирования стола удаляются каскадно на уровне БД
func (s *Service) Delete(ctx context.Context, officeSpaceID string, name string) error {
	if _, err := s.officeRepo.GetByID(ctx, officeSpaceID); err != nil {
		if errors.Is(err, officespace.ErrOfficeSpaceNotFound) {
			s.logger.Warn("Delete: office space id=%s not found", officeSpaceID)
			return ErrOfficeSpaceNotFound
		}
		s.logger.Error("Delete: repository error for office id=%s: %v", officeSpaceID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.deskRepo.DeleteByOfficeAndName(ctx, officeSpaceID, name); err != nil {
		if errors.Is(err, deskstorage.ErrDeskNotFound) {
			s.logger.Warn("Delete: desk name=%q not found in office id=%s", name, officeSpaceID)
			return ErrDeskNotFound
		}
		s.logger.Error("Delete: repository error for office id=%s: %v", officeSpaceID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted desk name=%q from office id=%s", name, officeSpaceID)
	return nil
}
