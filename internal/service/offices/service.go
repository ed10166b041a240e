package offices

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/officespace"
	"github.com/m04kA/SMC-DeskBookingService/internal/layout"
)

// emptyLayoutDocument layout document нового офиса
const emptyLayoutDocument = "[]"

// Service сервис для работы с офисами и их разметкой
type Service struct {
	officeRepo OfficeSpaceRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса офисов
func NewService(officeRepo OfficeSpaceRepository, logger Logger) *Service {
	return &Service{
		officeRepo: officeRepo,
		logger:     logger,
	}
}

// List возвращает все офисы с количеством столов
func (s *Service) List(ctx context.Context) ([]*domain.OfficeSpaceSummary, error) {
	summaries, err := s.officeRepo.GetAllSummaries(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d office spaces", len(summaries))
	return summaries, nil
}

// Create создает новый офис с пустой разметкой
func (s *Service) Create(ctx context.Context, name string) (*domain.OfficeSpace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		s.logger.Warn("Create: empty office name")
		return nil, fmt.Errorf("%w: office name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxOfficeSpaceNameLength {
		s.logger.Warn("Create: office name too long (%d chars)", len(name))
		return nil, fmt.Errorf("%w: office name is too long", ErrInvalidInput)
	}

	office, err := s.officeRepo.Create(ctx, name, emptyLayoutDocument)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created office space id=%s name=%q", office.ID, office.Name)
	return office, nil
}

// GetLayout возвращает разобранную разметку офиса
// Некорректный персистентный документ деградирует до пустого набора фигур
// с предупреждением в логе - просмотр офиса не должен блокироваться
func (s *Service) GetLayout(ctx context.Context, officeSpaceID string) ([]domain.DeskShape, error) {
	office, err := s.officeRepo.GetByID(ctx, officeSpaceID)
	if err != nil {
		if errors.Is(err, officespace.ErrOfficeSpaceNotFound) {
			s.logger.Warn("GetLayout: office space id=%s not found", officeSpaceID)
			return nil, ErrOfficeSpaceNotFound
		}
		s.logger.Error("GetLayout: repository error for office id=%s: %v", officeSpaceID, err)
		return nil, fmt.Errorf("%w: GetLayout - repository error: %v", ErrInternal, err)
	}

	shapes, err := layout.Parse(office.LayoutDocument)
	if err != nil {
		s.logger.Warn("GetLayout: malformed layout for office id=%s, degrading to empty: %v", officeSpaceID, err)
		return []domain.DeskShape{}, nil
	}

	return shapes, nil
}

// UpdateLayout сохраняет layout document офиса
// Запись строгая: некорректный документ отклоняется с ErrMalformedLayout,
// деградация допустима только на чтении
func (s *Service) UpdateLayout(ctx context.Context, officeSpaceID string, layoutDocument string) error {
	shapes, err := layout.Parse(layoutDocument)
	if err != nil {
		s.logger.Warn("UpdateLayout: rejected malformed layout for office id=%s: %v", officeSpaceID, err)
		return fmt.Errorf("%w: %v", ErrMalformedLayout, err)
	}

	// Персистим нормализованную форму (стабильный порядок полей,
	// rotation приведен к [0, 360))
	normalized, err := layout.Serialize(shapes)
	if err != nil {
		s.logger.Error("UpdateLayout: failed to serialize layout for office id=%s: %v", officeSpaceID, err)
		return fmt.Errorf("%w: UpdateLayout - serialize: %v", ErrInternal, err)
	}

	if err := s.officeRepo.UpdateLayout(ctx, officeSpaceID, normalized); err != nil {
		if errors.Is(err, officespace.ErrOfficeSpaceNotFound) {
			s.logger.Warn("UpdateLayout: office space id=%s not found", officeSpaceID)
			return ErrOfficeSpaceNotFound
		}
		s.logger.Error("UpdateLayout: repository error for office id=%s: %v", officeSpaceID, err)
		return fmt.Errorf("%w: UpdateLayout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateLayout: saved layout for office id=%s (%d shapes)", officeSpaceID, len(shapes))
	return nil
}
