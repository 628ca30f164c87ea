package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/acornglobus/court-booking-service/internal/domain"
	catalogRepo "github.com/acornglobus/court-booking-service/internal/infra/storage/catalog"
	"github.com/acornglobus/court-booking-service/internal/service/catalog/models"
)

// Service сервис администрирования справочников: корты, тренеры,
// инвентарь, правила ценообразования. Сущности не удаляются, а
// деактивируются флагом isActive — на них ссылаются бронирования.
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Courts

// ListCourts возвращает корты
func (s *Service) ListCourts(ctx context.Context, onlyActive bool) ([]models.CourtResponse, error) {
	courts, err := s.repo.ListCourts(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListCourts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourts(courts), nil
}

// CreateCourt создает корт
func (s *Service) CreateCourt(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	courtType, err := parseCourtType(req.Type)
	if err != nil {
		return nil, err
	}
	if req.BaseRate < 0 {
		return nil, fmt.Errorf("%w: baseRate must not be negative", ErrInvalidInput)
	}

	s.logger.Info("CreateCourt: name=%s, type=%s", req.Name, req.Type)

	created, err := s.repo.CreateCourt(ctx, &domain.Court{
		Name:     req.Name,
		Location: req.Location,
		Type:     courtType,
		BaseRate: req.BaseRate,
		IsActive: true,
	})
	if err != nil {
		s.logger.Error("CreateCourt: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCourt: created courtId=%d", created.ID)
	return models.FromDomainCourt(created), nil
}

// UpdateCourt частично обновляет корт
func (s *Service) UpdateCourt(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	update := catalogRepo.CourtUpdate{
		Name:     req.Name,
		Location: req.Location,
		BaseRate: req.BaseRate,
		IsActive: req.IsActive,
	}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Type != nil {
		courtType, err := parseCourtType(*req.Type)
		if err != nil {
			return nil, err
		}
		update.Type = &courtType
	}
	if req.BaseRate != nil && *req.BaseRate < 0 {
		return nil, fmt.Errorf("%w: baseRate must not be negative", ErrInvalidInput)
	}

	s.logger.Info("UpdateCourt: courtId=%d", id)

	updated, err := s.repo.UpdateCourt(ctx, id, update)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCourtNotFound) {
			s.logger.Warn("UpdateCourt: courtId=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("UpdateCourt: repository error for courtId=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCourt - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourt(updated), nil
}

// Coaches

// ListCoaches возвращает тренеров с окнами доступности
func (s *Service) ListCoaches(ctx context.Context, onlyActive bool) ([]models.CoachResponse, error) {
	coaches, err := s.repo.ListCoaches(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListCoaches: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCoaches - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCoaches(coaches), nil
}

// CreateCoach создает тренера
func (s *Service) CreateCoach(ctx context.Context, req *models.CreateCoachRequest) (*models.CoachResponse, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if req.RatePerHour < 0 {
		return nil, fmt.Errorf("%w: ratePerHour must not be negative", ErrInvalidInput)
	}
	if err := validateWindows(req.Windows); err != nil {
		return nil, err
	}

	s.logger.Info("CreateCoach: name=%s, windows=%d", req.Name, len(req.Windows))

	created, err := s.repo.CreateCoach(ctx, &domain.Coach{
		Name:        req.Name,
		Bio:         req.Bio,
		City:        req.City,
		RatePerHour: req.RatePerHour,
		IsActive:    true,
		Windows:     models.ToDomainWindows(req.Windows),
	})
	if err != nil {
		s.logger.Error("CreateCoach: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCoach - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCoach: created coachId=%d", created.ID)
	return models.FromDomainCoach(created), nil
}

// UpdateCoach частично обновляет тренера, окна заменяются целиком
func (s *Service) UpdateCoach(ctx context.Context, id int64, req *models.UpdateCoachRequest) (*models.CoachResponse, error) {
	update := catalogRepo.CoachUpdate{
		Name:        req.Name,
		Bio:         req.Bio,
		City:        req.City,
		RatePerHour: req.RatePerHour,
		IsActive:    req.IsActive,
	}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.RatePerHour != nil && *req.RatePerHour < 0 {
		return nil, fmt.Errorf("%w: ratePerHour must not be negative", ErrInvalidInput)
	}
	if req.Windows != nil {
		if err := validateWindows(*req.Windows); err != nil {
			return nil, err
		}
		update.Windows = models.ToDomainWindows(*req.Windows)
	}

	s.logger.Info("UpdateCoach: coachId=%d", id)

	updated, err := s.repo.UpdateCoach(ctx, id, update)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCoachNotFound) {
			s.logger.Warn("UpdateCoach: coachId=%d not found", id)
			return nil, ErrCoachNotFound
		}
		s.logger.Error("UpdateCoach: repository error for coachId=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCoach - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCoach(updated), nil
}

// Equipment

// ListEquipment возвращает позиции инвентаря
func (s *Service) ListEquipment(ctx context.Context, onlyActive bool) ([]models.EquipmentResponse, error) {
	items, err := s.repo.ListEquipment(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEquipment - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEquipmentList(items), nil
}

// CreateEquipment создает позицию инвентаря
func (s *Service) CreateEquipment(ctx context.Context, req *models.CreateEquipmentRequest) (*models.EquipmentResponse, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if req.BaseFee < 0 {
		return nil, fmt.Errorf("%w: baseFee must not be negative", ErrInvalidInput)
	}

	s.logger.Info("CreateEquipment: name=%s, quantity=%d", req.Name, req.Quantity)

	created, err := s.repo.CreateEquipment(ctx, &domain.Equipment{
		Name:     req.Name,
		Quantity: req.Quantity,
		BaseFee:  req.BaseFee,
		IsActive: true,
	})
	if err != nil {
		s.logger.Error("CreateEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateEquipment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEquipment: created equipmentId=%d", created.ID)
	return models.FromDomainEquipment(created), nil
}

// UpdateEquipment частично обновляет позицию инвентаря
func (s *Service) UpdateEquipment(ctx context.Context, id int64, req *models.UpdateEquipmentRequest) (*models.EquipmentResponse, error) {
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if req.BaseFee != nil && *req.BaseFee < 0 {
		return nil, fmt.Errorf("%w: baseFee must not be negative", ErrInvalidInput)
	}

	s.logger.Info("UpdateEquipment: equipmentId=%d", id)

	updated, err := s.repo.UpdateEquipment(ctx, id, catalogRepo.EquipmentUpdate{
		Name:     req.Name,
		Quantity: req.Quantity,
		BaseFee:  req.BaseFee,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrEquipmentNotFound) {
			s.logger.Warn("UpdateEquipment: equipmentId=%d not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("UpdateEquipment: repository error for equipmentId=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateEquipment - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEquipment(updated), nil
}

// Pricing rules

// ListRules возвращает правила ценообразования
func (s *Service) ListRules(ctx context.Context, onlyActive bool) ([]models.RuleResponse, error) {
	rules, err := s.repo.ListRules(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRules(rules), nil
}

// CreateRule создает правило ценообразования
func (s *Service) CreateRule(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	spec, err := buildRuleSpec(req.RuleType, req.Adjustment, req.Amount, req.StartHour, req.EndHour)
	if err != nil {
		return nil, err
	}

	s.logger.Info("CreateRule: name=%s, type=%s", req.Name, req.RuleType)

	created, err := s.repo.CreateRule(ctx, &domain.PricingRule{
		Name:        req.Name,
		Description: req.Description,
		Spec:        spec,
		IsActive:    true,
	})
	if err != nil {
		s.logger.Error("CreateRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRule: created ruleId=%d", created.ID)
	return models.FromDomainRule(created), nil
}

// UpdateRule частично обновляет правило. Передача ruleType заменяет
// спецификацию целиком: adjustment и amount обязаны идти вместе с ним.
func (s *Service) UpdateRule(ctx context.Context, id int64, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	update := catalogRepo.RuleUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.RuleType != nil {
		if req.Adjustment == nil || req.Amount == nil {
			return nil, fmt.Errorf("%w: adjustment and amount are required when changing ruleType", ErrInvalidInput)
		}
		spec, err := buildRuleSpec(*req.RuleType, *req.Adjustment, *req.Amount, req.StartHour, req.EndHour)
		if err != nil {
			return nil, err
		}
		update.Spec = spec
	} else if req.Adjustment != nil || req.Amount != nil || req.StartHour != nil || req.EndHour != nil {
		return nil, fmt.Errorf("%w: ruleType is required when changing rule parameters", ErrInvalidInput)
	}

	s.logger.Info("UpdateRule: ruleId=%d", id)

	updated, err := s.repo.UpdateRule(ctx, id, update)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRuleNotFound) {
			s.logger.Warn("UpdateRule: ruleId=%d not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("UpdateRule: repository error for ruleId=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRule(updated), nil
}
