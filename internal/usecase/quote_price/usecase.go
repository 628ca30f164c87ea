package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/acornglobus/court-booking-service/internal/domain"
	"github.com/acornglobus/court-booking-service/internal/infra/storage/catalog"
)

// UseCase use case расчета стоимости бронирования
type UseCase struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute вычисляет детализацию стоимости по текущим справочникам.
// Котировка справочная и не резервирует ресурсы: итоговая цена
// пересчитывается заново в момент создания бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("QuotePrice: courtId=%d, start=%s, durationHrs=%d",
		req.CourtID, req.StartTime.Format("2006-01-02 15:04"), req.DurationHrs)

	// 2. Разрешаем все ссылки на справочники
	court, coach, equipment, quantities, err := uc.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Загружаем активные правила ценообразования
	rules, err := uc.catalogRepo.ListRules(ctx, true)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to list pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list pricing rules: %v", ErrInternal, err)
	}

	// 4. Считаем детализацию
	resp := computeBreakdown(court, coach, equipment, quantities, rules, req.StartTime, req.DurationHrs)

	uc.logger.Info("QuotePrice: courtId=%d total=%.2f (%d adjustments)",
		req.CourtID, resp.Total, len(resp.Adjustments))

	return resp, nil
}

// resolve загружает корт, тренера и инвентарь из запроса
func (uc *UseCase) resolve(ctx context.Context, req *Request) (
	*domain.Court, *domain.Coach, []*domain.Equipment, map[int64]int, error,
) {
	court, err := uc.catalogRepo.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, catalog.ErrCourtNotFound) {
			uc.logger.Warn("QuotePrice: court not found: id=%d", req.CourtID)
			return nil, nil, nil, nil, fmt.Errorf("%w: id=%d", ErrCourtNotFound, req.CourtID)
		}
		uc.logger.Error("QuotePrice: failed to get court: %v", err)
		return nil, nil, nil, nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	var coach *domain.Coach
	if req.CoachID != nil {
		coach, err = uc.catalogRepo.GetCoach(ctx, *req.CoachID)
		if err != nil {
			if errors.Is(err, catalog.ErrCoachNotFound) {
				uc.logger.Warn("QuotePrice: coach not found: id=%d", *req.CoachID)
				return nil, nil, nil, nil, fmt.Errorf("%w: id=%d", ErrCoachNotFound, *req.CoachID)
			}
			uc.logger.Error("QuotePrice: failed to get coach: %v", err)
			return nil, nil, nil, nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
		}
	}

	quantities := make(map[int64]int, len(req.Equipment))
	ids := make([]int64, 0, len(req.Equipment))
	for _, sel := range req.Equipment {
		if _, ok := quantities[sel.EquipmentID]; !ok {
			ids = append(ids, sel.EquipmentID)
		}
		quantities[sel.EquipmentID] += sel.Quantity
	}

	var equipment []*domain.Equipment
	if len(ids) > 0 {
		equipment, err = uc.catalogRepo.GetEquipmentByIDs(ctx, ids)
		if err != nil {
			if errors.Is(err, catalog.ErrEquipmentNotFound) {
				uc.logger.Warn("QuotePrice: equipment not found: ids=%v", ids)
				return nil, nil, nil, nil, fmt.Errorf("%w: ids=%v", ErrEquipmentNotFound, ids)
			}
			uc.logger.Error("QuotePrice: failed to get equipment: %v", err)
			return nil, nil, nil, nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
		}
	}

	return court, coach, equipment, quantities, nil
}
