package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/acornglobus/court-booking-service/internal/domain"
	"github.com/acornglobus/court-booking-service/internal/infra/cache"
)

// UseCase use case вычисления доступности ресурсов на дату.
// Результат справочный: авторитетна только повторная проверка в момент
// коммита бронирования, поэтому ответы можно кешировать с коротким TTL.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	cache       Cache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	availabilityCache Cache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		cache:       availabilityCache,
		logger:      logger,
	}
}

// Execute вычисляет доступность по слотам на указанную дату.
// Чистая функция даты и текущего состояния хранилища: один и тот же
// запрос при неизменных данных дает один и тот же ответ.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	dateKey := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailability: date=%s", dateKey)

	// 2. Пробуем кеш
	if payload, err := uc.cache.Get(ctx, dateKey); err == nil {
		var cached Response
		if err := json.Unmarshal(payload, &cached); err == nil {
			uc.logger.Info("GetAvailability: cache hit for date=%s", dateKey)
			return &cached, nil
		}
		uc.logger.Warn("GetAvailability: failed to decode cached payload for date=%s, recomputing", dateKey)
	} else if !errors.Is(err, cache.ErrMiss) {
		// Недоступный кеш не мешает посчитать доступность из хранилища
		uc.logger.Warn("GetAvailability: cache get failed for date=%s: %v", dateKey, err)
	}

	// 3. Загружаем бронирования дня одним запросом
	bookings, err := uc.bookingRepo.GetConfirmedForDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for date=%s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Загружаем активные справочники
	courts, err := uc.catalogRepo.ListCourts(ctx, true)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	coaches, err := uc.catalogRepo.ListCoaches(ctx, true)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list coaches: %v", err)
		return nil, fmt.Errorf("%w: failed to list coaches: %v", ErrInternal, err)
	}

	equipment, err := uc.catalogRepo.ListEquipment(ctx, true)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list equipment: %v", err)
		return nil, fmt.Errorf("%w: failed to list equipment: %v", ErrInternal, err)
	}

	// 5. Вычисляем доступность по слотам
	response := &Response{
		Date:  req.Date,
		Slots: computeSlots(req.Date, bookings, courts, coaches, equipment),
	}

	// 6. Кешируем результат (ошибка кеша не фатальна)
	if payload, err := json.Marshal(response); err == nil {
		if err := uc.cache.Set(ctx, dateKey, payload); err != nil {
			uc.logger.Warn("GetAvailability: cache set failed for date=%s: %v", dateKey, err)
		}
	}

	uc.logger.Info("GetAvailability: computed %d slots for date=%s (%d bookings)",
		len(response.Slots), dateKey, len(bookings))

	return response, nil
}
