package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acornglobus/court-booking-service/internal/domain"
	"github.com/acornglobus/court-booking-service/internal/infra/storage/booking"
	"github.com/acornglobus/court-booking-service/internal/infra/storage/catalog"
	"github.com/acornglobus/court-booking-service/internal/usecase/quote_price"
)

// maxReferenceAttempts ограничивает повторные попытки при коллизии reference
const maxReferenceAttempts = 3

// UseCase use case создания бронирования.
// Проверка конфликтов и запись выполняются в одной сериализуемой
// транзакции: конкурирующие запросы на тот же ресурс не могут закоммитить
// пересекающиеся бронирования. Exclusion constraints БД дублируют проверку
// на случай записи в обход сервиса.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	pricing     PricingEngine
	txManager   TransactionManager
	cache       Cache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	pricing PricingEngine,
	txManager TransactionManager,
	availabilityCache Cache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		pricing:     pricing,
		txManager:   txManager,
		cache:       availabilityCache,
		logger:      logger,
	}
}

// Execute создает бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: userName=%s, courtId=%d, start=%s, durationHrs=%d",
		req.UserName, req.CourtID, req.StartTime.Format("2006-01-02 15:04"), req.DurationHrs)

	// 2. Создаем в сериализуемой транзакции, с повторной генерацией
	// reference при коллизии
	var created *domain.Booking
	var quote *quote_price.Response
	var err error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		created, quote, err = uc.createOnce(ctx, req, newReference())
		if !errors.Is(err, booking.ErrDuplicateReference) {
			break
		}
		uc.logger.Warn("CreateBooking: reference collision, retrying (attempt %d)", attempt+1)
	}
	if err != nil {
		return nil, err
	}

	// 3. Инвалидируем кеш доступности (ошибка кеша не фатальна)
	dateKey := req.StartTime.Format(domain.DateFormat)
	if err := uc.cache.Invalidate(ctx, dateKey); err != nil {
		uc.logger.Warn("CreateBooking: cache invalidation failed for date=%s: %v", dateKey, err)
	}

	uc.logger.Info("CreateBooking: created bookingId=%d, reference=%s, total=%.2f",
		created.ID, created.Reference, created.TotalPrice)

	return &Response{
		ID:          created.ID,
		Reference:   created.Reference,
		UserName:    created.UserName,
		CourtID:     created.CourtID,
		CoachID:     created.CoachID,
		StartTime:   created.StartTime,
		DurationHrs: created.DurationHrs,
		TotalPrice:  created.TotalPrice,
		Status:      created.Status,
		CreatedAt:   created.CreatedAt,
		Pricing:     quote,
	}, nil
}

// createOnce выполняет одну попытку создания с указанным reference
func (uc *UseCase) createOnce(ctx context.Context, req *Request, reference string) (*domain.Booking, *quote_price.Response, error) {
	var created *domain.Booking
	var quote *quote_price.Response

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем и блокируем бронирования дня
		day := startOfDay(req.StartTime)
		bookings, err := uc.bookingRepo.GetConfirmedForDay(txCtx, day)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for day: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 2. Разрешаем запрошенный инвентарь
		var equipment []*domain.Equipment
		if len(req.Equipment) > 0 {
			ids := make([]int64, 0, len(req.Equipment))
			for _, sel := range req.Equipment {
				ids = append(ids, sel.EquipmentID)
			}
			equipment, err = uc.catalogRepo.GetEquipmentByIDs(txCtx, ids)
			if err != nil {
				if errors.Is(err, catalog.ErrEquipmentNotFound) {
					return fmt.Errorf("%w: ids=%v", ErrEquipmentNotFound, ids)
				}
				uc.logger.Error("CreateBooking: failed to get equipment: %v", err)
				return fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
			}
		}

		// 3. Проверяем конфликты: корт, тренер, инвентарь
		if err := checkConflicts(req, bookings, equipment); err != nil {
			uc.logger.Warn("CreateBooking: conflict detected: %v", err)
			return err
		}

		// 4. Считаем итоговую стоимость
		quote, err = uc.pricing.Execute(txCtx, &quote_price.Request{
			CourtID:     req.CourtID,
			CoachID:     req.CoachID,
			Equipment:   equipmentSelections(req.Equipment),
			StartTime:   req.StartTime,
			DurationHrs: req.DurationHrs,
		})
		if err != nil {
			return translatePricingError(err)
		}

		// 5. Сохраняем бронирование со строками инвентаря
		lines := make([]domain.EquipmentLine, 0, len(req.Equipment))
		for _, sel := range req.Equipment {
			lines = append(lines, domain.EquipmentLine{
				EquipmentID: sel.EquipmentID,
				Quantity:    sel.Quantity,
			})
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			Reference:   reference,
			UserName:    req.UserName,
			Contact:     req.Contact,
			CourtID:     req.CourtID,
			CoachID:     req.CoachID,
			StartTime:   req.StartTime,
			DurationHrs: req.DurationHrs,
			TotalPrice:  quote.Total,
			Status:      domain.StatusConfirmed,
			Notes:       req.Notes,
			Lines:       lines,
		})
		if err != nil {
			return translateCreateError(err, uc.logger)
		}

		return nil
	})
	if txErr != nil {
		return nil, nil, txErr
	}

	return created, quote, nil
}

// translatePricingError переводит ошибки расчета стоимости в ошибки
// данного use case
func translatePricingError(err error) error {
	switch {
	case errors.Is(err, quote_price.ErrCourtNotFound):
		return fmt.Errorf("%w: %v", ErrCourtNotFound, err)
	case errors.Is(err, quote_price.ErrCoachNotFound):
		return fmt.Errorf("%w: %v", ErrCoachNotFound, err)
	case errors.Is(err, quote_price.ErrEquipmentNotFound):
		return fmt.Errorf("%w: %v", ErrEquipmentNotFound, err)
	case errors.Is(err, quote_price.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: failed to compute price: %v", ErrInternal, err)
	}
}

// translateCreateError переводит ошибки хранилища в ошибки use case.
// Нарушения exclusion constraints означают конкурентную запись, которую
// проверка конфликтов в этой транзакции не могла видеть.
func translateCreateError(err error, logger Logger) error {
	switch {
	case errors.Is(err, booking.ErrCourtOverlap):
		return fmt.Errorf("%w: %v", ErrCourtConflict, err)
	case errors.Is(err, booking.ErrCoachOverlap):
		return fmt.Errorf("%w: %v", ErrCoachConflict, err)
	case errors.Is(err, booking.ErrDuplicateReference):
		return err
	default:
		logger.Error("CreateBooking: failed to create booking: %v", err)
		return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}
}

func equipmentSelections(selections []Selection) []quote_price.Selection {
	result := make([]quote_price.Selection, 0, len(selections))
	for _, sel := range selections {
		result = append(result, quote_price.Selection{
			EquipmentID: sel.EquipmentID,
			Quantity:    sel.Quantity,
		})
	}
	return result
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
