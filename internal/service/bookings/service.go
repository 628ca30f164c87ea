package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/acornglobus/court-booking-service/internal/domain"
	bookingRepo "github.com/acornglobus/court-booking-service/internal/infra/storage/booking"
	"github.com/acornglobus/court-booking-service/internal/service/bookings/models"
)

// defaultRecentLimit число записей истории по умолчанию
const defaultRecentLimit = 20

// maxRecentLimit потолок для параметра limit
const maxRecentLimit = 100

// Service сервис для работы с существующими бронированиями:
// просмотр, история, отмена. Создание бронирований выполняет
// отдельный use case.
type Service struct {
	bookingRepo BookingRepository
	cache       Cache
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, availabilityCache Cache, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		cache:       availabilityCache,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetRecent получает последние созданные бронирования.
// limit <= 0 означает значение по умолчанию.
func (s *Service) GetRecent(ctx context.Context, limit int) (*models.BookingListResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	s.logger.Info("GetRecent: fetching %d recent bookings", limit)

	summaries, err := s.bookingRepo.GetRecent(ctx, limit)
	if err != nil {
		s.logger.Error("GetRecent: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRecent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRecent: fetched %d bookings", len(summaries))
	return models.FromDomainSummaries(summaries), nil
}

// Cancel отменяет бронирование. Отмена освобождает корт, тренера и
// инвентарь; повторная отмена — ошибка.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling booking id=%d", id)

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrCannotCancel):
			s.logger.Warn("Cancel: booking id=%d is not cancellable", id)
			return nil, ErrCannotCancel
		default:
			s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - failed to reload booking: %v", ErrInternal, err)
	}

	// Слот снова доступен, кеш на дату бронирования устарел
	dateKey := booking.StartTime.Format(domain.DateFormat)
	if err := s.cache.Invalidate(ctx, dateKey); err != nil {
		s.logger.Warn("Cancel: cache invalidation failed for date=%s: %v", dateKey, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return models.FromDomainBooking(booking), nil
}
