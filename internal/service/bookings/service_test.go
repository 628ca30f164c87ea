package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acornglobus/court-booking-service/internal/domain"
	bookingRepo "github.com/acornglobus/court-booking-service/internal/infra/storage/booking"
	"github.com/acornglobus/court-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubRepo struct {
	bookings  map[int64]*domain.Booking
	summaries []*domain.BookingSummary

	recentLimit int
	cancelled   []int64
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if b, ok := s.bookings[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *stubRepo) GetRecent(ctx context.Context, limit int) ([]*domain.BookingSummary, error) {
	s.recentLimit = limit
	if limit < len(s.summaries) {
		return s.summaries[:limit], nil
	}
	return s.summaries, nil
}

func (s *stubRepo) Cancel(ctx context.Context, id int64) error {
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !b.CanBeCancelled() {
		return bookingRepo.ErrCannotCancel
	}
	b.Status = domain.StatusCancelled
	b.CancelledAt = ptr.Ptr(time.Date(2025, 11, 4, 12, 0, 0, 0, time.UTC))
	s.cancelled = append(s.cancelled, id)
	return nil
}

type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) Invalidate(ctx context.Context, date string) error {
	c.invalidated = append(c.invalidated, date)
	return nil
}

func confirmedBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		Reference:   "BLR-TEST-0001",
		UserName:    "Rohan Mehta",
		CourtID:     1,
		StartTime:   time.Date(2025, 11, 4, 18, 0, 0, 0, time.UTC),
		DurationHrs: 2,
		TotalPrice:  1200,
		Status:      domain.StatusConfirmed,
		Lines:       []domain.EquipmentLine{{EquipmentID: 1, Quantity: 2}},
	}
}

func TestGetByID(t *testing.T) {
	repo := &stubRepo{bookings: map[int64]*domain.Booking{5: confirmedBooking(5)}}
	svc := NewService(repo, &recordingCache{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "BLR-TEST-0001", resp.Reference)
	require.Len(t, resp.Equipment, 1)
	assert.Equal(t, 2, resp.Equipment[0].Quantity)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetRecent_LimitNormalization(t *testing.T) {
	repo := &stubRepo{summaries: []*domain.BookingSummary{
		{ID: 2, Reference: "BLR-TEST-0002", CourtName: "Indiranagar Indoor 1"},
		{ID: 1, Reference: "BLR-TEST-0001", CourtName: "Koramangala Outdoor 1"},
	}}
	svc := NewService(repo, &recordingCache{}, nopLogger{})

	resp, err := svc.GetRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultRecentLimit, repo.recentLimit)
	assert.Len(t, resp.Bookings, 2)
	assert.Equal(t, "Indiranagar Indoor 1", resp.Bookings[0].CourtName)

	_, err = svc.GetRecent(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, maxRecentLimit, repo.recentLimit)
}

func TestCancel(t *testing.T) {
	repo := &stubRepo{bookings: map[int64]*domain.Booking{5: confirmedBooking(5)}}
	cache := &recordingCache{}
	svc := NewService(repo, cache, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Status)
	assert.NotNil(t, resp.CancelledAt)

	// Кеш доступности на дату бронирования инвалидирован
	assert.Equal(t, []string{"2025-11-04"}, cache.invalidated)

	// Повторная отмена — ошибка, CANCELLED терминален
	_, err = svc.Cancel(context.Background(), 5)
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
