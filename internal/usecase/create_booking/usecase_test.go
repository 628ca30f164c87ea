package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acornglobus/court-booking-service/internal/domain"
	"github.com/acornglobus/court-booking-service/internal/infra/storage/booking"
	"github.com/acornglobus/court-booking-service/internal/infra/storage/catalog"
	"github.com/acornglobus/court-booking-service/internal/usecase/quote_price"
	"github.com/acornglobus/court-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager исполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubBookingRepo struct {
	existing []*domain.Booking

	created        []*domain.Booking
	duplicateFirst bool
	nextID         int64
}

func (s *stubBookingRepo) GetConfirmedForDay(ctx context.Context, day time.Time) ([]*domain.Booking, error) {
	return s.existing, nil
}

func (s *stubBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.duplicateFirst && len(s.created) == 0 {
		s.created = append(s.created, nil)
		return nil, fmt.Errorf("%w: reference=%s", booking.ErrDuplicateReference, b.Reference)
	}

	s.nextID++
	stored := *b
	stored.ID = s.nextID
	stored.CreatedAt = time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	s.created = append(s.created, &stored)
	return &stored, nil
}

type stubCatalogRepo struct {
	equipment map[int64]*domain.Equipment
}

func (s *stubCatalogRepo) GetEquipmentByIDs(ctx context.Context, ids []int64) ([]*domain.Equipment, error) {
	result := make([]*domain.Equipment, 0, len(ids))
	for _, id := range ids {
		item, ok := s.equipment[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", catalog.ErrEquipmentNotFound, id)
		}
		result = append(result, item)
	}
	return result, nil
}

type stubPricingEngine struct {
	total float64
	err   error
	calls int
}

func (s *stubPricingEngine) Execute(ctx context.Context, req *quote_price.Request) (*quote_price.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &quote_price.Response{Total: s.total}, nil
}

type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) Invalidate(ctx context.Context, date string) error {
	c.invalidated = append(c.invalidated, date)
	return nil
}

func at(hour int) time.Time {
	return time.Date(2025, 11, 4, hour, 0, 0, 0, time.UTC)
}

type fixture struct {
	bookingRepo *stubBookingRepo
	catalogRepo *stubCatalogRepo
	pricing     *stubPricingEngine
	cache       *recordingCache
	uc          *UseCase
}

func newFixture(existing ...*domain.Booking) *fixture {
	f := &fixture{
		bookingRepo: &stubBookingRepo{existing: existing},
		catalogRepo: &stubCatalogRepo{
			equipment: map[int64]*domain.Equipment{
				1: {ID: 1, Name: "Yonex Voltric Racket", Quantity: 10, BaseFee: 50},
			},
		},
		pricing: &stubPricingEngine{total: 900},
		cache:   &recordingCache{},
	}
	f.uc = NewUseCase(f.bookingRepo, f.catalogRepo, f.pricing, fakeTxManager{}, f.cache, nopLogger{})
	return f
}

func validRequest() *Request {
	return &Request{
		UserName:    "Rohan Mehta",
		CourtID:     1,
		StartTime:   at(18),
		DurationHrs: 2,
	}
}

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Equipment = []Selection{{EquipmentID: 1, Quantity: 2}}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, 900.0, resp.TotalPrice)
	assert.True(t, strings.HasPrefix(resp.Reference, "BLR-"), "reference %q", resp.Reference)
	assert.NotZero(t, resp.ID)

	// Детализация стоимости возвращается вместе с бронированием
	require.NotNil(t, resp.Pricing)
	assert.Equal(t, 900.0, resp.Pricing.Total)

	require.Len(t, f.bookingRepo.created, 1)
	stored := f.bookingRepo.created[0]
	assert.Equal(t, []domain.EquipmentLine{{EquipmentID: 1, Quantity: 2}}, stored.Lines)

	// Кеш доступности на дату бронирования инвалидирован
	assert.Equal(t, []string{"2025-11-04"}, f.cache.invalidated)

	assert.Equal(t, 1, f.pricing.calls)
}

func TestExecute_CourtConflict(t *testing.T) {
	f := newFixture(&domain.Booking{
		ID: 1, CourtID: 1, StartTime: at(17), DurationHrs: 2, Status: domain.StatusConfirmed,
	})

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtConflict)
	assert.Empty(t, f.bookingRepo.created)
	assert.Empty(t, f.cache.invalidated)
}

func TestExecute_AdjacentBookingIsNotAConflict(t *testing.T) {
	f := newFixture(&domain.Booking{
		ID: 1, CourtID: 1, StartTime: at(16), DurationHrs: 2, Status: domain.StatusConfirmed,
	})

	// [16, 18) и [18, 20) соприкасаются, но не пересекаются
	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
}

func TestExecute_CoachConflict(t *testing.T) {
	f := newFixture(&domain.Booking{
		ID: 1, CourtID: 2, CoachID: ptr.Ptr(int64(7)),
		StartTime: at(18), DurationHrs: 1, Status: domain.StatusConfirmed,
	})

	req := validRequest()
	req.CoachID = ptr.Ptr(int64(7))

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCoachConflict)
}

func TestExecute_EquipmentConflictCarriesRemaining(t *testing.T) {
	f := newFixture(
		&domain.Booking{
			ID: 1, CourtID: 2, StartTime: at(18), DurationHrs: 1, Status: domain.StatusConfirmed,
			Lines: []domain.EquipmentLine{{EquipmentID: 1, Quantity: 7}},
		},
	)

	req := validRequest()
	req.Equipment = []Selection{{EquipmentID: 1, Quantity: 5}}

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrEquipmentConflict)

	var conflict *EquipmentConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Yonex Voltric Racket", conflict.Name)
	assert.Equal(t, 3, conflict.Remaining)
}

func TestExecute_ReferenceCollisionRetried(t *testing.T) {
	f := newFixture()
	f.bookingRepo.duplicateFirst = true

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Reference, "BLR-"))

	// Первая попытка отклонена constraint-ом, вторая прошла
	require.Len(t, f.bookingRepo.created, 2)
}

func TestExecute_PricingNotFoundPropagation(t *testing.T) {
	f := newFixture()
	f.pricing.err = fmt.Errorf("%w: id=999", quote_price.ErrCourtNotFound)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtNotFound)
	assert.Empty(t, f.bookingRepo.created)
}

func TestExecute_EquipmentNotFound(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Equipment = []Selection{{EquipmentID: 999, Quantity: 1}}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestExecute_ConcurrentOverlapFromConstraint(t *testing.T) {
	f := newFixture()
	f.bookingRepo.duplicateFirst = false
	// Конкурентная запись, которую проверка конфликтов не видела:
	// хранилище возвращает нарушение exclusion constraint
	f.bookingRepo.existing = nil
	failing := &constraintFailingRepo{inner: f.bookingRepo}
	f.uc = NewUseCase(failing, f.catalogRepo, f.pricing, fakeTxManager{}, f.cache, nopLogger{})

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtConflict)
}

type constraintFailingRepo struct {
	inner *stubBookingRepo
}

func (r *constraintFailingRepo) GetConfirmedForDay(ctx context.Context, day time.Time) ([]*domain.Booking, error) {
	return r.inner.GetConfirmedForDay(ctx, day)
}

func (r *constraintFailingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	return nil, fmt.Errorf("%w: constraint bookings_court_no_overlap", booking.ErrCourtOverlap)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty user name", func(r *Request) { r.UserName = "  " }},
		{"before opening", func(r *Request) { r.StartTime = at(5) }},
		{"spills past closing", func(r *Request) { r.StartTime = at(21); r.DurationHrs = 2 }},
		{"misaligned start", func(r *Request) { r.StartTime = at(18).Add(30 * time.Minute) }},
		{"zero duration", func(r *Request) { r.DurationHrs = 0 }},
		{"duplicate equipment", func(r *Request) {
			r.Equipment = []Selection{{EquipmentID: 1, Quantity: 1}, {EquipmentID: 1, Quantity: 2}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Empty(t, f.bookingRepo.created)
}

func TestNewReference_Format(t *testing.T) {
	ref := newReference()

	parts := strings.Split(ref, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "BLR", parts[0])
	assert.Len(t, parts[2], 4)
	assert.Equal(t, strings.ToUpper(ref), ref)

	// Последовательные вызовы практически никогда не совпадают
	assert.NotEqual(t, ref, newReference())
}

func TestExecute_PricingInternalError(t *testing.T) {
	f := newFixture()
	f.pricing.err = errors.New("catalog unavailable")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
