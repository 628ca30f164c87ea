package quote_price

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acornglobus/court-booking-service/internal/domain"
	"github.com/acornglobus/court-booking-service/internal/infra/storage/catalog"
	"github.com/acornglobus/court-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubCatalogRepo struct {
	courts    map[int64]*domain.Court
	coaches   map[int64]*domain.Coach
	equipment map[int64]*domain.Equipment
	rules     []*domain.PricingRule
}

func (s *stubCatalogRepo) GetCourt(ctx context.Context, id int64) (*domain.Court, error) {
	if court, ok := s.courts[id]; ok {
		return court, nil
	}
	return nil, fmt.Errorf("%w: id=%d", catalog.ErrCourtNotFound, id)
}

func (s *stubCatalogRepo) GetCoach(ctx context.Context, id int64) (*domain.Coach, error) {
	if coach, ok := s.coaches[id]; ok {
		return coach, nil
	}
	return nil, fmt.Errorf("%w: id=%d", catalog.ErrCoachNotFound, id)
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

func (s *stubCatalogRepo) ListRules(ctx context.Context, onlyActive bool) ([]*domain.PricingRule, error) {
	if !onlyActive {
		return s.rules, nil
	}
	active := make([]*domain.PricingRule, 0, len(s.rules))
	for _, rule := range s.rules {
		if rule.IsActive {
			active = append(active, rule)
		}
	}
	return active, nil
}

func seededCatalog() *stubCatalogRepo {
	return &stubCatalogRepo{
		courts: map[int64]*domain.Court{
			1: {ID: 1, Name: "Indiranagar Indoor 1", Type: domain.CourtIndoor, BaseRate: 450},
			3: {ID: 3, Name: "Koramangala Outdoor 1", Type: domain.CourtOutdoor, BaseRate: 320},
		},
		coaches: map[int64]*domain.Coach{
			1: {ID: 1, Name: "Ayesha Khan", RatePerHour: 600},
		},
		equipment: map[int64]*domain.Equipment{
			1: {ID: 1, Name: "Yonex Voltric Racket", Quantity: 10, BaseFee: 50},
			2: {ID: 2, Name: "Shuttlecock Tube", Quantity: 30, BaseFee: 110},
		},
		rules: []*domain.PricingRule{
			{
				ID: 1, Name: "Peak Hours", IsActive: true,
				Spec: domain.PeakHourRule{StartHour: 18, EndHour: 21, Adjustment: domain.AdjustmentFixed, Amount: 150},
			},
			{
				ID: 2, Name: "Weekend Surcharge", IsActive: true,
				Spec: domain.WeekendRule{Adjustment: domain.AdjustmentFixed, Amount: 120},
			},
			{
				ID: 3, Name: "Indoor Premium", IsActive: true,
				Spec: domain.IndoorPremiumRule{Adjustment: domain.AdjustmentFixed, Amount: 80},
			},
		},
	}
}

// суббота
var saturday = time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

// вторник
var tuesday = time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
}

func TestExecute_WeekendSurchargeComposition(t *testing.T) {
	uc := NewUseCase(seededCatalog(), nopLogger{})

	// Крытый корт в субботу утром: база + выходные + крытый
	resp, err := uc.Execute(context.Background(), &Request{
		CourtID:     1,
		StartTime:   at(saturday, 10),
		DurationHrs: 2,
	})
	require.NoError(t, err)

	// База 450×2 впитывает обе наценки: 900 + 240 + 160
	assert.Equal(t, 1300.0, resp.BaseCourt)
	require.Len(t, resp.Adjustments, 2)
	assert.Equal(t, "Weekend Surcharge", resp.Adjustments[0].Label)
	assert.Equal(t, 240.0, resp.Adjustments[0].Amount)
	assert.Equal(t, "Indoor Premium", resp.Adjustments[1].Label)
	assert.Equal(t, 160.0, resp.Adjustments[1].Amount)
	assert.Equal(t, 1300.0, resp.Total)
}

func TestExecute_BaseCourtIncludesAppliedAdjustments(t *testing.T) {
	repo := seededCatalog()
	repo.rules = []*domain.PricingRule{
		{
			ID: 2, Name: "Weekend Surcharge", IsActive: true,
			Spec: domain.WeekendRule{Adjustment: domain.AdjustmentFixed, Amount: 120},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CourtID:     1,
		StartTime:   at(saturday, 10),
		DurationHrs: 2,
	})
	require.NoError(t, err)

	// 450×2 + 120×2: наценка входит в базу, а не добавляется поверх неё
	assert.Equal(t, 1140.0, resp.BaseCourt)
	require.Len(t, resp.Adjustments, 1)
	assert.Equal(t, 240.0, resp.Adjustments[0].Amount)
	assert.Equal(t, 1140.0, resp.Total)
}

func TestExecute_OutdoorWeekendOnly(t *testing.T) {
	uc := NewUseCase(seededCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CourtID:     3,
		StartTime:   at(saturday, 10),
		DurationHrs: 2,
	})
	require.NoError(t, err)

	// 320×2 + 120×2, без наценки за крытый корт
	assert.Equal(t, 880.0, resp.BaseCourt)
	require.Len(t, resp.Adjustments, 1)
	assert.Equal(t, "Weekend Surcharge", resp.Adjustments[0].Label)
	assert.Equal(t, 1120.0, resp.Total)
}

func TestExecute_PeakHourBoundaries(t *testing.T) {
	uc := NewUseCase(seededCatalog(), nopLogger{})

	peakAmount := func(hour int) float64 {
		resp, err := uc.Execute(context.Background(), &Request{
			CourtID:     3,
			StartTime:   at(tuesday, hour),
			DurationHrs: 1,
		})
		require.NoError(t, err)
		for _, adj := range resp.Adjustments {
			if adj.Label == "Peak Hours" {
				return adj.Amount
			}
		}
		return 0
	}

	// Окно пиковых часов полуоткрытое: [18, 21)
	assert.Equal(t, 0.0, peakAmount(17))
	assert.Equal(t, 150.0, peakAmount(18))
	assert.Equal(t, 150.0, peakAmount(20))
	assert.Equal(t, 0.0, peakAmount(21))
}

func TestExecute_EquipmentAndCoachTotals(t *testing.T) {
	uc := NewUseCase(seededCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CourtID: 3,
		CoachID: ptr.Ptr(int64(1)),
		Equipment: []Selection{
			{EquipmentID: 1, Quantity: 2},
			{EquipmentID: 2, Quantity: 1},
		},
		StartTime:   at(tuesday, 10),
		DurationHrs: 2,
	})
	require.NoError(t, err)

	// 50×2×2 + 110×1×2
	assert.Equal(t, 420.0, resp.EquipmentTotal)
	// 600×2
	assert.Equal(t, 1200.0, resp.CoachTotal)
	// 320×2 + 420 + 1200
	assert.Equal(t, 2260.0, resp.Total)
	assert.Empty(t, resp.Adjustments)
}

func TestExecute_PercentAdjustmentAppliedAsPerHourAmount(t *testing.T) {
	repo := seededCatalog()
	repo.rules = []*domain.PricingRule{
		{
			ID: 9, Name: "Loyalty Percent", IsActive: true,
			Spec: domain.WeekendRule{Adjustment: domain.AdjustmentPercent, Amount: 10},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CourtID:     3,
		StartTime:   at(saturday, 10),
		DurationHrs: 3,
	})
	require.NoError(t, err)

	// PERCENT считается как надбавка за час, не как доля от базы
	require.Len(t, resp.Adjustments, 1)
	assert.Equal(t, 30.0, resp.Adjustments[0].Amount)
	assert.Equal(t, 990.0, resp.Total)
}

func TestExecute_InactiveRuleIgnored(t *testing.T) {
	repo := seededCatalog()
	for _, rule := range repo.rules {
		if rule.Name == "Weekend Surcharge" {
			rule.IsActive = false
		}
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CourtID:     3,
		StartTime:   at(saturday, 10),
		DurationHrs: 1,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Adjustments)
	assert.Equal(t, 320.0, resp.Total)
}

func TestExecute_Deterministic(t *testing.T) {
	uc := NewUseCase(seededCatalog(), nopLogger{})
	req := &Request{
		CourtID:     1,
		CoachID:     ptr.Ptr(int64(1)),
		Equipment:   []Selection{{EquipmentID: 1, Quantity: 3}},
		StartTime:   at(saturday, 19),
		DurationHrs: 2,
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_NotFoundPropagation(t *testing.T) {
	uc := NewUseCase(seededCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		CourtID: 999, StartTime: at(tuesday, 10), DurationHrs: 1,
	})
	assert.ErrorIs(t, err, ErrCourtNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		CourtID: 1, CoachID: ptr.Ptr(int64(999)), StartTime: at(tuesday, 10), DurationHrs: 1,
	})
	assert.ErrorIs(t, err, ErrCoachNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		CourtID:   1,
		Equipment: []Selection{{EquipmentID: 999, Quantity: 1}},
		StartTime: at(tuesday, 10), DurationHrs: 1,
	})
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(seededCatalog(), nopLogger{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero court", &Request{StartTime: at(tuesday, 10), DurationHrs: 1}},
		{"zero start", &Request{CourtID: 1, DurationHrs: 1}},
		{"zero duration", &Request{CourtID: 1, StartTime: at(tuesday, 10)}},
		{"negative quantity", &Request{
			CourtID: 1, StartTime: at(tuesday, 10), DurationHrs: 1,
			Equipment: []Selection{{EquipmentID: 1, Quantity: -1}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
