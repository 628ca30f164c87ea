package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acornglobus/court-booking-service/internal/domain"
	catalogRepo "github.com/acornglobus/court-booking-service/internal/infra/storage/catalog"
	"github.com/acornglobus/court-booking-service/internal/service/catalog/models"
	"github.com/acornglobus/court-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// stubRepo хранит сущности в памяти, присваивая ID по порядку
type stubRepo struct {
	courts    map[int64]*domain.Court
	coaches   map[int64]*domain.Coach
	equipment map[int64]*domain.Equipment
	rules     map[int64]*domain.PricingRule
	nextID    int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		courts:    make(map[int64]*domain.Court),
		coaches:   make(map[int64]*domain.Coach),
		equipment: make(map[int64]*domain.Equipment),
		rules:     make(map[int64]*domain.PricingRule),
	}
}

func (s *stubRepo) ListCourts(ctx context.Context, onlyActive bool) ([]*domain.Court, error) {
	result := make([]*domain.Court, 0, len(s.courts))
	for _, c := range s.courts {
		if onlyActive && !c.IsActive {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (s *stubRepo) GetCourt(ctx context.Context, id int64) (*domain.Court, error) {
	if c, ok := s.courts[id]; ok {
		return c, nil
	}
	return nil, catalogRepo.ErrCourtNotFound
}

func (s *stubRepo) CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	s.nextID++
	court.ID = s.nextID
	s.courts[court.ID] = court
	return court, nil
}

func (s *stubRepo) UpdateCourt(ctx context.Context, id int64, update catalogRepo.CourtUpdate) (*domain.Court, error) {
	c, ok := s.courts[id]
	if !ok {
		return nil, catalogRepo.ErrCourtNotFound
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Type != nil {
		c.Type = *update.Type
	}
	if update.BaseRate != nil {
		c.BaseRate = *update.BaseRate
	}
	if update.IsActive != nil {
		c.IsActive = *update.IsActive
	}
	return c, nil
}

func (s *stubRepo) ListCoaches(ctx context.Context, onlyActive bool) ([]*domain.Coach, error) {
	result := make([]*domain.Coach, 0, len(s.coaches))
	for _, c := range s.coaches {
		if onlyActive && !c.IsActive {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (s *stubRepo) GetCoach(ctx context.Context, id int64) (*domain.Coach, error) {
	if c, ok := s.coaches[id]; ok {
		return c, nil
	}
	return nil, catalogRepo.ErrCoachNotFound
}

func (s *stubRepo) CreateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	s.nextID++
	coach.ID = s.nextID
	s.coaches[coach.ID] = coach
	return coach, nil
}

func (s *stubRepo) UpdateCoach(ctx context.Context, id int64, update catalogRepo.CoachUpdate) (*domain.Coach, error) {
	c, ok := s.coaches[id]
	if !ok {
		return nil, catalogRepo.ErrCoachNotFound
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.RatePerHour != nil {
		c.RatePerHour = *update.RatePerHour
	}
	if update.IsActive != nil {
		c.IsActive = *update.IsActive
	}
	if update.Windows != nil {
		c.Windows = update.Windows
	}
	return c, nil
}

func (s *stubRepo) ListEquipment(ctx context.Context, onlyActive bool) ([]*domain.Equipment, error) {
	result := make([]*domain.Equipment, 0, len(s.equipment))
	for _, e := range s.equipment {
		if onlyActive && !e.IsActive {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (s *stubRepo) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	if e, ok := s.equipment[id]; ok {
		return e, nil
	}
	return nil, catalogRepo.ErrEquipmentNotFound
}

func (s *stubRepo) CreateEquipment(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error) {
	s.nextID++
	equipment.ID = s.nextID
	s.equipment[equipment.ID] = equipment
	return equipment, nil
}

func (s *stubRepo) UpdateEquipment(ctx context.Context, id int64, update catalogRepo.EquipmentUpdate) (*domain.Equipment, error) {
	e, ok := s.equipment[id]
	if !ok {
		return nil, catalogRepo.ErrEquipmentNotFound
	}
	if update.Quantity != nil {
		e.Quantity = *update.Quantity
	}
	if update.IsActive != nil {
		e.IsActive = *update.IsActive
	}
	return e, nil
}

func (s *stubRepo) ListRules(ctx context.Context, onlyActive bool) ([]*domain.PricingRule, error) {
	result := make([]*domain.PricingRule, 0, len(s.rules))
	for _, r := range s.rules {
		if onlyActive && !r.IsActive {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (s *stubRepo) CreateRule(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	s.nextID++
	rule.ID = s.nextID
	s.rules[rule.ID] = rule
	return rule, nil
}

func (s *stubRepo) UpdateRule(ctx context.Context, id int64, update catalogRepo.RuleUpdate) (*domain.PricingRule, error) {
	r, ok := s.rules[id]
	if !ok {
		return nil, catalogRepo.ErrRuleNotFound
	}
	if update.Name != nil {
		r.Name = *update.Name
	}
	if update.Spec != nil {
		r.Spec = update.Spec
	}
	if update.IsActive != nil {
		r.IsActive = *update.IsActive
	}
	return r, nil
}

func TestCreateCourt(t *testing.T) {
	svc := NewService(newStubRepo(), nopLogger{})

	resp, err := svc.CreateCourt(context.Background(), &models.CreateCourtRequest{
		Name: "Indiranagar Indoor 1", Type: "INDOOR", BaseRate: 450,
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "INDOOR", resp.Type)

	_, err = svc.CreateCourt(context.Background(), &models.CreateCourtRequest{
		Name: "Bad", Type: "GRASS", BaseRate: 100,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCourt(context.Background(), &models.CreateCourtRequest{
		Name: " ", Type: "INDOOR", BaseRate: 100,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateCourt_Deactivate(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.CreateCourt(context.Background(), &models.CreateCourtRequest{
		Name: "Koramangala Outdoor 1", Type: "OUTDOOR", BaseRate: 320,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCourt(context.Background(), created.ID, &models.UpdateCourtRequest{
		IsActive: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	// Деактивированный корт исчезает из активной выборки, но остается в полной
	active, err := svc.ListCourts(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListCourts(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.UpdateCourt(context.Background(), 404, &models.UpdateCourtRequest{IsActive: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestCreateCoach_WindowValidation(t *testing.T) {
	svc := NewService(newStubRepo(), nopLogger{})

	resp, err := svc.CreateCoach(context.Background(), &models.CreateCoachRequest{
		Name: "Ayesha Khan", RatePerHour: 600,
		Windows: []models.WindowPayload{{DayOfWeek: 1, StartHour: 18, EndHour: 22}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Windows, 1)

	cases := []models.WindowPayload{
		{DayOfWeek: 7, StartHour: 10, EndHour: 12},  // несуществующий день
		{DayOfWeek: 1, StartHour: 5, EndHour: 10},   // до открытия
		{DayOfWeek: 1, StartHour: 20, EndHour: 23},  // после закрытия
		{DayOfWeek: 1, StartHour: 12, EndHour: 12},  // пустое окно
	}
	for _, window := range cases {
		_, err := svc.CreateCoach(context.Background(), &models.CreateCoachRequest{
			Name: "X", RatePerHour: 100, Windows: []models.WindowPayload{window},
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "window %+v", window)
	}
}

func TestCreateRule(t *testing.T) {
	svc := NewService(newStubRepo(), nopLogger{})

	resp, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		Name: "Peak Hours", RuleType: "PEAK_HOUR", Adjustment: "FIXED", Amount: 150,
		StartHour: ptr.Ptr(18), EndHour: ptr.Ptr(21),
	})
	require.NoError(t, err)
	assert.Equal(t, "PEAK_HOUR", resp.RuleType)
	require.NotNil(t, resp.StartHour)
	assert.Equal(t, 18, *resp.StartHour)

	// PEAK_HOUR без часов не собирается
	_, err = svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		Name: "Peak Hours", RuleType: "PEAK_HOUR", Adjustment: "FIXED", Amount: 150,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// WEEKEND не требует часов, StartHour/EndHour в ответе отсутствуют
	weekend, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		Name: "Weekend Surcharge", RuleType: "WEEKEND", Adjustment: "FIXED", Amount: 120,
	})
	require.NoError(t, err)
	assert.Nil(t, weekend.StartHour)

	_, err = svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		Name: "Bad", RuleType: "HOLIDAY", Adjustment: "FIXED", Amount: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		Name: "Bad", RuleType: "WEEKEND", Adjustment: "DOUBLE", Amount: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateRule_SpecReplacement(t *testing.T) {
	svc := NewService(newStubRepo(), nopLogger{})

	created, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		Name: "Weekend Surcharge", RuleType: "WEEKEND", Adjustment: "FIXED", Amount: 120,
	})
	require.NoError(t, err)

	// Смена типа требует полной спецификации
	_, err = svc.UpdateRule(context.Background(), created.ID, &models.UpdateRuleRequest{
		RuleType: ptr.Ptr("PEAK_HOUR"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Параметры без типа не принимаются
	_, err = svc.UpdateRule(context.Background(), created.ID, &models.UpdateRuleRequest{
		Amount: ptr.Ptr(200.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	updated, err := svc.UpdateRule(context.Background(), created.ID, &models.UpdateRuleRequest{
		RuleType: ptr.Ptr("PEAK_HOUR"), Adjustment: ptr.Ptr("FIXED"), Amount: ptr.Ptr(150.0),
		StartHour: ptr.Ptr(18), EndHour: ptr.Ptr(21),
	})
	require.NoError(t, err)
	assert.Equal(t, "PEAK_HOUR", updated.RuleType)
	assert.Equal(t, 150.0, updated.Amount)
}

func TestUpdateEquipment(t *testing.T) {
	svc := NewService(newStubRepo(), nopLogger{})

	created, err := svc.CreateEquipment(context.Background(), &models.CreateEquipmentRequest{
		Name: "Yonex Voltric Racket", Quantity: 10, BaseFee: 50,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEquipment(context.Background(), created.ID, &models.UpdateEquipmentRequest{
		Quantity: ptr.Ptr(15),
	})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)

	_, err = svc.UpdateEquipment(context.Background(), created.ID, &models.UpdateEquipmentRequest{
		Quantity: ptr.Ptr(-1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateEquipment(context.Background(), 404, &models.UpdateEquipmentRequest{
		Quantity: ptr.Ptr(5),
	})
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}
