package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2025, 11, 3, hour, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		startA   time.Time
		durA     int
		startB   time.Time
		durB     int
		expected bool
	}{
		{
			name:   "identical intervals",
			startA: at(10), durA: 1,
			startB: at(10), durB: 1,
			expected: true,
		},
		{
			name:   "contained interval",
			startA: at(10), durA: 4,
			startB: at(11), durB: 1,
			expected: true,
		},
		{
			name:   "partial overlap",
			startA: at(10), durA: 2,
			startB: at(11), durB: 2,
			expected: true,
		},
		{
			name:   "adjacent intervals do not overlap",
			startA: at(10), durA: 1,
			startB: at(11), durB: 1,
			expected: false,
		},
		{
			name:   "disjoint intervals",
			startA: at(6), durA: 1,
			startB: at(20), durB: 2,
			expected: false,
		},
		{
			name:   "zero duration never overlaps",
			startA: at(10), durA: 0,
			startB: at(10), durB: 1,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.startA, tt.durA, tt.startB, tt.durB))
			// Предикат симметричен относительно порядка аргументов
			assert.Equal(t, tt.expected, Overlaps(tt.startB, tt.durB, tt.startA, tt.durA))
		})
	}
}

func TestAvailabilityWindowCovers(t *testing.T) {
	window := AvailabilityWindow{DayOfWeek: 1, StartHour: 18, EndHour: 22}

	tests := []struct {
		name     string
		day      int
		hour     int
		expected bool
	}{
		{"hour before window", 1, 17, false},
		{"first covered hour", 1, 18, true},
		{"last covered hour", 1, 21, true},
		{"slot would end past window", 1, 22, false},
		{"wrong weekday", 2, 19, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, window.Covers(tt.day, tt.hour))
		})
	}
}

func TestCoachAvailableAt(t *testing.T) {
	coach := &Coach{
		Name: "Ayesha Khan",
		Windows: []AvailabilityWindow{
			{DayOfWeek: 1, StartHour: 18, EndHour: 22}, // понедельник, вечер
			{DayOfWeek: 5, StartHour: 16, EndHour: 21}, // пятница
		},
	}

	monday := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)

	assert.True(t, coach.AvailableAt(monday, 18))
	assert.True(t, coach.AvailableAt(friday, 20))
	assert.False(t, coach.AvailableAt(friday, 21))
	assert.False(t, coach.AvailableAt(tuesday, 18))
}

func TestPricingRuleSpecs(t *testing.T) {
	saturday := time.Date(2025, 11, 8, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 11, 3, 19, 0, 0, 0, time.UTC)

	peak := PeakHourRule{StartHour: 18, EndHour: 21, Adjustment: AdjustmentFixed, Amount: 150}
	assert.True(t, peak.AppliesTo(CourtOutdoor, monday))
	assert.False(t, peak.AppliesTo(CourtOutdoor, saturday))

	weekend := WeekendRule{Adjustment: AdjustmentFixed, Amount: 120}
	assert.True(t, weekend.AppliesTo(CourtIndoor, saturday))
	assert.False(t, weekend.AppliesTo(CourtIndoor, monday))

	indoor := IndoorPremiumRule{Adjustment: AdjustmentFixed, Amount: 80}
	assert.True(t, indoor.AppliesTo(CourtIndoor, monday))
	assert.False(t, indoor.AppliesTo(CourtOutdoor, monday))
}

func TestBookingTransitions(t *testing.T) {
	b := &Booking{Status: StatusConfirmed}
	assert.True(t, b.IsConfirmed())
	assert.True(t, b.CanBeCancelled())

	b.Status = StatusCancelled
	assert.False(t, b.IsConfirmed())
	assert.False(t, b.CanBeCancelled())
}

func TestBookingEquipmentQuantity(t *testing.T) {
	b := &Booking{Lines: []EquipmentLine{{EquipmentID: 1, Quantity: 3}, {EquipmentID: 2, Quantity: 1}}}
	assert.Equal(t, 3, b.EquipmentQuantity(1))
	assert.Equal(t, 0, b.EquipmentQuantity(99))
}
