package timeentry

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateLaborCost(t *testing.T) {
	day := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		in, out     time.Time
		rate        string
		wantMinutes int
		wantCost    string
	}{
		{
			name:        "full shift",
			in:          day.Add(9 * time.Hour),
			out:         day.Add(17*time.Hour + 30*time.Minute),
			rate:        "20",
			wantMinutes: 510,
			wantCost:    "170",
		},
		{
			name:        "rounds half a minute up",
			in:          day,
			out:         day.Add(90 * time.Second),
			rate:        "60",
			wantMinutes: 2,
			wantCost:    "2",
		},
		{
			name:        "rounds below half a minute down",
			in:          day,
			out:         day.Add(89 * time.Second),
			rate:        "60",
			wantMinutes: 1,
			wantCost:    "1",
		},
		{
			name:        "cost rounded to cents",
			in:          day,
			out:         day.Add(7 * time.Minute),
			rate:        "25.50",
			wantMinutes: 7,
			wantCost:    "2.98",
		},
		{
			name:        "zero rate",
			in:          day,
			out:         day.Add(3 * time.Hour),
			rate:        "0",
			wantMinutes: 180,
			wantCost:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, cost := CalculateLaborCost(tt.in, tt.out, decimal.RequireFromString(tt.rate))
			assert.Equal(t, tt.wantMinutes, minutes)
			assert.True(t, decimal.RequireFromString(tt.wantCost).Equal(cost), "got %s", cost)
		})
	}
}

func TestEntryClose(t *testing.T) {
	in := time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC)
	e := &Entry{ClockInTime: in}
	assert.True(t, e.IsOpen())
	assert.Nil(t, e.DurationMinutes)
	assert.False(t, e.TotalCost.Valid)

	e.Close(in.Add(8*time.Hour+30*time.Minute), decimal.RequireFromString("40.7128"), decimal.RequireFromString("-74.0060"), decimal.NewFromInt(20))

	assert.False(t, e.IsOpen())
	assert.Equal(t, 510, *e.DurationMinutes)
	assert.Equal(t, "170.00", e.TotalCost.Decimal.StringFixed(2))
	assert.Equal(t, "20.00", e.HourlyRate.Decimal.StringFixed(2))
	assert.True(t, e.ClockOutLatitude.Valid)
}
