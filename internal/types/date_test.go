package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ist = time.FixedZone("IST", 5*60*60+30*60)
	pst = time.FixedZone("PST", -8*60*60)
)

func TestNextInvoiceDate(t *testing.T) {
	tests := []struct {
		name      string
		current   time.Time
		frequency RecurringFrequency
		want      time.Time
		wantErr   bool
	}{
		{
			name:      "weekly",
			current:   time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
			frequency: RecurringFrequencyWeekly,
			want:      time.Date(2024, time.March, 17, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly across month end",
			current:   time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC),
			frequency: RecurringFrequencyWeekly,
			want:      time.Date(2024, time.February, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "biweekly across year end",
			current:   time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
			frequency: RecurringFrequencyBiweekly,
			want:      time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly from jan 31 in leap year",
			current:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			frequency: RecurringFrequencyMonthly,
			want:      time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly from jan 31 in non leap year",
			current:   time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC),
			frequency: RecurringFrequencyMonthly,
			want:      time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly keeps the clamped day",
			current:   time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
			frequency: RecurringFrequencyMonthly,
			want:      time.Date(2023, time.March, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly from december",
			current:   time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
			frequency: RecurringFrequencyMonthly,
			want:      time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "quarterly clamps to april 30",
			current:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			frequency: RecurringFrequencyQuarterly,
			want:      time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "quarterly across year end",
			current:   time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
			frequency: RecurringFrequencyQuarterly,
			want:      time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "yearly from leap day",
			current:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			frequency: RecurringFrequencyYearly,
			want:      time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly keeps wall clock in other zones",
			current:   time.Date(2024, time.March, 31, 23, 30, 0, 0, ist),
			frequency: RecurringFrequencyMonthly,
			want:      time.Date(2024, time.April, 30, 23, 30, 0, 0, ist),
		},
		{
			name:      "weekly in pst",
			current:   time.Date(2024, time.February, 26, 18, 0, 0, 0, pst),
			frequency: RecurringFrequencyWeekly,
			want:      time.Date(2024, time.March, 4, 18, 0, 0, 0, pst),
		},
		{
			name:      "invalid frequency",
			current:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			frequency: RecurringFrequency("daily"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextInvoiceDate(tt.current, tt.frequency)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestNextInvoiceDate_MonotonicallyIncreasing(t *testing.T) {
	frequencies := []RecurringFrequency{
		RecurringFrequencyWeekly,
		RecurringFrequencyBiweekly,
		RecurringFrequencyMonthly,
		RecurringFrequencyQuarterly,
		RecurringFrequencyYearly,
	}
	for _, f := range frequencies {
		current := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 30; i++ {
			next, err := NextInvoiceDate(current, f)
			require.NoError(t, err)
			require.True(t, next.After(current), "%s: %s is not after %s", f, next, current)
			current = next
		}
	}
}

func TestAddClampedDate(t *testing.T) {
	start := time.Date(2024, time.March, 31, 10, 15, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.February, 29, 10, 15, 0, 0, time.UTC), AddClampedDate(start, 0, -1, 0))
	assert.Equal(t, time.Date(2024, time.April, 30, 10, 15, 0, 0, time.UTC), AddClampedDate(start, 0, 1, 0))
	assert.Equal(t, time.Date(2024, time.April, 5, 10, 15, 0, 0, time.UTC), AddClampedDate(start, 0, 0, 5))
	assert.Equal(t, time.Date(2025, time.March, 31, 10, 15, 0, 0, time.UTC), AddClampedDate(start, 1, 0, 0))
}
