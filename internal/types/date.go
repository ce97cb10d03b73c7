package types

import (
	"time"

	ierr "github.com/contractorpro/contractorpro/internal/errors"
)

// NextInvoiceDate advances a recurring template's next invoice date by exactly one
// period of the given frequency.
// - weekly and biweekly add 7 and 14 days.
// - monthly, quarterly and yearly add calendar months and clamp to the last valid
//   day of the target month, so Jan 31 + 1 month lands on Feb 28 (Feb 29 in leap years).
//
// Clamping is applied to the previous value, not to the original anchor, so a
// template that started on the 31st drifts to the 28th after passing February.
func NextInvoiceDate(current time.Time, frequency RecurringFrequency) (time.Time, error) {
	switch frequency {
	case RecurringFrequencyWeekly:
		return AddClampedDate(current, 0, 0, 7), nil
	case RecurringFrequencyBiweekly:
		return AddClampedDate(current, 0, 0, 14), nil
	case RecurringFrequencyMonthly:
		return AddClampedDate(current, 0, 1, 0), nil
	case RecurringFrequencyQuarterly:
		return AddClampedDate(current, 0, 3, 0), nil
	case RecurringFrequencyYearly:
		return AddClampedDate(current, 1, 0, 0), nil
	default:
		return current, ierr.NewErrorf("invalid recurring frequency: %s", frequency).
			WithHint("Please provide a valid frequency").
			Mark(ierr.ErrValidation)
	}
}

// AddClampedDate adds years and months without overflowing into the following
// month, then adds days as plain calendar days.
func AddClampedDate(t time.Time, years, months, days int) time.Time {
	if years != 0 || months != 0 {
		y, m, d := t.Date()
		h, min, sec := t.Clock()

		newY := y + years
		newM := time.Month(int(m) + months)

		for newM > 12 {
			newM -= 12
			newY++
		}
		for newM < 1 {
			newM += 12
			newY--
		}

		// day 0 of the following month is the last day of newM
		lastDay := time.Date(newY, newM+1, 0, 0, 0, 0, 0, t.Location()).Day()
		if d > lastDay {
			d = lastDay
		}

		t = time.Date(newY, newM, d, h, min, sec, t.Nanosecond(), t.Location())
	}

	if days != 0 {
		t = t.AddDate(0, 0, days)
	}
	return t
}

// AddDays is used for due dates and expiry windows
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
