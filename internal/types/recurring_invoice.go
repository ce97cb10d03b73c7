package types

// RecurringFrequency is how often a recurring invoice template materializes
type RecurringFrequency string

const (
	RecurringFrequencyWeekly    RecurringFrequency = "weekly"
	RecurringFrequencyBiweekly  RecurringFrequency = "biweekly"
	RecurringFrequencyMonthly   RecurringFrequency = "monthly"
	RecurringFrequencyQuarterly RecurringFrequency = "quarterly"
	RecurringFrequencyYearly    RecurringFrequency = "yearly"
)

func (f RecurringFrequency) Validate() error {
	return validateEnum(f, []RecurringFrequency{
		RecurringFrequencyWeekly,
		RecurringFrequencyBiweekly,
		RecurringFrequencyMonthly,
		RecurringFrequencyQuarterly,
		RecurringFrequencyYearly,
	}, "frequency")
}

type RecurringInvoiceStatus string

const (
	RecurringInvoiceStatusActive    RecurringInvoiceStatus = "active"
	RecurringInvoiceStatusPaused    RecurringInvoiceStatus = "paused"
	RecurringInvoiceStatusCancelled RecurringInvoiceStatus = "cancelled"
)

func (s RecurringInvoiceStatus) Validate() error {
	return validateEnum(s, []RecurringInvoiceStatus{
		RecurringInvoiceStatusActive,
		RecurringInvoiceStatusPaused,
		RecurringInvoiceStatusCancelled,
	}, "recurring invoice status")
}
