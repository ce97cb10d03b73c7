package types

// Topics published on the in-process event bus
const (
	TopicInvoiceGenerated    = "invoice.generated"
	TopicPaymentRecorded     = "payment.recorded"
	TopicTimeEntryClockedOut = "time_entry.clocked_out"
)
