package events

import (
	"encoding/json"
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

// Event is the envelope published for every domain event
type Event struct {
	ID        string          `json:"id"`
	EventName string          `json:"event_name"`
	UserID    string          `json:"user_id"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

func NewEvent(eventName, userID string, payload interface{}) (*Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVENT),
		EventName: eventName,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   raw,
	}, nil
}

// Decode unmarshals the payload into v
func (e *Event) Decode(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

type InvoiceGeneratedPayload struct {
	InvoiceID          string          `json:"invoice_id"`
	InvoiceNumber      string          `json:"invoice_number"`
	RecurringInvoiceID string          `json:"recurring_invoice_id"`
	ClientID           string          `json:"client_id"`
	Total              decimal.Decimal `json:"total"`
}

type PaymentRecordedPayload struct {
	PaymentID string          `json:"payment_id"`
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"payment_method"`
}

type TimeEntryClockedOutPayload struct {
	EntryID         string          `json:"entry_id"`
	TeamMemberID    string          `json:"team_member_id"`
	ProjectID       string          `json:"project_id"`
	DurationMinutes int             `json:"duration_minutes"`
	TotalCost       decimal.Decimal `json:"total_cost"`
}
