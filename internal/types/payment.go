package types

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodOther        PaymentMethod = "other"
)

func (m PaymentMethod) Validate() error {
	return validateEnum(m, []PaymentMethod{
		PaymentMethodCard,
		PaymentMethodCash,
		PaymentMethodCheck,
		PaymentMethodBankTransfer,
		PaymentMethodOther,
	}, "payment method")
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PortalAccessLevel controls what a client can do through the portal
type PortalAccessLevel string

const (
	PortalAccessViewOnly       PortalAccessLevel = "view_only"
	PortalAccessApproveChanges PortalAccessLevel = "approve_changes"
	PortalAccessMakePayments   PortalAccessLevel = "make_payments"
)

func (l PortalAccessLevel) Validate() error {
	return validateEnum(l, []PortalAccessLevel{
		PortalAccessViewOnly,
		PortalAccessApproveChanges,
		PortalAccessMakePayments,
	}, "access level")
}
