package types

type TeamMemberRole string

const (
	TeamMemberRoleAdmin   TeamMemberRole = "admin"
	TeamMemberRoleManager TeamMemberRole = "manager"
	TeamMemberRoleWorker  TeamMemberRole = "worker"
)

func (r TeamMemberRole) Validate() error {
	return validateEnum(r, []TeamMemberRole{
		TeamMemberRoleAdmin,
		TeamMemberRoleManager,
		TeamMemberRoleWorker,
	}, "team member role")
}

// ApprovalStatus tracks manager sign-off of a GPS time entry
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Validate() error {
	return validateEnum(s, []ApprovalStatus{
		ApprovalStatusPending,
		ApprovalStatusApproved,
		ApprovalStatusRejected,
	}, "approval status")
}

type DocumentType string

const (
	DocumentTypeLicense       DocumentType = "license"
	DocumentTypeCertification DocumentType = "certification"
	DocumentTypeInsurance     DocumentType = "insurance"
	DocumentTypeTraining      DocumentType = "training"
	DocumentTypeOther         DocumentType = "other"
)

func (t DocumentType) Validate() error {
	return validateEnum(t, []DocumentType{
		DocumentTypeLicense,
		DocumentTypeCertification,
		DocumentTypeInsurance,
		DocumentTypeTraining,
		DocumentTypeOther,
	}, "document type")
}

type DocumentStatus string

const (
	DocumentStatusValid        DocumentStatus = "valid"
	DocumentStatusExpiringSoon DocumentStatus = "expiring_soon"
	DocumentStatusExpired      DocumentStatus = "expired"
)

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusFailed   VerificationStatus = "failed"
)

// DocumentExpiryWindowDays is how far ahead a document counts as expiring
const DocumentExpiryWindowDays = 30
