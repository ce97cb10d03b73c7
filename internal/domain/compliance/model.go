package compliance

import (
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
)

// Document is a license, certificate or policy held by a team member
type Document struct {
	ID                 string                   `db:"id" json:"id"`
	TeamMemberID       string                   `db:"team_member_id" json:"team_member_id"`
	DocumentType       types.DocumentType       `db:"document_type" json:"document_type"`
	DocumentName       string                   `db:"document_name" json:"document_name"`
	FileURL            string                   `db:"file_url" json:"file_url"`
	IssueDate          *time.Time               `db:"issue_date" json:"issue_date,omitempty"`
	ExpiryDate         *time.Time               `db:"expiry_date" json:"expiry_date,omitempty"`
	Status             types.DocumentStatus     `db:"status" json:"status"`
	VerificationStatus types.VerificationStatus `db:"verification_status" json:"verification_status"`
	Notes              string                   `db:"notes" json:"notes"`
	types.BaseModel
}

// ExpiresBy reports whether a valid document expires on or before t
func (d *Document) ExpiresBy(t time.Time) bool {
	return d.Status == types.DocumentStatusValid && d.ExpiryDate != nil && !d.ExpiryDate.After(t)
}
