package portal

import (
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
)

// Access grants a client token based access to one project
type Access struct {
	ID             string                  `db:"id" json:"id"`
	ClientID       string                  `db:"client_id" json:"client_id"`
	ProjectID      string                  `db:"project_id" json:"project_id"`
	PortalURL      string                  `db:"portal_url" json:"portal_url"`
	AccessToken    string                  `db:"access_token" json:"access_token"`
	AccessLevel    types.PortalAccessLevel `db:"access_level" json:"access_level"`
	IsActive       bool                    `db:"is_active" json:"is_active"`
	ExpiryDate     *time.Time              `db:"expiry_date" json:"expiry_date,omitempty"`
	LastAccessedAt *time.Time              `db:"last_accessed_at" json:"last_accessed_at,omitempty"`
	types.BaseModel
}

func (a *Access) IsExpired(now time.Time) bool {
	return a.ExpiryDate != nil && a.ExpiryDate.Before(now)
}

// Access levels are exclusive: a make_payments grant does not imply approve_changes.
func (a *Access) CanViewOnly() bool {
	return a.AccessLevel == types.PortalAccessViewOnly
}

func (a *Access) CanApproveChanges() bool {
	return a.AccessLevel == types.PortalAccessApproveChanges
}

func (a *Access) CanMakePayments() bool {
	return a.AccessLevel == types.PortalAccessMakePayments
}
