package dto

import (
	"github.com/contractorpro/contractorpro/internal/domain/portal"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
)

type CreatePortalAccessRequest struct {
	ClientID    string                  `json:"client_id" validate:"required"`
	ProjectID   string                  `json:"project_id" validate:"required"`
	AccessLevel types.PortalAccessLevel `json:"access_level" validate:"required"`
	// ExpiryDays leaves the access open ended when omitted
	ExpiryDays *int `json:"expiry_days,omitempty" validate:"omitempty,gt=0"`
}

func (r *CreatePortalAccessRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.AccessLevel.Validate()
}

type UpdatePortalAccessLevelRequest struct {
	AccessLevel types.PortalAccessLevel `json:"access_level" validate:"required"`
}

func (r *UpdatePortalAccessLevelRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.AccessLevel.Validate()
}

type CreatePortalAccessResponse struct {
	Success     bool   `json:"success"`
	PortalURL   string `json:"portalUrl"`
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

type PortalAccessResponse struct {
	*portal.Access
}

type ListPortalAccessResponse = types.ListResponse[*PortalAccessResponse]

type PortalDataResponse struct {
	Project           *ProjectResponse        `json:"project"`
	Invoices          []*InvoiceResponse      `json:"invoices"`
	AccessLevel       types.PortalAccessLevel `json:"accessLevel"`
	CanViewOnly       bool                    `json:"canViewOnly"`
	CanApproveChanges bool                    `json:"canApproveChanges"`
	CanMakePayments   bool                    `json:"canMakePayments"`
}
