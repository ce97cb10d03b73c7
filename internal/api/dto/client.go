package dto

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/client"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
)

type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty" validate:"omitempty,max=100"`
	State   string `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode string `json:"zip_code,omitempty" validate:"omitempty,max=20"`
	Country string `json:"country,omitempty" validate:"omitempty,max=100"`
	TaxID   string `json:"tax_id,omitempty" validate:"omitempty,max=50"`
	Notes   string `json:"notes,omitempty"`
	// SendWelcome emails the client a welcome message once created
	SendWelcome bool `json:"send_welcome,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateClientRequest) ToClient(ctx context.Context) *client.Client {
	return &client.Client{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		ZipCode:   r.ZipCode,
		Country:   r.Country,
		TaxID:     r.TaxID,
		Notes:     r.Notes,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
	Country *string `json:"country,omitempty"`
	TaxID   *string `json:"tax_id,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// Apply copies the provided fields onto c
func (r *UpdateClientRequest) Apply(c *client.Client) {
	setIfPresent(&c.Name, r.Name)
	setIfPresent(&c.Email, r.Email)
	setIfPresent(&c.Phone, r.Phone)
	setIfPresent(&c.Address, r.Address)
	setIfPresent(&c.City, r.City)
	setIfPresent(&c.State, r.State)
	setIfPresent(&c.ZipCode, r.ZipCode)
	setIfPresent(&c.Country, r.Country)
	setIfPresent(&c.TaxID, r.TaxID)
	setIfPresent(&c.Notes, r.Notes)
}

type ClientResponse struct {
	*client.Client
}

type ListClientsResponse = types.ListResponse[*ClientResponse]

// ClientHistoryResponse is everything billed to and paid by one client
type ClientHistoryResponse struct {
	Client   *ClientResponse    `json:"client"`
	Invoices []*InvoiceResponse `json:"invoices"`
	Payments []*PaymentResponse `json:"payments"`
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
