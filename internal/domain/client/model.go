package client

import "github.com/contractorpro/contractorpro/internal/types"

// Client is a customer the contractor bills
type Client struct {
	ID      string `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Phone   string `db:"phone" json:"phone"`
	Address string `db:"address" json:"address"`
	City    string `db:"city" json:"city"`
	State   string `db:"state" json:"state"`
	ZipCode string `db:"zip_code" json:"zip_code"`
	Country string `db:"country" json:"country"`
	TaxID   string `db:"tax_id" json:"tax_id"`
	Notes   string `db:"notes" json:"notes"`
	types.BaseModel
}
