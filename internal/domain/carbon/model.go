package carbon

import (
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

// Record is the embodied carbon of one material used on a project
type Record struct {
	ID                     string          `db:"id" json:"id"`
	ProjectID              string          `db:"project_id" json:"project_id"`
	MaterialName           string          `db:"material_name" json:"material_name"`
	Quantity               decimal.Decimal `db:"quantity" json:"quantity"`
	Unit                   string          `db:"unit" json:"unit"`
	CarbonEmissionsPerUnit decimal.Decimal `db:"carbon_emissions_per_unit" json:"carbon_emissions_per_unit"`
	TotalCarbonEmissions   decimal.Decimal `db:"total_carbon_emissions" json:"total_carbon_emissions"`
	Category               string          `db:"category" json:"category"`
	Supplier               string          `db:"supplier" json:"supplier"`
	CertificationLevel     string          `db:"certification_level" json:"certification_level"`
	Notes                  string          `db:"notes" json:"notes"`
	types.BaseModel
}

func (r *Record) IsCertified() bool {
	return r.CertificationLevel != ""
}
