package dto

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/carbon"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateCarbonRecordRequest struct {
	ProjectID              string          `json:"project_id" validate:"required"`
	MaterialName           string          `json:"material_name" validate:"required,max=255"`
	Quantity               decimal.Decimal `json:"quantity" validate:"gt=0"`
	Unit                   string          `json:"unit" validate:"required,max=50"`
	CarbonEmissionsPerUnit decimal.Decimal `json:"carbon_emissions_per_unit" validate:"gte=0"`
	Category               string          `json:"category" validate:"required,max=100"`
	Supplier               string          `json:"supplier,omitempty"`
	CertificationLevel     string          `json:"certification_level,omitempty"`
	Notes                  string          `json:"notes,omitempty"`
}

func (r *CreateCarbonRecordRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateCarbonRecordRequest) ToRecord(ctx context.Context) *carbon.Record {
	return &carbon.Record{
		ID:                     types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CARBON_RECORD),
		ProjectID:              r.ProjectID,
		MaterialName:           r.MaterialName,
		Quantity:               r.Quantity,
		Unit:                   r.Unit,
		CarbonEmissionsPerUnit: r.CarbonEmissionsPerUnit,
		TotalCarbonEmissions:   r.Quantity.Mul(r.CarbonEmissionsPerUnit).Round(4),
		Category:               r.Category,
		Supplier:               r.Supplier,
		CertificationLevel:     r.CertificationLevel,
		Notes:                  r.Notes,
		BaseModel:              types.GetDefaultBaseModel(ctx),
	}
}

type CarbonRecordResponse struct {
	*carbon.Record
}

type ListCarbonRecordsResponse = types.ListResponse[*CarbonRecordResponse]

type CarbonProjectSummaryResponse struct {
	TotalEmissions string                  `json:"totalEmissions"`
	RecordCount    int                     `json:"recordCount"`
	ByCategory     map[string]string       `json:"byCategory"`
	Records        []*CarbonRecordResponse `json:"records"`
}

type CarbonComplianceReportResponse struct {
	ProjectName          string   `json:"projectName"`
	TotalMaterials       int      `json:"totalMaterials"`
	TotalCarbonEmissions string   `json:"totalCarbonEmissions"`
	CertifiedMaterials   int      `json:"certifiedMaterials"`
	ComplianceScore      string   `json:"complianceScore"`
	Recommendations      []string `json:"recommendations"`
}
