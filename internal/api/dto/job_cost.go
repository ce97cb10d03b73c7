package dto

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/jobcost"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateJobCostRequest struct {
	ProjectID   string          `json:"project_id" validate:"required"`
	Category    string          `json:"category" validate:"required,max=100"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	CostDate    *time.Time      `json:"cost_date,omitempty"`
}

func (r *CreateJobCostRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateJobCostRequest) ToJobCost(ctx context.Context, now time.Time) *jobcost.JobCost {
	costDate := now
	if r.CostDate != nil {
		costDate = *r.CostDate
	}
	return &jobcost.JobCost{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB_COST),
		ProjectID:   r.ProjectID,
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount.Round(2),
		CostDate:    costDate,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type JobCostResponse struct {
	*jobcost.JobCost
}

type ListJobCostsResponse = types.ListResponse[*JobCostResponse]
