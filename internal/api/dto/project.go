package dto

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/project"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateProjectRequest struct {
	ClientID    string              `json:"client_id" validate:"required"`
	Name        string              `json:"name" validate:"required,max=255"`
	Description string              `json:"description,omitempty"`
	Status      types.ProjectStatus `json:"status,omitempty"`
	StartDate   *time.Time          `json:"start_date,omitempty"`
	EndDate     *time.Time          `json:"end_date,omitempty"`
	Budget      decimal.Decimal     `json:"budget" validate:"gte=0"`
}

func (r *CreateProjectRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != "" {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return ierr.NewError("end date before start date").
			WithHint("End date must not be before start date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateProjectRequest) ToProject(ctx context.Context) *project.Project {
	status := r.Status
	if status == "" {
		status = types.ProjectStatusPlanning
	}
	return &project.Project{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROJECT),
		ClientID:    r.ClientID,
		Name:        r.Name,
		Description: r.Description,
		Status:      status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Budget:      r.Budget,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateProjectRequest struct {
	Name        *string              `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string              `json:"description,omitempty"`
	Status      *types.ProjectStatus `json:"status,omitempty"`
	StartDate   *time.Time           `json:"start_date,omitempty"`
	EndDate     *time.Time           `json:"end_date,omitempty"`
	Budget      *decimal.Decimal     `json:"budget,omitempty"`
	Progress    *int                 `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
}

func (r *UpdateProjectRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != nil {
		return r.Status.Validate()
	}
	return nil
}

func (r *UpdateProjectRequest) Apply(p *project.Project) {
	setIfPresent(&p.Name, r.Name)
	setIfPresent(&p.Description, r.Description)
	setIfPresent(&p.Status, r.Status)
	setIfPresent(&p.Budget, r.Budget)
	setIfPresent(&p.Progress, r.Progress)
	if r.StartDate != nil {
		p.StartDate = r.StartDate
	}
	if r.EndDate != nil {
		p.EndDate = r.EndDate
	}
}

type ProjectResponse struct {
	*project.Project
}

type ListProjectsResponse = types.ListResponse[*ProjectResponse]
