package service

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/jobcost"
	"github.com/contractorpro/contractorpro/internal/export"
	"github.com/contractorpro/contractorpro/internal/types"
)

type JobCostService interface {
	CreateJobCost(ctx context.Context, req dto.CreateJobCostRequest) (*dto.JobCostResponse, error)
	GetJobCost(ctx context.Context, id string) (*dto.JobCostResponse, error)
	ListJobCosts(ctx context.Context, filter *types.JobCostFilter) (*dto.ListJobCostsResponse, error)
	DeleteJobCost(ctx context.Context, id string) error
	ExportJobCosts(ctx context.Context, filter *types.JobCostFilter) ([]byte, error)
}

type jobCostService struct {
	ServiceParams
}

func NewJobCostService(params ServiceParams) JobCostService {
	return &jobCostService{
		ServiceParams: params,
	}
}

func (s *jobCostService) CreateJobCost(ctx context.Context, req dto.CreateJobCostRequest) (*dto.JobCostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ProjectRepo.Get(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	cost := req.ToJobCost(ctx, s.now())
	if err := s.JobCostRepo.Create(ctx, cost); err != nil {
		return nil, err
	}
	return &dto.JobCostResponse{JobCost: cost}, nil
}

func (s *jobCostService) GetJobCost(ctx context.Context, id string) (*dto.JobCostResponse, error) {
	cost, err := s.JobCostRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.JobCostResponse{JobCost: cost}, nil
}

func (s *jobCostService) ListJobCosts(ctx context.Context, filter *types.JobCostFilter) (*dto.ListJobCostsResponse, error) {
	costs, filter, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(costs, len(costs), filter.QueryFilter, func(c *jobcost.JobCost) *dto.JobCostResponse {
		return &dto.JobCostResponse{JobCost: c}
	})
	return &resp, nil
}

func (s *jobCostService) list(ctx context.Context, filter *types.JobCostFilter) ([]*jobcost.JobCost, *types.JobCostFilter, error) {
	if filter == nil {
		filter = types.NewJobCostFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, nil, err
	}
	costs, err := s.JobCostRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return costs, filter, nil
}

func (s *jobCostService) DeleteJobCost(ctx context.Context, id string) error {
	return s.JobCostRepo.Delete(ctx, id)
}

func (s *jobCostService) ExportJobCosts(ctx context.Context, filter *types.JobCostFilter) ([]byte, error) {
	costs, _, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}
	return export.JobCosts(costs)
}
