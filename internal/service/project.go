package service

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/project"
	"github.com/contractorpro/contractorpro/internal/types"
)

type ProjectService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, filter *types.ProjectFilter) (*dto.ListProjectsResponse, error)
	UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error
}

type projectService struct {
	ServiceParams
}

func NewProjectService(params ServiceParams) ProjectService {
	return &projectService{
		ServiceParams: params,
	}
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}

	p := req.ToProject(ctx)
	if err := s.ProjectRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) ListProjects(ctx context.Context, filter *types.ProjectFilter) (*dto.ListProjectsResponse, error) {
	if filter == nil {
		filter = types.NewProjectFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	projects, err := s.ProjectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.ProjectRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(projects, total, filter.QueryFilter, func(p *project.Project) *dto.ProjectResponse {
		return &dto.ProjectResponse{Project: p}
	})
	return &resp, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(p)
	p.UpdatedAt = s.now()

	if err := s.ProjectRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	return s.ProjectRepo.Delete(ctx, id)
}
