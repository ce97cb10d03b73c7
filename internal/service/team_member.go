package service

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/teammember"
	"github.com/contractorpro/contractorpro/internal/types"
)

type TeamMemberService interface {
	CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	GetTeamMember(ctx context.Context, id string) (*dto.TeamMemberResponse, error)
	ListTeamMembers(ctx context.Context, filter *types.TeamMemberFilter) (*dto.ListTeamMembersResponse, error)
	UpdateTeamMember(ctx context.Context, id string, req dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	DeleteTeamMember(ctx context.Context, id string) error
}

type teamMemberService struct {
	ServiceParams
}

func NewTeamMemberService(params ServiceParams) TeamMemberService {
	return &teamMemberService{
		ServiceParams: params,
	}
}

func (s *teamMemberService) CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	member := req.ToTeamMember(ctx)
	if err := s.TeamMemberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return &dto.TeamMemberResponse{TeamMember: member}, nil
}

func (s *teamMemberService) GetTeamMember(ctx context.Context, id string) (*dto.TeamMemberResponse, error) {
	member, err := s.TeamMemberRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TeamMemberResponse{TeamMember: member}, nil
}

func (s *teamMemberService) ListTeamMembers(ctx context.Context, filter *types.TeamMemberFilter) (*dto.ListTeamMembersResponse, error) {
	if filter == nil {
		filter = types.NewTeamMemberFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	members, err := s.TeamMemberRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(members, len(members), filter.QueryFilter, func(m *teammember.TeamMember) *dto.TeamMemberResponse {
		return &dto.TeamMemberResponse{TeamMember: m}
	})
	return &resp, nil
}

// UpdateTeamMember changes the rate used by future clock-outs only; closed
// entries keep the rate they were costed at.
func (s *teamMemberService) UpdateTeamMember(ctx context.Context, id string, req dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	member, err := s.TeamMemberRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(member)
	member.UpdatedAt = s.now()

	if err := s.TeamMemberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return &dto.TeamMemberResponse{TeamMember: member}, nil
}

func (s *teamMemberService) DeleteTeamMember(ctx context.Context, id string) error {
	return s.TeamMemberRepo.Delete(ctx, id)
}
