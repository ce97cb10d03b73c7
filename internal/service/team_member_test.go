package service

import (
	"testing"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TeamMemberServiceSuite struct {
	testutil.BaseServiceTestSuite
	service TeamMemberService
}

func TestTeamMemberService(t *testing.T) {
	suite.Run(t, new(TeamMemberServiceSuite))
}

func (s *TeamMemberServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewTeamMemberService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *TeamMemberServiceSuite) TestCreateDefaults() {
	resp, err := s.service.CreateTeamMember(s.GetContext(), dto.CreateTeamMemberRequest{Name: "Rosa Diaz"})
	s.NoError(err)
	s.Equal(types.TeamMemberRoleWorker, resp.Role)
	s.Equal("0.00", resp.HourlyRate.StringFixed(2))
}

func (s *TeamMemberServiceSuite) TestCreateRoundsRate() {
	resp, err := s.service.CreateTeamMember(s.GetContext(), dto.CreateTeamMemberRequest{
		Name:       "Rosa Diaz",
		Role:       types.TeamMemberRoleManager,
		HourlyRate: decimal.RequireFromString("42.505"),
	})
	s.NoError(err)
	s.Equal("42.51", resp.HourlyRate.StringFixed(2))
}

func (s *TeamMemberServiceSuite) TestCreateValidates() {
	_, err := s.service.CreateTeamMember(s.GetContext(), dto.CreateTeamMemberRequest{
		Name:  "Rosa Diaz",
		Email: "not-an-email",
	})
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateTeamMember(s.GetContext(), dto.CreateTeamMemberRequest{
		Name:       "Rosa Diaz",
		HourlyRate: decimal.NewFromInt(-5),
	})
	s.True(ierr.IsValidation(err))
}

func (s *TeamMemberServiceSuite) TestListByRole() {
	seedTeamMember(&s.BaseServiceTestSuite, "Rosa Diaz", "30")
	seedTeamMember(&s.BaseServiceTestSuite, "Ken Ito", "28")
	_, err := s.service.CreateTeamMember(s.GetContext(), dto.CreateTeamMemberRequest{
		Name: "Ada Park",
		Role: types.TeamMemberRoleAdmin,
	})
	s.NoError(err)

	filter := types.NewTeamMemberFilter()
	filter.Role = lo.ToPtr(types.TeamMemberRoleWorker)
	list, err := s.service.ListTeamMembers(s.GetContext(), filter)
	s.NoError(err)
	s.Len(list.Items, 2)
}

func (s *TeamMemberServiceSuite) TestUpdateRateAndDelete() {
	m := seedTeamMember(&s.BaseServiceTestSuite, "Rosa Diaz", "30")

	updated, err := s.service.UpdateTeamMember(s.GetContext(), m.ID, dto.UpdateTeamMemberRequest{
		HourlyRate: lo.ToPtr(decimal.RequireFromString("35.5")),
	})
	s.NoError(err)
	s.Equal("35.50", updated.HourlyRate.StringFixed(2))
	s.Equal("Rosa Diaz", updated.Name)

	s.NoError(s.service.DeleteTeamMember(s.GetContext(), m.ID))
	_, err = s.service.GetTeamMember(s.GetContext(), m.ID)
	s.True(ierr.IsNotFound(err))
}
