package service

import (
	"testing"
	"time"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProjectService
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceSuite))
}

func (s *ProjectServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewProjectService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *ProjectServiceSuite) TestCreateStartsInPlanning() {
	c := seedClient(&s.BaseServiceTestSuite, "Aspen School", "")

	resp, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: c.ID,
		Name:     "Gym roof",
		Budget:   decimal.NewFromInt(85000),
	})
	s.NoError(err)
	s.Equal(types.ProjectStatusPlanning, resp.Status)
	s.Equal(c.ID, resp.ClientID)
}

func (s *ProjectServiceSuite) TestCreateRejectsEndBeforeStart() {
	c := seedClient(&s.BaseServiceTestSuite, "Aspen School", "")
	start := s.GetNow()

	_, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID:  c.ID,
		Name:      "Gym roof",
		StartDate: &start,
		EndDate:   lo.ToPtr(start.Add(-24 * time.Hour)),
	})
	s.True(ierr.IsValidation(err))
	s.Equal("End date must not be before start date", ierr.HintOf(err))
}

func (s *ProjectServiceSuite) TestCreateRequiresKnownClient() {
	_, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: "cli_missing",
		Name:     "Gym roof",
	})
	s.True(ierr.IsNotFound(err))
}

func (s *ProjectServiceSuite) TestListFiltersByClient() {
	a := seedClient(&s.BaseServiceTestSuite, "Aspen School", "")
	b := seedClient(&s.BaseServiceTestSuite, "Birch Cafe", "")
	seedProject(&s.BaseServiceTestSuite, a.ID, "Gym roof")
	seedProject(&s.BaseServiceTestSuite, a.ID, "Library")
	seedProject(&s.BaseServiceTestSuite, b.ID, "Patio")

	filter := types.NewProjectFilter()
	filter.ClientID = a.ID
	list, err := s.service.ListProjects(s.GetContext(), filter)
	s.NoError(err)
	s.Len(list.Items, 2)
	for _, p := range list.Items {
		s.Equal(a.ID, p.ClientID)
	}
}

func (s *ProjectServiceSuite) TestUpdateProgress() {
	c := seedClient(&s.BaseServiceTestSuite, "Aspen School", "")
	p := seedProject(&s.BaseServiceTestSuite, c.ID, "Gym roof")

	_, err := s.service.UpdateProject(s.GetContext(), p.ID, dto.UpdateProjectRequest{Progress: lo.ToPtr(120)})
	s.True(ierr.IsValidation(err))

	updated, err := s.service.UpdateProject(s.GetContext(), p.ID, dto.UpdateProjectRequest{
		Progress: lo.ToPtr(40),
		Status:   lo.ToPtr(types.ProjectStatusOnHold),
	})
	s.NoError(err)
	s.Equal(40, updated.Progress)
	s.Equal(types.ProjectStatusOnHold, updated.Status)
	s.Equal("Gym roof", updated.Name)
}
