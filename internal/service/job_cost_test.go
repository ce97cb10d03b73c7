package service

import (
	"bytes"
	"testing"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/export"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type JobCostServiceSuite struct {
	testutil.BaseServiceTestSuite
	service JobCostService
}

func TestJobCostService(t *testing.T) {
	suite.Run(t, new(JobCostServiceSuite))
}

func (s *JobCostServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewJobCostService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *JobCostServiceSuite) TestCreateDefaultsCostDateToNow() {
	c := seedClient(&s.BaseServiceTestSuite, "Elm Storage", "")
	p := seedProject(&s.BaseServiceTestSuite, c.ID, "Unit B")

	resp, err := s.service.CreateJobCost(s.GetContext(), dto.CreateJobCostRequest{
		ProjectID: p.ID,
		Category:  "materials",
		Amount:    decimal.RequireFromString("199.999"),
	})
	s.NoError(err)
	s.Equal(s.GetNow(), resp.CostDate)
	s.Equal("200.00", resp.Amount.StringFixed(2))
}

func (s *JobCostServiceSuite) TestCreateRequiresOwnedProject() {
	c := seedClient(&s.BaseServiceTestSuite, "Elm Storage", "")
	p := seedProject(&s.BaseServiceTestSuite, c.ID, "Unit B")

	_, err := s.service.CreateJobCost(testutil.SetupContextForUser("user_someone_else"), dto.CreateJobCostRequest{
		ProjectID: p.ID,
		Category:  "materials",
		Amount:    decimal.NewFromInt(10),
	})
	s.True(ierr.IsNotFound(err))
}

func (s *JobCostServiceSuite) TestListAndExportFilterByProject() {
	c := seedClient(&s.BaseServiceTestSuite, "Elm Storage", "")
	a := seedProject(&s.BaseServiceTestSuite, c.ID, "Unit A")
	b := seedProject(&s.BaseServiceTestSuite, c.ID, "Unit B")
	for _, req := range []dto.CreateJobCostRequest{
		{ProjectID: a.ID, Category: "labor", Amount: decimal.NewFromInt(400)},
		{ProjectID: a.ID, Category: "materials", Amount: decimal.NewFromInt(120)},
		{ProjectID: b.ID, Category: "permits", Amount: decimal.NewFromInt(75)},
	} {
		_, err := s.service.CreateJobCost(s.GetContext(), req)
		s.NoError(err)
	}

	filter := types.NewJobCostFilter()
	filter.ProjectID = a.ID
	list, err := s.service.ListJobCosts(s.GetContext(), filter)
	s.NoError(err)
	s.Len(list.Items, 2)

	data, err := s.service.ExportJobCosts(s.GetContext(), filter)
	s.NoError(err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetJobCosts)
	s.NoError(err)
	s.Len(rows, 3)
}

func (s *JobCostServiceSuite) TestDelete() {
	c := seedClient(&s.BaseServiceTestSuite, "Elm Storage", "")
	p := seedProject(&s.BaseServiceTestSuite, c.ID, "Unit B")
	created, err := s.service.CreateJobCost(s.GetContext(), dto.CreateJobCostRequest{
		ProjectID: p.ID,
		Category:  "labor",
		Amount:    decimal.NewFromInt(10),
	})
	s.NoError(err)

	s.NoError(s.service.DeleteJobCost(s.GetContext(), created.ID))
	_, err = s.service.GetJobCost(s.GetContext(), created.ID)
	s.True(ierr.IsNotFound(err))
}
