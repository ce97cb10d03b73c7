package service

import (
	"testing"
	"time"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/project"
	"github.com/contractorpro/contractorpro/internal/domain/teammember"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/events"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TimeEntryServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  TimeEntryService
	testData struct {
		project *project.Project
		member  *teammember.TeamMember
	}
}

func TestTimeEntryService(t *testing.T) {
	suite.Run(t, new(TimeEntryServiceSuite))
}

func (s *TimeEntryServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewTimeEntryService(newTestServiceParams(&s.BaseServiceTestSuite))

	c := seedClient(&s.BaseServiceTestSuite, "Harbor Homes", "ops@harbor.test")
	s.testData.project = seedProject(&s.BaseServiceTestSuite, c.ID, "Kitchen remodel")
	s.testData.member = seedTeamMember(&s.BaseServiceTestSuite, "Dana", "20.00")
}

func (s *TimeEntryServiceSuite) clockIn() *dto.TimeEntryResponse {
	resp, err := s.service.ClockIn(s.GetContext(), dto.ClockInRequest{
		TeamMemberID: s.testData.member.ID,
		ProjectID:    s.testData.project.ID,
		Latitude:     decimal.RequireFromString("40.7128"),
		Longitude:    decimal.RequireFromString("-74.0060"),
		Notes:        "framing",
	})
	s.Require().NoError(err)
	return resp.Entry
}

func (s *TimeEntryServiceSuite) clockOutAfter(entryID string, d time.Duration) (*dto.ClockResponse, error) {
	s.SetNow(s.GetNow().Add(d))
	return s.service.ClockOut(s.GetContext(), entryID, dto.ClockOutRequest{
		Latitude:  decimal.RequireFromString("40.7130"),
		Longitude: decimal.RequireFromString("-74.0062"),
	})
}

func (s *TimeEntryServiceSuite) TestClockInOpensPendingEntry() {
	entry := s.clockIn()
	s.True(entry.IsOpen())
	s.Equal(types.ApprovalStatusPending, entry.ApprovalStatus)
	s.True(s.GetNow().Equal(entry.ClockInTime))
	s.Nil(entry.DurationMinutes)
	s.False(entry.TotalCost.Valid)
}

func (s *TimeEntryServiceSuite) TestDoubleClockInIsRejected() {
	s.clockIn()

	for attempt := 0; attempt < 2; attempt++ {
		resp, err := s.service.ClockIn(s.GetContext(), dto.ClockInRequest{
			TeamMemberID: s.testData.member.ID,
			ProjectID:    s.testData.project.ID,
		})
		s.Require().Error(err, "attempt %d", attempt)
		s.Nil(resp)
		s.True(ierr.IsInvalidOperation(err))
		s.Equal("Already clocked in", ierr.HintOf(err))
	}
}

func (s *TimeEntryServiceSuite) TestClockInAfterClockOutIsAllowed() {
	entry := s.clockIn()
	_, err := s.clockOutAfter(entry.ID, time.Hour)
	s.NoError(err)

	_, err = s.service.ClockIn(s.GetContext(), dto.ClockInRequest{
		TeamMemberID: s.testData.member.ID,
		ProjectID:    s.testData.project.ID,
	})
	s.NoError(err)
}

func (s *TimeEntryServiceSuite) TestClockOutComputesCost() {
	entry := s.clockIn()

	resp, err := s.clockOutAfter(entry.ID, 8*time.Hour+30*time.Minute)
	s.NoError(err)
	s.True(resp.Success)

	closed := resp.Entry
	s.Equal(510, lo.FromPtr(closed.DurationMinutes))
	s.Equal("20.00", closed.HourlyRate.Decimal.StringFixed(2))
	s.Equal("170.00", closed.TotalCost.Decimal.StringFixed(2))
	s.Equal("framing", closed.Notes)
	s.True(s.GetNow().Equal(lo.FromPtr(closed.ClockOutTime)))

	published := s.GetPublisher().EventsNamed(types.TopicTimeEntryClockedOut)
	s.Require().Len(published, 1)
	var payload events.TimeEntryClockedOutPayload
	s.NoError(published[0].Decode(&payload))
	s.Equal(510, payload.DurationMinutes)
	s.Equal(entry.ID, payload.EntryID)
}

func (s *TimeEntryServiceSuite) TestClockOutRoundsPartialMinutes() {
	entry := s.clockIn()

	resp, err := s.clockOutAfter(entry.ID, 59*time.Minute+30*time.Second)
	s.NoError(err)
	s.Equal(60, lo.FromPtr(resp.Entry.DurationMinutes))
	s.Equal("20.00", resp.Entry.TotalCost.Decimal.StringFixed(2))
}

func (s *TimeEntryServiceSuite) TestClockOutReplacesNotesWhenGiven() {
	entry := s.clockIn()
	s.SetNow(s.GetNow().Add(time.Hour))

	resp, err := s.service.ClockOut(s.GetContext(), entry.ID, dto.ClockOutRequest{
		Notes: lo.ToPtr("finished drywall"),
	})
	s.NoError(err)
	s.Equal("finished drywall", resp.Entry.Notes)
}

func (s *TimeEntryServiceSuite) TestClockOutWithoutTeamMemberUsesZeroRate() {
	entry := s.clockIn()
	s.NoError(s.GetStores().TeamMemberRepo.Delete(s.GetContext(), s.testData.member.ID))

	resp, err := s.clockOutAfter(entry.ID, 2*time.Hour)
	s.NoError(err)
	s.Equal(120, lo.FromPtr(resp.Entry.DurationMinutes))
	s.Equal("0.00", resp.Entry.TotalCost.Decimal.StringFixed(2))
}

func (s *TimeEntryServiceSuite) TestClockOutTwiceIsRejected() {
	entry := s.clockIn()
	_, err := s.clockOutAfter(entry.ID, time.Hour)
	s.NoError(err)

	_, err = s.clockOutAfter(entry.ID, time.Hour)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
	s.Equal("Already clocked out", ierr.HintOf(err))

	stored, err := s.GetStores().TimeEntryRepo.Get(s.GetContext(), entry.ID)
	s.NoError(err)
	s.Equal(60, lo.FromPtr(stored.DurationMinutes))
}

func (s *TimeEntryServiceSuite) TestClockOutOtherUsersEntryIsNotFound() {
	entry := s.clockIn()

	_, err := s.service.ClockOut(testutil.SetupContextForUser("user_someone_else"), entry.ID, dto.ClockOutRequest{})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.Equal("Entry not found", ierr.HintOf(err))
}

func (s *TimeEntryServiceSuite) TestApproveRecordsApprover() {
	entry := s.clockIn()

	resp, err := s.service.ApproveTimeEntry(s.GetContext(), entry.ID)
	s.NoError(err)
	s.Equal(types.ApprovalStatusApproved, resp.ApprovalStatus)
	s.Equal(testutil.DefaultUserID, lo.FromPtr(resp.ApprovedBy))
}

func (s *TimeEntryServiceSuite) TestSummary() {
	first := s.clockIn()
	_, err := s.clockOutAfter(first.ID, 90*time.Minute)
	s.NoError(err)
	_, err = s.service.ApproveTimeEntry(s.GetContext(), first.ID)
	s.NoError(err)

	second := s.clockIn()
	_, err = s.clockOutAfter(second.ID, 45*time.Minute)
	s.NoError(err)

	// still open; counted as pending with no duration
	s.clockIn()

	summary, err := s.service.GetSummary(s.GetContext(), dto.DateRangeRequest{})
	s.NoError(err)
	s.Equal("2.3", summary.TotalDurationHours)
	s.Equal("45.00", summary.TotalCost)
	s.Equal(1, summary.ApprovedEntries)
	s.Equal(2, summary.PendingEntries)
}

func (s *TimeEntryServiceSuite) TestSummaryFiltersOnClockIn() {
	entry := s.clockIn()
	_, err := s.clockOutAfter(entry.ID, time.Hour)
	s.NoError(err)

	after := s.GetNow().Add(time.Minute)
	summary, err := s.service.GetSummary(s.GetContext(), dto.DateRangeRequest{StartDate: &after})
	s.NoError(err)
	s.Equal("0.0", summary.TotalDurationHours)
	s.Equal("0.00", summary.TotalCost)
	s.Zero(summary.PendingEntries)
}

func (s *TimeEntryServiceSuite) TestListNewestClockInFirst() {
	first := s.clockIn()
	_, err := s.clockOutAfter(first.ID, time.Hour)
	s.NoError(err)
	s.SetNow(s.GetNow().Add(time.Hour))
	second := s.clockIn()

	resp, err := s.service.ListTimeEntries(s.GetContext(), nil)
	s.NoError(err)
	s.Require().Len(resp.Items, 2)
	s.Equal(second.ID, resp.Items[0].ID)
	s.Equal(first.ID, resp.Items[1].ID)
}
