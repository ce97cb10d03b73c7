package service

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/client"
	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/domain/project"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var accessTokenPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

type PortalServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  PortalService
	testData struct {
		client  *client.Client
		project *project.Project
		invoice *invoice.Invoice
	}
}

func TestPortalService(t *testing.T) {
	suite.Run(t, new(PortalServiceSuite))
}

func (s *PortalServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPortalService(newTestServiceParams(&s.BaseServiceTestSuite))

	s.testData.client = seedClient(&s.BaseServiceTestSuite, "Maple Street HOA", "board@maple.test")
	s.testData.project = seedProject(&s.BaseServiceTestSuite, s.testData.client.ID, "Clubhouse roof")
	s.testData.invoice = &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		ClientID:      s.testData.client.ID,
		ProjectID:     lo.ToPtr(s.testData.project.ID),
		InvoiceNumber: "INV-0001",
		Status:        types.InvoiceStatusSent,
		IssueDate:     s.GetNow(),
		Total:         decimal.NewFromInt(4200),
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), s.testData.invoice))
}

func (s *PortalServiceSuite) grant(level types.PortalAccessLevel, expiryDays *int) *dto.CreatePortalAccessResponse {
	resp, err := s.service.CreateAccess(s.GetContext(), dto.CreatePortalAccessRequest{
		ClientID:    s.testData.client.ID,
		ProjectID:   s.testData.project.ID,
		AccessLevel: level,
		ExpiryDays:  expiryDays,
	})
	s.Require().NoError(err)
	return resp
}

func (s *PortalServiceSuite) TestCreateAccessIssuesRandomToken() {
	first := s.grant(types.PortalAccessViewOnly, nil)
	second := s.grant(types.PortalAccessViewOnly, nil)

	s.True(first.Success)
	s.Regexp(accessTokenPattern, first.AccessToken)
	s.NotEqual(first.AccessToken, second.AccessToken)
	s.True(strings.HasSuffix(first.PortalURL, "/"+first.AccessToken))
}

func (s *PortalServiceSuite) TestCreateAccessForOtherUsersProjectFails() {
	_, err := s.service.CreateAccess(testutil.SetupContextForUser("user_someone_else"), dto.CreatePortalAccessRequest{
		ClientID:    s.testData.client.ID,
		ProjectID:   s.testData.project.ID,
		AccessLevel: types.PortalAccessViewOnly,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PortalServiceSuite) TestGetPortalDataWithoutSession() {
	grant := s.grant(types.PortalAccessViewOnly, nil)

	// the portal is public; nothing identifies the contractor
	data, err := s.service.GetPortalData(context.Background(), grant.AccessToken)
	s.NoError(err)
	s.Equal(s.testData.project.ID, data.Project.ID)
	s.Require().Len(data.Invoices, 1)
	s.Equal(s.testData.invoice.ID, data.Invoices[0].ID)
	s.Equal(types.PortalAccessViewOnly, data.AccessLevel)

	accesses, err := s.service.ListAccess(s.GetContext(), nil)
	s.NoError(err)
	s.Require().Len(accesses.Items, 1)
	s.NotNil(accesses.Items[0].LastAccessedAt)
}

func (s *PortalServiceSuite) TestAccessFlagsAreExclusive() {
	tests := []struct {
		level                          types.PortalAccessLevel
		viewOnly, approve, makePayment bool
	}{
		{types.PortalAccessViewOnly, true, false, false},
		{types.PortalAccessApproveChanges, false, true, false},
		{types.PortalAccessMakePayments, false, false, true},
	}

	for _, tt := range tests {
		grant := s.grant(tt.level, nil)
		data, err := s.service.GetPortalData(context.Background(), grant.AccessToken)
		s.Require().NoError(err, tt.level)
		s.Equal(tt.viewOnly, data.CanViewOnly, tt.level)
		s.Equal(tt.approve, data.CanApproveChanges, tt.level)
		s.Equal(tt.makePayment, data.CanMakePayments, tt.level)
	}
}

func (s *PortalServiceSuite) TestUnknownTokenIsRejected() {
	_, err := s.service.GetPortalData(context.Background(), strings.Repeat("ab", 32))
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.Equal("Invalid or expired portal access", ierr.HintOf(err))
}

func (s *PortalServiceSuite) TestRevokedAccessIsRejected() {
	grant := s.grant(types.PortalAccessMakePayments, nil)
	accesses, err := s.service.ListAccess(s.GetContext(), nil)
	s.NoError(err)
	s.Require().Len(accesses.Items, 1)

	s.NoError(s.service.RevokeAccess(s.GetContext(), accesses.Items[0].ID))

	_, err = s.service.GetPortalData(context.Background(), grant.AccessToken)
	s.Error(err)
	s.Equal("Invalid or expired portal access", ierr.HintOf(err))
}

func (s *PortalServiceSuite) TestExpiredAccessIsRejected() {
	grant := s.grant(types.PortalAccessViewOnly, lo.ToPtr(7))

	s.SetNow(s.GetNow().AddDate(0, 0, 6))
	_, err := s.service.GetPortalData(context.Background(), grant.AccessToken)
	s.NoError(err)

	s.SetNow(s.GetNow().AddDate(0, 0, 2))
	_, err = s.service.GetPortalData(context.Background(), grant.AccessToken)
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
	s.Equal("Portal access has expired", ierr.HintOf(err))
}

func (s *PortalServiceSuite) TestUpdateAccessLevel() {
	s.grant(types.PortalAccessViewOnly, nil)
	accesses, err := s.service.ListAccess(s.GetContext(), nil)
	s.NoError(err)

	updated, err := s.service.UpdateAccessLevel(s.GetContext(), accesses.Items[0].ID, dto.UpdatePortalAccessLevelRequest{
		AccessLevel: types.PortalAccessApproveChanges,
	})
	s.NoError(err)
	s.Equal(types.PortalAccessApproveChanges, updated.AccessLevel)
	s.True(updated.CanApproveChanges())
}
