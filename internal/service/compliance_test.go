package service

import (
	"strings"
	"testing"
	"time"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/teammember"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type ComplianceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ComplianceService
	testData struct {
		member *teammember.TeamMember
	}
}

func TestComplianceService(t *testing.T) {
	suite.Run(t, new(ComplianceServiceSuite))
}

func (s *ComplianceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewComplianceService(newTestServiceParams(&s.BaseServiceTestSuite))
	s.testData.member = seedTeamMember(&s.BaseServiceTestSuite, "Rui", "32.50")
}

func (s *ComplianceServiceSuite) createDocument(name string, expiry *time.Time) *dto.ComplianceDocumentResponse {
	resp, err := s.service.CreateDocument(s.GetContext(), dto.CreateComplianceDocumentRequest{
		TeamMemberID: s.testData.member.ID,
		DocumentType: types.DocumentTypeLicense,
		DocumentName: name,
		FileURL:      "https://documents.test/" + name + ".pdf",
		ExpiryDate:   expiry,
	})
	s.Require().NoError(err)
	return resp
}

func (s *ComplianceServiceSuite) TestCreateDefaultsStatus() {
	doc := s.createDocument("electrical-license", nil)
	s.Equal(types.DocumentStatusValid, doc.Status)
	s.Equal(types.VerificationStatusPending, doc.VerificationStatus)
}

func (s *ComplianceServiceSuite) TestCreateForOtherUsersTeamMemberFails() {
	_, err := s.service.CreateDocument(testutil.SetupContextForUser("user_someone_else"), dto.CreateComplianceDocumentRequest{
		TeamMemberID: s.testData.member.ID,
		DocumentType: types.DocumentTypeInsurance,
		DocumentName: "liability",
		FileURL:      "https://documents.test/liability.pdf",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ComplianceServiceSuite) TestExpiringDocumentsWindow() {
	now := s.GetNow()
	overdue := s.createDocument("overdue", lo.ToPtr(now.AddDate(0, 0, -3)))
	edge := s.createDocument("edge", lo.ToPtr(now.AddDate(0, 0, 30)))
	s.createDocument("later", lo.ToPtr(now.AddDate(0, 0, 31)))
	s.createDocument("no-expiry", nil)

	docs, err := s.service.GetExpiringDocuments(s.GetContext())
	s.NoError(err)
	ids := lo.Map(docs, func(d *dto.ComplianceDocumentResponse, _ int) string { return d.ID })
	s.ElementsMatch([]string{overdue.ID, edge.ID}, ids)
}

func (s *ComplianceServiceSuite) TestUploadStoresUnderCallerPrefix() {
	pdf := []byte("%PDF-1.7\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")

	resp, err := s.service.UploadDocument(s.GetContext(), pdf)
	s.NoError(err)
	s.Equal("application/pdf", resp.ContentType)
	s.True(strings.HasPrefix(resp.Key, "documents/"+testutil.DefaultUserID+"/"))
	s.True(strings.HasSuffix(resp.Key, ".pdf"))
	s.True(s.GetDocuments().Has(resp.Key))
	s.NotEmpty(resp.FileURL)
}

func (s *ComplianceServiceSuite) TestUploadRejectsUnsupportedContent() {
	_, err := s.service.UploadDocument(s.GetContext(), []byte("just some text"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ComplianceServiceSuite) TestUploadWhenStorageDisabled() {
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	params.Documents = nil
	svc := NewComplianceService(params)

	_, err := svc.UploadDocument(s.GetContext(), []byte("%PDF-1.7\n"))
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
	s.Equal("Document uploads are not enabled", ierr.HintOf(err))
}
