package service

import (
	"testing"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/project"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestComplianceScore(t *testing.T) {
	assert.True(t, ComplianceScore(0, 0).IsZero())
	assert.Equal(t, "100.0", ComplianceScore(3, 3).StringFixed(1))
	assert.Equal(t, "66.7", ComplianceScore(2, 3).StringFixed(1))
	// 49.99 must stay below the 50 threshold
	assert.True(t, ComplianceScore(4999, 10000).LessThan(decimal.NewFromInt(50)))
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name      string
		score     string
		emissions string
		want      []string
	}{
		{
			name:      "low score and low emissions",
			score:     "25",
			emissions: "40",
			want:      []string{recommendCertifiedMaterials},
		},
		{
			name:      "low score and high emissions",
			score:     "0",
			emissions: "100.01",
			want:      []string{recommendCertifiedMaterials, recommendCarbonOffsets},
		},
		{
			name:      "middle score at the emissions limit",
			score:     "50",
			emissions: "100",
			want:      []string{},
		},
		{
			name:      "high score",
			score:     "80",
			emissions: "12",
			want:      []string{recommendPremiumCertificate},
		},
		{
			name:      "high score and high emissions",
			score:     "100",
			emissions: "250",
			want:      []string{recommendCarbonOffsets, recommendPremiumCertificate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommendations(decimal.RequireFromString(tt.score), decimal.RequireFromString(tt.emissions))
			assert.Equal(t, tt.want, got)
		})
	}
}

type CarbonServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  CarbonService
	testData struct {
		project *project.Project
	}
}

func TestCarbonService(t *testing.T) {
	suite.Run(t, new(CarbonServiceSuite))
}

func (s *CarbonServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCarbonService(newTestServiceParams(&s.BaseServiceTestSuite))
	c := seedClient(&s.BaseServiceTestSuite, "Greenfield", "")
	s.testData.project = seedProject(&s.BaseServiceTestSuite, c.ID, "Timber library")
}

func (s *CarbonServiceSuite) record(projectID, material, category, quantity, perUnit, certification string) *dto.CarbonRecordResponse {
	resp, err := s.service.CreateRecord(s.GetContext(), dto.CreateCarbonRecordRequest{
		ProjectID:              projectID,
		MaterialName:           material,
		Quantity:               decimal.RequireFromString(quantity),
		Unit:                   "kg",
		CarbonEmissionsPerUnit: decimal.RequireFromString(perUnit),
		Category:               category,
		CertificationLevel:     certification,
	})
	s.Require().NoError(err)
	return resp
}

func (s *CarbonServiceSuite) TestCreateComputesTotal() {
	rec := s.record(s.testData.project.ID, "Concrete", "structure", "120", "0.15", "")
	s.Equal("18.00", rec.TotalCarbonEmissions.StringFixed(2))
}

func (s *CarbonServiceSuite) TestProjectSummary() {
	s.record(s.testData.project.ID, "Concrete", "structure", "100", "0.5", "")
	s.record(s.testData.project.ID, "Steel", "structure", "10", "1.85", "")
	s.record(s.testData.project.ID, "Insulation", "envelope", "4", "2.5", "FSC")

	summary, err := s.service.GetProjectSummary(s.GetContext(), s.testData.project.ID)
	s.NoError(err)
	s.Equal(3, summary.RecordCount)
	s.Equal("78.50", summary.TotalEmissions)
	s.Equal(map[string]string{"structure": "68.50", "envelope": "10.00"}, summary.ByCategory)
	s.Len(summary.Records, 3)
}

func (s *CarbonServiceSuite) TestProjectSummaryRefreshesAfterCreate() {
	s.record(s.testData.project.ID, "Concrete", "structure", "100", "0.5", "")
	summary, err := s.service.GetProjectSummary(s.GetContext(), s.testData.project.ID)
	s.NoError(err)
	s.Equal(1, summary.RecordCount)

	s.record(s.testData.project.ID, "Steel", "structure", "10", "1", "")
	summary, err = s.service.GetProjectSummary(s.GetContext(), s.testData.project.ID)
	s.NoError(err)
	s.Equal(2, summary.RecordCount)
	s.Equal("60.00", summary.TotalEmissions)
}

func (s *CarbonServiceSuite) TestComplianceReport() {
	s.record(s.testData.project.ID, "Concrete", "structure", "100", "0.9", "")
	s.record(s.testData.project.ID, "Timber", "structure", "50", "0.2", "FSC")
	s.record(s.testData.project.ID, "Cork", "envelope", "10", "0.1", "Cradle to Cradle")

	report, err := s.service.GetComplianceReport(s.GetContext(), s.testData.project.ID)
	s.NoError(err)
	s.Equal("Timber library", report.ProjectName)
	s.Equal(3, report.TotalMaterials)
	s.Equal(2, report.CertifiedMaterials)
	s.Equal("101.00", report.TotalCarbonEmissions)
	s.Equal("66.7", report.ComplianceScore)
	s.Equal([]string{recommendCarbonOffsets}, report.Recommendations)
}

func (s *CarbonServiceSuite) TestComplianceReportForUnknownProject() {
	report, err := s.service.GetComplianceReport(s.GetContext(), "proj_missing")
	s.NoError(err)
	s.Equal(unknownProjectName, report.ProjectName)
	s.Zero(report.TotalMaterials)
	s.Equal("0.0", report.ComplianceScore)
	s.Equal("0.00", report.TotalCarbonEmissions)
	s.Equal([]string{recommendCertifiedMaterials}, report.Recommendations)
}
