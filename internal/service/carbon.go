package service

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/cache"
	"github.com/contractorpro/contractorpro/internal/domain/carbon"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	unknownProjectName = "Unknown"

	recommendCertifiedMaterials = "Consider sourcing more certified sustainable materials to improve ESG compliance."
	recommendCarbonOffsets      = "Your project's carbon footprint is significant. Explore carbon offset options."
	recommendPremiumCertificate = "Excellent ESG compliance! Your project qualifies for premium sustainable certifications."
)

var (
	lowComplianceScore  = decimal.NewFromInt(50)
	highComplianceScore = decimal.NewFromInt(80)
	// total emissions above this count as a significant footprint
	significantEmissions = decimal.NewFromInt(100)
)

type CarbonService interface {
	CreateRecord(ctx context.Context, req dto.CreateCarbonRecordRequest) (*dto.CarbonRecordResponse, error)
	ListRecords(ctx context.Context, filter *types.CarbonRecordFilter) (*dto.ListCarbonRecordsResponse, error)
	ListRecordsByProject(ctx context.Context, projectID string) (*dto.ListCarbonRecordsResponse, error)
	DeleteRecord(ctx context.Context, id string) error
	GetProjectSummary(ctx context.Context, projectID string) (*dto.CarbonProjectSummaryResponse, error)
	GetComplianceReport(ctx context.Context, projectID string) (*dto.CarbonComplianceReportResponse, error)
}

type carbonService struct {
	ServiceParams
}

func NewCarbonService(params ServiceParams) CarbonService {
	return &carbonService{
		ServiceParams: params,
	}
}

func (s *carbonService) CreateRecord(ctx context.Context, req dto.CreateCarbonRecordRequest) (*dto.CarbonRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := req.ToRecord(ctx)
	if err := s.CarbonRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, record.ProjectID)
	return &dto.CarbonRecordResponse{Record: record}, nil
}

func (s *carbonService) ListRecords(ctx context.Context, filter *types.CarbonRecordFilter) (*dto.ListCarbonRecordsResponse, error) {
	records, filter, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(records, len(records), filter.QueryFilter, func(r *carbon.Record) *dto.CarbonRecordResponse {
		return &dto.CarbonRecordResponse{Record: r}
	})
	return &resp, nil
}

func (s *carbonService) ListRecordsByProject(ctx context.Context, projectID string) (*dto.ListCarbonRecordsResponse, error) {
	filter := types.NewCarbonRecordFilter()
	filter.ProjectID = projectID
	return s.ListRecords(ctx, filter)
}

func (s *carbonService) list(ctx context.Context, filter *types.CarbonRecordFilter) ([]*carbon.Record, *types.CarbonRecordFilter, error) {
	if filter == nil {
		filter = types.NewCarbonRecordFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, nil, err
	}
	records, err := s.CarbonRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return records, filter, nil
}

func (s *carbonService) DeleteRecord(ctx context.Context, id string) error {
	record, err := s.CarbonRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.CarbonRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSummary(ctx, record.ProjectID)
	return nil
}

func (s *carbonService) GetProjectSummary(ctx context.Context, projectID string) (*dto.CarbonProjectSummaryResponse, error) {
	key := s.summaryKey(ctx, projectID)
	if cached, ok := s.Cache.Get(ctx, key); ok {
		if summary, ok := cached.(*dto.CarbonProjectSummaryResponse); ok {
			return summary, nil
		}
	}

	records, err := s.projectRecords(ctx, projectID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, r := range records {
		byCategory[r.Category] = byCategory[r.Category].Add(r.TotalCarbonEmissions)
	}

	summary := &dto.CarbonProjectSummaryResponse{
		TotalEmissions: totalEmissions(records).StringFixed(2),
		RecordCount:    len(records),
		ByCategory: lo.MapValues(byCategory, func(v decimal.Decimal, _ string) string {
			return v.StringFixed(2)
		}),
		Records: lo.Map(records, func(r *carbon.Record, _ int) *dto.CarbonRecordResponse {
			return &dto.CarbonRecordResponse{Record: r}
		}),
	}
	s.Cache.Set(ctx, key, summary, cache.DefaultExpiration)
	return summary, nil
}

// GetComplianceReport scores a project by the share of certified materials
func (s *carbonService) GetComplianceReport(ctx context.Context, projectID string) (*dto.CarbonComplianceReportResponse, error) {
	records, err := s.projectRecords(ctx, projectID)
	if err != nil {
		return nil, err
	}

	projectName := unknownProjectName
	p, err := s.ProjectRepo.Get(ctx, projectID)
	switch {
	case err == nil:
		projectName = p.Name
	case !ierr.IsNotFound(err):
		return nil, err
	}

	certified := lo.CountBy(records, func(r *carbon.Record) bool { return r.IsCertified() })
	total := totalEmissions(records)
	score := ComplianceScore(certified, len(records))

	return &dto.CarbonComplianceReportResponse{
		ProjectName:          projectName,
		TotalMaterials:       len(records),
		TotalCarbonEmissions: total.StringFixed(2),
		CertifiedMaterials:   certified,
		ComplianceScore:      score.StringFixed(1),
		Recommendations:      Recommendations(score, total),
	}, nil
}

// ComplianceScore is certified/total as a percentage, 0 for no records.
// It is not rounded; recommendations compare the exact value.
func ComplianceScore(certified, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(certified)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total)))
}

func Recommendations(score, emissions decimal.Decimal) []string {
	recommendations := []string{}
	if score.LessThan(lowComplianceScore) {
		recommendations = append(recommendations, recommendCertifiedMaterials)
	}
	if emissions.GreaterThan(significantEmissions) {
		recommendations = append(recommendations, recommendCarbonOffsets)
	}
	if score.GreaterThanOrEqual(highComplianceScore) {
		recommendations = append(recommendations, recommendPremiumCertificate)
	}
	return recommendations
}

func (s *carbonService) projectRecords(ctx context.Context, projectID string) ([]*carbon.Record, error) {
	filter := types.NewCarbonRecordFilter()
	filter.ProjectID = projectID
	records, _, err := s.list(ctx, filter)
	return records, err
}

func totalEmissions(records []*carbon.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.TotalCarbonEmissions)
	}
	return total
}

func (s *carbonService) summaryKey(ctx context.Context, projectID string) string {
	return cache.GenerateKey(cache.PrefixCarbonSummary, types.GetUserID(ctx), projectID)
}

func (s *carbonService) invalidateSummary(ctx context.Context, projectID string) {
	s.Cache.Delete(ctx, s.summaryKey(ctx, projectID))
}
