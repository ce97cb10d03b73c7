package service

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/compliance"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/s3"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
)

type ComplianceService interface {
	CreateDocument(ctx context.Context, req dto.CreateComplianceDocumentRequest) (*dto.ComplianceDocumentResponse, error)
	GetDocument(ctx context.Context, id string) (*dto.ComplianceDocumentResponse, error)
	ListDocuments(ctx context.Context, filter *types.ComplianceDocumentFilter) (*dto.ListComplianceDocumentsResponse, error)
	// GetExpiringDocuments lists valid documents expiring within the expiry window, including overdue ones
	GetExpiringDocuments(ctx context.Context) ([]*dto.ComplianceDocumentResponse, error)
	DeleteDocument(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, data []byte) (*dto.UploadDocumentResponse, error)
}

type complianceService struct {
	ServiceParams
}

func NewComplianceService(params ServiceParams) ComplianceService {
	return &complianceService{
		ServiceParams: params,
	}
}

func (s *complianceService) CreateDocument(ctx context.Context, req dto.CreateComplianceDocumentRequest) (*dto.ComplianceDocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.TeamMemberRepo.Get(ctx, req.TeamMemberID); err != nil {
		return nil, err
	}

	doc := req.ToDocument(ctx)
	if err := s.ComplianceRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return &dto.ComplianceDocumentResponse{Document: doc}, nil
}

func (s *complianceService) GetDocument(ctx context.Context, id string) (*dto.ComplianceDocumentResponse, error) {
	doc, err := s.ComplianceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ComplianceDocumentResponse{Document: doc}, nil
}

func (s *complianceService) ListDocuments(ctx context.Context, filter *types.ComplianceDocumentFilter) (*dto.ListComplianceDocumentsResponse, error) {
	if filter == nil {
		filter = types.NewComplianceDocumentFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	docs, err := s.ComplianceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(docs, len(docs), filter.QueryFilter, func(d *compliance.Document) *dto.ComplianceDocumentResponse {
		return &dto.ComplianceDocumentResponse{Document: d}
	})
	return &resp, nil
}

func (s *complianceService) GetExpiringDocuments(ctx context.Context) ([]*dto.ComplianceDocumentResponse, error) {
	cutoff := types.AddDays(s.now(), types.DocumentExpiryWindowDays)

	filter := types.NewComplianceDocumentFilter()
	filter.ExpiringBefore = &cutoff
	docs, err := s.ComplianceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	docs = lo.Filter(docs, func(d *compliance.Document, _ int) bool { return d.ExpiresBy(cutoff) })
	return lo.Map(docs, func(d *compliance.Document, _ int) *dto.ComplianceDocumentResponse {
		return &dto.ComplianceDocumentResponse{Document: d}
	}), nil
}

func (s *complianceService) DeleteDocument(ctx context.Context, id string) error {
	return s.ComplianceRepo.Delete(ctx, id)
}

// UploadDocument stores a sniffed pdf or image and returns a URL for CreateDocument
func (s *complianceService) UploadDocument(ctx context.Context, data []byte) (*dto.UploadDocumentResponse, error) {
	if s.Documents == nil {
		return nil, ierr.NewError("document storage disabled").
			WithHint("Document uploads are not enabled").
			Mark(ierr.ErrInvalidOperation)
	}

	doc, err := s3.NewDocument(types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COMPLIANCE_DOCUMENT), data)
	if err != nil {
		return nil, err
	}

	result, err := s.Documents.UploadDocument(ctx, types.GetUserID(ctx), doc)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("uploaded compliance document",
		"key", result.Key,
		"content_type", doc.ContentType,
		"user_id", types.GetUserID(ctx),
	)

	return &dto.UploadDocumentResponse{
		Key:         result.Key,
		FileURL:     result.FileURL,
		ContentType: doc.ContentType,
	}, nil
}
