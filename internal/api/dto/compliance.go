package dto

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/compliance"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
)

type CreateComplianceDocumentRequest struct {
	TeamMemberID string             `json:"team_member_id" validate:"required"`
	DocumentType types.DocumentType `json:"document_type" validate:"required"`
	DocumentName string             `json:"document_name" validate:"required,max=255"`
	FileURL      string             `json:"file_url" validate:"required,url"`
	IssueDate    *time.Time         `json:"issue_date,omitempty"`
	ExpiryDate   *time.Time         `json:"expiry_date,omitempty"`
	Notes        string             `json:"notes,omitempty"`
}

func (r *CreateComplianceDocumentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.DocumentType.Validate()
}

// ToDocument records a valid document awaiting verification
func (r *CreateComplianceDocumentRequest) ToDocument(ctx context.Context) *compliance.Document {
	return &compliance.Document{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COMPLIANCE_DOCUMENT),
		TeamMemberID:       r.TeamMemberID,
		DocumentType:       r.DocumentType,
		DocumentName:       r.DocumentName,
		FileURL:            r.FileURL,
		IssueDate:          r.IssueDate,
		ExpiryDate:         r.ExpiryDate,
		Status:             types.DocumentStatusValid,
		VerificationStatus: types.VerificationStatusPending,
		Notes:              r.Notes,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}
}

type ComplianceDocumentResponse struct {
	*compliance.Document
}

type ListComplianceDocumentsResponse = types.ListResponse[*ComplianceDocumentResponse]

type UploadDocumentResponse struct {
	Key         string `json:"key"`
	FileURL     string `json:"file_url"`
	ContentType string `json:"content_type"`
}
