package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/domain/portal"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
)

// portalTokenBytes is the entropy of an access token before hex encoding
const portalTokenBytes = 32

type PortalService interface {
	CreateAccess(ctx context.Context, req dto.CreatePortalAccessRequest) (*dto.CreatePortalAccessResponse, error)
	ListAccess(ctx context.Context, filter *types.PortalAccessFilter) (*dto.ListPortalAccessResponse, error)
	RevokeAccess(ctx context.Context, id string) error
	UpdateAccessLevel(ctx context.Context, id string, req dto.UpdatePortalAccessLevelRequest) (*dto.PortalAccessResponse, error)

	// GetPortalData is called by the client holding the token, not by the contractor
	GetPortalData(ctx context.Context, token string) (*dto.PortalDataResponse, error)
}

type portalService struct {
	ServiceParams
}

func NewPortalService(params ServiceParams) PortalService {
	return &portalService{
		ServiceParams: params,
	}
}

func (s *portalService) CreateAccess(ctx context.Context, req dto.CreatePortalAccessRequest) (*dto.CreatePortalAccessResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}
	if _, err := s.ProjectRepo.Get(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	token, err := generateAccessToken()
	if err != nil {
		return nil, err
	}

	access := &portal.Access{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PORTAL_ACCESS),
		ClientID:    req.ClientID,
		ProjectID:   req.ProjectID,
		PortalURL:   strings.TrimRight(s.Config.Portal.BaseURL, "/") + "/" + token,
		AccessToken: token,
		AccessLevel: req.AccessLevel,
		IsActive:    true,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
	if req.ExpiryDays != nil {
		access.ExpiryDate = lo.ToPtr(types.AddDays(s.now(), *req.ExpiryDays))
	}

	if err := s.PortalRepo.Create(ctx, access); err != nil {
		return nil, err
	}

	s.Logger.Infow("created portal access",
		"portal_access_id", access.ID,
		"client_id", access.ClientID,
		"project_id", access.ProjectID,
		"access_level", access.AccessLevel,
	)

	return &dto.CreatePortalAccessResponse{
		Success:     true,
		PortalURL:   access.PortalURL,
		AccessToken: access.AccessToken,
		Message:     "Portal access created successfully",
	}, nil
}

func (s *portalService) ListAccess(ctx context.Context, filter *types.PortalAccessFilter) (*dto.ListPortalAccessResponse, error) {
	if filter == nil {
		filter = types.NewPortalAccessFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	accesses, err := s.PortalRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(accesses, len(accesses), filter.QueryFilter, func(a *portal.Access) *dto.PortalAccessResponse {
		return &dto.PortalAccessResponse{Access: a}
	})
	return &resp, nil
}

func (s *portalService) RevokeAccess(ctx context.Context, id string) error {
	access, err := s.PortalRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	access.IsActive = false
	access.UpdatedAt = s.now()
	return s.PortalRepo.Update(ctx, access)
}

func (s *portalService) UpdateAccessLevel(ctx context.Context, id string, req dto.UpdatePortalAccessLevelRequest) (*dto.PortalAccessResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	access, err := s.PortalRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	access.AccessLevel = req.AccessLevel
	access.UpdatedAt = s.now()

	if err := s.PortalRepo.Update(ctx, access); err != nil {
		return nil, err
	}
	return &dto.PortalAccessResponse{Access: access}, nil
}

func (s *portalService) GetPortalData(ctx context.Context, token string) (*dto.PortalDataResponse, error) {
	access, err := s.PortalRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if access.IsExpired(now) {
		return nil, ierr.NewError("portal access expired").
			WithHint("Portal access has expired").
			WithReportableDetails(map[string]any{"portal_access_id": access.ID}).
			Mark(ierr.ErrPermissionDenied)
	}

	if err := s.PortalRepo.TouchLastAccessed(ctx, access.ID); err != nil {
		return nil, err
	}

	p, err := s.ProjectRepo.GetUnscoped(ctx, access.ProjectID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.InvoiceRepo.ListByProjectUnscoped(ctx, access.ProjectID)
	if err != nil {
		return nil, err
	}

	return &dto.PortalDataResponse{
		Project: &dto.ProjectResponse{Project: p},
		Invoices: lo.Map(invoices, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
			return &dto.InvoiceResponse{Invoice: inv}
		}),
		AccessLevel:       access.AccessLevel,
		CanViewOnly:       access.CanViewOnly(),
		CanApproveChanges: access.CanApproveChanges(),
		CanMakePayments:   access.CanMakePayments(),
	}, nil
}

func generateAccessToken() (string, error) {
	buf := make([]byte, portalTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to generate portal access token").
			Mark(ierr.ErrSystem)
	}
	return hex.EncodeToString(buf), nil
}
