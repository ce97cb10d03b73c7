package service

import (
	"github.com/contractorpro/contractorpro/internal/auth"
	"github.com/contractorpro/contractorpro/internal/domain/client"
	"github.com/contractorpro/contractorpro/internal/domain/project"
	"github.com/contractorpro/contractorpro/internal/domain/teammember"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

// newTestServiceParams wires every service dependency to the suite's in-memory doubles
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:                   s.GetLogger(),
		Config:                   s.GetConfig(),
		DB:                       s.GetDB(),
		Cache:                    s.GetCache(),
		Auth:                     auth.NewProvider(s.GetConfig()),
		UserRepo:                 stores.UserRepo,
		ClientRepo:               stores.ClientRepo,
		ProjectRepo:              stores.ProjectRepo,
		InvoiceRepo:              stores.InvoiceRepo,
		RecurringInvoiceRepo:     stores.RecurringInvoiceRepo,
		TeamMemberRepo:           stores.TeamMemberRepo,
		TimeEntryRepo:            stores.TimeEntryRepo,
		JobCostRepo:              stores.JobCostRepo,
		InventoryRepo:            stores.InventoryRepo,
		InventoryTransactionRepo: stores.InventoryTransactionRepo,
		CarbonRepo:               stores.CarbonRepo,
		ComplianceRepo:           stores.ComplianceRepo,
		PortalRepo:               stores.PortalRepo,
		PaymentRepo:              stores.PaymentRepo,
		EventPublisher:           s.GetPublisher(),
		Gateway:                  s.GetGateway(),
		Email:                    s.GetEmail(),
		Documents:                s.GetDocuments(),
		Now:                      s.Clock(),
	}
}

func seedClient(s *testutil.BaseServiceTestSuite, name, email string) *client.Client {
	c := &client.Client{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:      name,
		Email:     email,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), c))
	return c
}

func seedProject(s *testutil.BaseServiceTestSuite, clientID, name string) *project.Project {
	p := &project.Project{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROJECT),
		ClientID:  clientID,
		Name:      name,
		Status:    types.ProjectStatusInProgress,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ProjectRepo.Create(s.GetContext(), p))
	return p
}

func seedTeamMember(s *testutil.BaseServiceTestSuite, name string, rate string) *teammember.TeamMember {
	m := &teammember.TeamMember{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TEAM_MEMBER),
		Name:       name,
		Role:       types.TeamMemberRoleWorker,
		HourlyRate: decimal.RequireFromString(rate),
		BaseModel:  types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TeamMemberRepo.Create(s.GetContext(), m))
	return m
}
