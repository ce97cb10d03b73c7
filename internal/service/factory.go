package service

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/auth"
	"github.com/contractorpro/contractorpro/internal/cache"
	"github.com/contractorpro/contractorpro/internal/config"
	"github.com/contractorpro/contractorpro/internal/domain/carbon"
	"github.com/contractorpro/contractorpro/internal/domain/client"
	"github.com/contractorpro/contractorpro/internal/domain/compliance"
	"github.com/contractorpro/contractorpro/internal/domain/inventory"
	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/domain/jobcost"
	"github.com/contractorpro/contractorpro/internal/domain/payment"
	"github.com/contractorpro/contractorpro/internal/domain/portal"
	"github.com/contractorpro/contractorpro/internal/domain/project"
	"github.com/contractorpro/contractorpro/internal/domain/recurringinvoice"
	"github.com/contractorpro/contractorpro/internal/domain/teammember"
	"github.com/contractorpro/contractorpro/internal/domain/timeentry"
	"github.com/contractorpro/contractorpro/internal/domain/user"
	"github.com/contractorpro/contractorpro/internal/email"
	"github.com/contractorpro/contractorpro/internal/events"
	"github.com/contractorpro/contractorpro/internal/integration/stripe"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/s3"
	"github.com/contractorpro/contractorpro/internal/types"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Cache  cache.Cache
	Auth   auth.Provider

	// Repositories
	UserRepo                 user.Repository
	ClientRepo               client.Repository
	ProjectRepo              project.Repository
	InvoiceRepo              invoice.Repository
	RecurringInvoiceRepo     recurringinvoice.Repository
	TeamMemberRepo           teammember.Repository
	TimeEntryRepo            timeentry.Repository
	JobCostRepo              jobcost.Repository
	InventoryRepo            inventory.Repository
	InventoryTransactionRepo inventory.TransactionRepository
	CarbonRepo               carbon.Repository
	ComplianceRepo           compliance.Repository
	PortalRepo               portal.Repository
	PaymentRepo              payment.Repository

	// Publishers
	EventPublisher events.Publisher

	// Integrations. Documents is nil when document storage is disabled.
	Gateway   stripe.Gateway
	Email     *email.Email
	Documents s3.Service

	// Now is the service clock; tests pin it
	Now func() time.Time
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	cache cache.Cache,
	authProvider auth.Provider,
	userRepo user.Repository,
	clientRepo client.Repository,
	projectRepo project.Repository,
	invoiceRepo invoice.Repository,
	recurringInvoiceRepo recurringinvoice.Repository,
	teamMemberRepo teammember.Repository,
	timeEntryRepo timeentry.Repository,
	jobCostRepo jobcost.Repository,
	inventoryRepo inventory.Repository,
	inventoryTransactionRepo inventory.TransactionRepository,
	carbonRepo carbon.Repository,
	complianceRepo compliance.Repository,
	portalRepo portal.Repository,
	paymentRepo payment.Repository,
	eventPublisher events.Publisher,
	gateway stripe.Gateway,
	emailService *email.Email,
	documents s3.Service,
) ServiceParams {
	return ServiceParams{
		Logger:                   logger,
		Config:                   config,
		DB:                       db,
		Cache:                    cache,
		Auth:                     authProvider,
		UserRepo:                 userRepo,
		ClientRepo:               clientRepo,
		ProjectRepo:              projectRepo,
		InvoiceRepo:              invoiceRepo,
		RecurringInvoiceRepo:     recurringInvoiceRepo,
		TeamMemberRepo:           teamMemberRepo,
		TimeEntryRepo:            timeEntryRepo,
		JobCostRepo:              jobCostRepo,
		InventoryRepo:            inventoryRepo,
		InventoryTransactionRepo: inventoryTransactionRepo,
		CarbonRepo:               carbonRepo,
		ComplianceRepo:           complianceRepo,
		PortalRepo:               portalRepo,
		PaymentRepo:              paymentRepo,
		EventPublisher:           eventPublisher,
		Gateway:                  gateway,
		Email:                    emailService,
		Documents:                documents,
		Now:                      func() time.Time { return time.Now().UTC() },
	}
}

func (p ServiceParams) now() time.Time {
	if p.Now == nil {
		return time.Now().UTC()
	}
	return p.Now()
}

// publish logs failures instead of returning them: the state change has already committed
func (p ServiceParams) publish(ctx context.Context, eventName string, payload interface{}) {
	if p.EventPublisher == nil {
		return
	}
	if err := p.EventPublisher.Publish(ctx, eventName, payload); err != nil {
		p.Logger.Errorw("failed to publish event",
			"event_name", eventName,
			"user_id", types.GetUserID(ctx),
			"error", err,
		)
	}
}
