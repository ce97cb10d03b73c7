package testutil

import (
	"context"
	"time"

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
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
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
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	stores      Stores
	publisher   *InMemoryEventPublisher
	db          *MockPostgresClient
	logger      *logger.Logger
	config      *config.Configuration
	now         time.Time
	cache       cache.Cache
	gateway     *MockStripeGateway
	emailSender *MockEmailSender
	email       *email.Email
	documents   *InMemoryDocumentStore
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo
	cfg.Auth.Secret = "test-secret-for-unit-tests-only"
	cfg.Cache.Enabled = true
	cfg.Notifications.InvoiceEmail = true
	cfg.Notifications.PaymentConfirmation = true

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	// mid-month so month arithmetic in tests never clamps by accident
	s.now = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		UserRepo:                 NewInMemoryUserStore(),
		ClientRepo:               NewInMemoryClientStore(),
		ProjectRepo:              NewInMemoryProjectStore(),
		InvoiceRepo:              NewInMemoryInvoiceStore(),
		RecurringInvoiceRepo:     NewInMemoryRecurringInvoiceStore(),
		TeamMemberRepo:           NewInMemoryTeamMemberStore(),
		TimeEntryRepo:            NewInMemoryTimeEntryStore(),
		JobCostRepo:              NewInMemoryJobCostStore(),
		InventoryRepo:            NewInMemoryInventoryStore(),
		InventoryTransactionRepo: NewInMemoryInventoryTransactionStore(),
		CarbonRepo:               NewInMemoryCarbonStore(),
		ComplianceRepo:           NewInMemoryComplianceStore(),
		PortalRepo:               NewInMemoryPortalStore(),
		PaymentRepo:              NewInMemoryPaymentStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.publisher = NewInMemoryEventPublisher()
	s.cache = cache.NewInMemoryCache(s.config, s.logger)
	s.gateway = new(MockStripeGateway)
	s.emailSender = NewMockEmailSender()
	s.email = email.NewEmail(s.emailSender, s.config, s.logger)
	s.documents = NewInMemoryDocumentStore()
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.UserRepo.(*InMemoryUserStore).Clear()
	s.stores.ClientRepo.(*InMemoryClientStore).Clear()
	s.stores.ProjectRepo.(*InMemoryProjectStore).Clear()
	s.stores.InvoiceRepo.(*InMemoryInvoiceStore).Clear()
	s.stores.RecurringInvoiceRepo.(*InMemoryRecurringInvoiceStore).Clear()
	s.stores.TeamMemberRepo.(*InMemoryTeamMemberStore).Clear()
	s.stores.TimeEntryRepo.(*InMemoryTimeEntryStore).Clear()
	s.stores.JobCostRepo.(*InMemoryJobCostStore).Clear()
	s.stores.InventoryRepo.(*InMemoryInventoryStore).Clear()
	s.stores.InventoryTransactionRepo.(*InMemoryInventoryTransactionStore).Clear()
	s.stores.CarbonRepo.(*InMemoryCarbonStore).Clear()
	s.stores.ComplianceRepo.(*InMemoryComplianceStore).Clear()
	s.stores.PortalRepo.(*InMemoryPortalStore).Clear()
	s.stores.PaymentRepo.(*InMemoryPaymentStore).Clear()
	s.publisher.Clear()
	s.cache.Flush(context.Background())
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetPublisher returns the recording event publisher
func (s *BaseServiceTestSuite) GetPublisher() *InMemoryEventPublisher {
	return s.publisher
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() *MockPostgresClient {
	return s.db
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

func (s *BaseServiceTestSuite) GetGateway() *MockStripeGateway {
	return s.gateway
}

func (s *BaseServiceTestSuite) GetEmailSender() *MockEmailSender {
	return s.emailSender
}

func (s *BaseServiceTestSuite) GetEmail() *email.Email {
	return s.email
}

func (s *BaseServiceTestSuite) GetDocuments() *InMemoryDocumentStore {
	return s.documents
}

// GetNow returns the fixed test clock
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// SetNow moves the test clock
func (s *BaseServiceTestSuite) SetNow(now time.Time) {
	s.now = now.UTC()
}

// Clock returns a func reading the suite clock, so SetNow is seen by services built earlier
func (s *BaseServiceTestSuite) Clock() func() time.Time {
	return s.GetNow
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
