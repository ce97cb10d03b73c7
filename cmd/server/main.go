package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/contractorpro/contractorpro/internal/api"
	v1 "github.com/contractorpro/contractorpro/internal/api/v1"
	"github.com/contractorpro/contractorpro/internal/auth"
	"github.com/contractorpro/contractorpro/internal/cache"
	"github.com/contractorpro/contractorpro/internal/config"
	"github.com/contractorpro/contractorpro/internal/email"
	"github.com/contractorpro/contractorpro/internal/events"
	"github.com/contractorpro/contractorpro/internal/integration/stripe"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/pubsub"
	"github.com/contractorpro/contractorpro/internal/pubsub/memory"
	pubsubRouter "github.com/contractorpro/contractorpro/internal/pubsub/router"
	"github.com/contractorpro/contractorpro/internal/repository"
	"github.com/contractorpro/contractorpro/internal/s3"
	"github.com/contractorpro/contractorpro/internal/sentry"
	"github.com/contractorpro/contractorpro/internal/service"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title ContractorPro API
// @version 1.0
// @description Business management API for contractors: invoicing, time tracking, materials and payments
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the token in the format **Bearer &lt;token&gt;**
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

const shutdownTimeout = 15 * time.Second

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewDB,
			provideDBClient,

			// Auth
			auth.NewProvider,

			// Integrations
			stripe.NewClient,
			s3.NewService,
			fx.Annotate(email.NewEmailClient, fx.As(new(email.Sender))),
			email.NewEmail,

			// PubSub
			memory.NewPubSub,
			providePubSubSubscriber,
			pubsubRouter.NewRouter,
			events.NewPublisher,

			// Repositories
			repository.NewUserRepository,
			repository.NewClientRepository,
			repository.NewProjectRepository,
			repository.NewInvoiceRepository,
			repository.NewRecurringInvoiceRepository,
			repository.NewTeamMemberRepository,
			repository.NewTimeEntryRepository,
			repository.NewJobCostRepository,
			repository.NewInventoryRepository,
			repository.NewInventoryTransactionRepository,
			repository.NewCarbonRepository,
			repository.NewComplianceRepository,
			repository.NewPortalRepository,
			repository.NewPaymentRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewAuthService,
			service.NewClientService,
			service.NewProjectService,
			service.NewInvoiceService,
			service.NewRecurringInvoiceService,
			service.NewTeamMemberService,
			service.NewTimeEntryService,
			service.NewJobCostService,
			service.NewInventoryService,
			service.NewCarbonService,
			service.NewComplianceService,
			service.NewPortalService,
			service.NewPaymentService,
			service.NewEmailService,
			service.NewNotificationService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideDBClient(db *postgres.DB) postgres.IClient {
	return db
}

// the in-memory pubsub is both ends of the event bus
func providePubSubSubscriber(ps pubsub.PubSub) message.Subscriber {
	return ps
}

func provideHandlers(
	logger *logger.Logger,
	db postgres.IClient,
	authService service.AuthService,
	clientService service.ClientService,
	projectService service.ProjectService,
	invoiceService service.InvoiceService,
	recurringInvoiceService service.RecurringInvoiceService,
	teamMemberService service.TeamMemberService,
	timeEntryService service.TimeEntryService,
	jobCostService service.JobCostService,
	inventoryService service.InventoryService,
	carbonService service.CarbonService,
	complianceService service.ComplianceService,
	portalService service.PortalService,
	paymentService service.PaymentService,
	emailService service.EmailService,
) api.Handlers {
	return api.Handlers{
		Health:           v1.NewHealthHandler(db, logger),
		Auth:             v1.NewAuthHandler(authService, logger),
		Client:           v1.NewClientHandler(clientService, logger),
		Project:          v1.NewProjectHandler(projectService, logger),
		Invoice:          v1.NewInvoiceHandler(invoiceService, logger),
		RecurringInvoice: v1.NewRecurringInvoiceHandler(recurringInvoiceService, logger),
		TeamMember:       v1.NewTeamMemberHandler(teamMemberService, logger),
		TimeEntry:        v1.NewTimeEntryHandler(timeEntryService, logger),
		JobCost:          v1.NewJobCostHandler(jobCostService, logger),
		Inventory:        v1.NewInventoryHandler(inventoryService, logger),
		Carbon:           v1.NewCarbonHandler(carbonService, logger),
		Compliance:       v1.NewComplianceHandler(complianceService, logger),
		Portal:           v1.NewPortalHandler(portalService, logger),
		Payment:          v1.NewPaymentHandler(paymentService, logger),
		Email:            v1.NewEmailHandler(emailService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, provider auth.Provider, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, provider, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	router *pubsubRouter.Router,
	subscriber message.Subscriber,
	notificationService service.NotificationService,
	log *logger.Logger,
) {
	// hooks stop in reverse order, so the pool closes after the server drains
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			db.Close()
			return nil
		},
	})

	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal:
		startAPIServer(lc, r, cfg, log)
		startMessageRouter(lc, router, subscriber, notificationService, log)
	case types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

func startMessageRouter(
	lc fx.Lifecycle,
	router *pubsubRouter.Router,
	subscriber message.Subscriber,
	notificationService service.NotificationService,
	logger *logger.Logger,
) {
	// Register handlers before starting the router
	notificationService.RegisterHandlers(router, subscriber)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting message router")
			go func() {
				if err := router.Run(context.Background()); err != nil {
					logger.Errorw("message router failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping message router")
			return router.Close()
		},
	})
}
