package api

import (
	v1 "github.com/contractorpro/contractorpro/internal/api/v1"
	"github.com/contractorpro/contractorpro/internal/auth"
	"github.com/contractorpro/contractorpro/internal/config"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/metrics"
	"github.com/contractorpro/contractorpro/internal/rest/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health           *v1.HealthHandler
	Auth             *v1.AuthHandler
	Client           *v1.ClientHandler
	Project          *v1.ProjectHandler
	Invoice          *v1.InvoiceHandler
	RecurringInvoice *v1.RecurringInvoiceHandler
	TeamMember       *v1.TeamMemberHandler
	TimeEntry        *v1.TimeEntryHandler
	JobCost          *v1.JobCostHandler
	Inventory        *v1.InventoryHandler
	Carbon           *v1.CarbonHandler
	Compliance       *v1.ComplianceHandler
	Portal           *v1.PortalHandler
	Payment          *v1.PaymentHandler
	Email            *v1.EmailHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, provider auth.Provider, logger *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		metrics.Middleware(),
		middleware.SentryMiddleware(cfg),
		middleware.ErrorHandler(logger),
	)

	router.GET("/health", handlers.Health.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled {
		limit = middleware.NewRateLimiter(cfg, logger).Middleware()
	}

	v1Public := router.Group("/v1", limit)
	v1Private := router.Group("/v1", middleware.AuthenticateMiddleware(cfg, provider, logger), limit)

	registerPublicRoutes(v1Public, handlers)
	registerPrivateRoutes(v1Private, handlers)

	return router
}

func registerPublicRoutes(router *gin.RouterGroup, handlers Handlers) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", handlers.Auth.SignUp)
		authRoutes.POST("/login", handlers.Auth.Login)
	}

	// Portal links are opened by clients who have no account
	router.GET("/portal/view/:token", handlers.Portal.GetPortalData)

	router.POST("/payments/webhook", handlers.Payment.HandleWebhook)
}

func registerPrivateRoutes(router *gin.RouterGroup, handlers Handlers) {
	clients := router.Group("/clients")
	{
		clients.POST("", handlers.Client.CreateClient)
		clients.GET("", handlers.Client.ListClients)
		clients.GET("/:id", handlers.Client.GetClient)
		clients.PUT("/:id", handlers.Client.UpdateClient)
		clients.DELETE("/:id", handlers.Client.DeleteClient)
		clients.GET("/:id/history", handlers.Client.GetClientHistory)
		clients.GET("/:id/invoices/:invoice_id", handlers.Client.GetClientInvoice)
	}

	projects := router.Group("/projects")
	{
		projects.POST("", handlers.Project.CreateProject)
		projects.GET("", handlers.Project.ListProjects)
		projects.GET("/:id", handlers.Project.GetProject)
		projects.PUT("/:id", handlers.Project.UpdateProject)
		projects.DELETE("/:id", handlers.Project.DeleteProject)
	}

	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.PUT("/:id", handlers.Invoice.UpdateInvoice)
		invoices.DELETE("/:id", handlers.Invoice.DeleteInvoice)
	}

	recurring := router.Group("/recurring-invoices")
	{
		recurring.POST("", handlers.RecurringInvoice.CreateRecurringInvoice)
		recurring.GET("", handlers.RecurringInvoice.ListRecurringInvoices)
		recurring.POST("/generate", handlers.RecurringInvoice.GenerateDueInvoices)
		recurring.GET("/:id", handlers.RecurringInvoice.GetRecurringInvoice)
		recurring.PUT("/:id", handlers.RecurringInvoice.UpdateRecurringInvoice)
		recurring.DELETE("/:id", handlers.RecurringInvoice.DeleteRecurringInvoice)
	}

	teamMembers := router.Group("/team-members")
	{
		teamMembers.POST("", handlers.TeamMember.CreateTeamMember)
		teamMembers.GET("", handlers.TeamMember.ListTeamMembers)
		teamMembers.GET("/:id", handlers.TeamMember.GetTeamMember)
		teamMembers.PUT("/:id", handlers.TeamMember.UpdateTeamMember)
		teamMembers.DELETE("/:id", handlers.TeamMember.DeleteTeamMember)
	}

	timeEntries := router.Group("/time-entries")
	{
		timeEntries.GET("", handlers.TimeEntry.ListTimeEntries)
		timeEntries.GET("/summary", handlers.TimeEntry.GetSummary)
		timeEntries.GET("/export", handlers.TimeEntry.ExportTimeEntries)
		timeEntries.POST("/clock-in", handlers.TimeEntry.ClockIn)
		timeEntries.GET("/:id", handlers.TimeEntry.GetTimeEntry)
		timeEntries.POST("/:id/clock-out", handlers.TimeEntry.ClockOut)
		timeEntries.POST("/:id/approve", handlers.TimeEntry.ApproveTimeEntry)
	}

	jobCosts := router.Group("/job-costs")
	{
		jobCosts.POST("", handlers.JobCost.CreateJobCost)
		jobCosts.GET("", handlers.JobCost.ListJobCosts)
		jobCosts.GET("/export", handlers.JobCost.ExportJobCosts)
		jobCosts.GET("/:id", handlers.JobCost.GetJobCost)
		jobCosts.DELETE("/:id", handlers.JobCost.DeleteJobCost)
	}

	inventory := router.Group("/inventory")
	{
		inventory.POST("", handlers.Inventory.CreateItem)
		inventory.GET("", handlers.Inventory.ListItems)
		inventory.GET("/summary", handlers.Inventory.GetSummary)
		inventory.POST("/transfer", handlers.Inventory.TransferItem)
		inventory.GET("/project/:project_id", handlers.Inventory.ListItemsByProject)
		inventory.GET("/:id", handlers.Inventory.GetItem)
		inventory.PUT("/:id/status", handlers.Inventory.UpdateItemStatus)
		inventory.GET("/:id/history", handlers.Inventory.GetTransactionHistory)
		inventory.DELETE("/:id", handlers.Inventory.DeleteItem)
	}

	carbon := router.Group("/carbon")
	{
		carbon.POST("", handlers.Carbon.CreateRecord)
		carbon.GET("", handlers.Carbon.ListRecords)
		carbon.GET("/project/:project_id", handlers.Carbon.ListRecordsByProject)
		carbon.GET("/project/:project_id/summary", handlers.Carbon.GetProjectSummary)
		carbon.GET("/project/:project_id/report", handlers.Carbon.GetComplianceReport)
		carbon.DELETE("/:id", handlers.Carbon.DeleteRecord)
	}

	compliance := router.Group("/compliance")
	{
		compliance.POST("", handlers.Compliance.CreateDocument)
		compliance.GET("", handlers.Compliance.ListDocuments)
		compliance.GET("/expiring", handlers.Compliance.GetExpiringDocuments)
		compliance.POST("/upload", handlers.Compliance.UploadDocument)
		compliance.GET("/:id", handlers.Compliance.GetDocument)
		compliance.DELETE("/:id", handlers.Compliance.DeleteDocument)
	}

	portal := router.Group("/portal/access")
	{
		portal.POST("", handlers.Portal.CreateAccess)
		portal.GET("", handlers.Portal.ListAccess)
		portal.POST("/:id/revoke", handlers.Portal.RevokeAccess)
		portal.PUT("/:id/level", handlers.Portal.UpdateAccessLevel)
	}

	payments := router.Group("/payments")
	{
		payments.GET("", handlers.Payment.ListPayments)
		payments.POST("/create-intent", handlers.Payment.CreatePaymentIntent)
		payments.POST("/create-checkout", handlers.Payment.CreateCheckoutSession)
		payments.GET("/intent/:id/status", handlers.Payment.GetPaymentIntentStatus)
		payments.GET("/checkout/:id/status", handlers.Payment.GetCheckoutSessionStatus)
		payments.POST("/record", handlers.Payment.RecordPayment)
		payments.POST("/refund", handlers.Payment.CreateRefund)
	}

	email := router.Group("/email")
	{
		email.POST("/invoice", handlers.Email.SendInvoiceEmail)
		email.POST("/payment-confirmation", handlers.Email.SendPaymentConfirmationEmail)
		email.POST("/payment-reminder", handlers.Email.SendPaymentReminderEmail)
		email.POST("/welcome", handlers.Email.SendWelcomeEmail)
		email.POST("/test", handlers.Email.SendTestEmail)
	}
}
