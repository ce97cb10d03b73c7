package repository

import (
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
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	postgresRepo "github.com/contractorpro/contractorpro/internal/repository/postgres"
)

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return postgresRepo.NewUserRepository(db, logger)
}

func NewClientRepository(db *postgres.DB, logger *logger.Logger) client.Repository {
	return postgresRepo.NewClientRepository(db, logger)
}

func NewProjectRepository(db *postgres.DB, logger *logger.Logger) project.Repository {
	return postgresRepo.NewProjectRepository(db, logger)
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return postgresRepo.NewInvoiceRepository(db, logger)
}

func NewRecurringInvoiceRepository(db *postgres.DB, logger *logger.Logger) recurringinvoice.Repository {
	return postgresRepo.NewRecurringInvoiceRepository(db, logger)
}

func NewTeamMemberRepository(db *postgres.DB, logger *logger.Logger) teammember.Repository {
	return postgresRepo.NewTeamMemberRepository(db, logger)
}

func NewTimeEntryRepository(db *postgres.DB, logger *logger.Logger) timeentry.Repository {
	return postgresRepo.NewTimeEntryRepository(db, logger)
}

func NewJobCostRepository(db *postgres.DB, logger *logger.Logger) jobcost.Repository {
	return postgresRepo.NewJobCostRepository(db, logger)
}

func NewInventoryRepository(db *postgres.DB, logger *logger.Logger) inventory.Repository {
	return postgresRepo.NewInventoryRepository(db, logger)
}

func NewInventoryTransactionRepository(db *postgres.DB, logger *logger.Logger) inventory.TransactionRepository {
	return postgresRepo.NewInventoryTransactionRepository(db, logger)
}

func NewCarbonRepository(db *postgres.DB, logger *logger.Logger) carbon.Repository {
	return postgresRepo.NewCarbonRepository(db, logger)
}

func NewComplianceRepository(db *postgres.DB, logger *logger.Logger) compliance.Repository {
	return postgresRepo.NewComplianceRepository(db, logger)
}

func NewPortalRepository(db *postgres.DB, logger *logger.Logger) portal.Repository {
	return postgresRepo.NewPortalRepository(db, logger)
}

func NewPaymentRepository(db *postgres.DB, logger *logger.Logger) payment.Repository {
	return postgresRepo.NewPaymentRepository(db, logger)
}
