package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/domain/recurringinvoice"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RepositorySuite struct {
	suite.Suite
	ctx  context.Context
	raw  *sql.DB
	mock sqlmock.Sqlmock
	db   *postgres.DB
	now  time.Time
}

func TestRepository(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	raw, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.raw = raw
	s.mock = mock
	s.db = postgres.New(sqlx.NewDb(raw, "postgres"), logger.NewNoopLogger())
	s.ctx = types.SetUserID(context.Background(), "user_1")
	s.now = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
}

func (s *RepositorySuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	s.raw.Close()
}

func recurringRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "client_id", "project_id", "name", "frequency", "status",
		"start_date", "end_date", "subtotal", "tax_amount", "total", "next_invoice_date",
		"created_at", "updated_at",
	})
}

func (s *RepositorySuite) TestListDueScopesToActiveTemplates() {
	repo := NewRecurringInvoiceRepository(s.db, logger.NewNoopLogger())
	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	rows := recurringRows().
		AddRow("rinv_1", "user_1", "cli_1", nil, "Retainer", "monthly", "active",
			start, nil, "900.00", "100.00", "1000.00", start, start, start).
		AddRow("rinv_2", "user_1", "cli_2", "proj_1", "Maintenance", "weekly", "active",
			start, nil, "50.00", "0.00", "50.00", s.now, start, start)

	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND status = $2 AND next_invoice_date <= $3")).
		WithArgs("user_1", "active", s.now).
		WillReturnRows(rows)

	templates, err := repo.ListDue(s.ctx, s.now)
	s.Require().NoError(err)
	s.Require().Len(templates, 2)

	s.Equal("rinv_1", templates[0].ID)
	s.Nil(templates[0].ProjectID)
	s.Equal(types.RecurringFrequencyMonthly, templates[0].Frequency)
	s.True(decimal.NewFromInt(1000).Equal(templates[0].Total))
	s.Equal("user_1", templates[0].UserID)
	s.Equal("proj_1", lo.FromPtr(templates[1].ProjectID))
}

func (s *RepositorySuite) TestUpdateRecurringInvoiceWithNoRowsIsNotFound() {
	repo := NewRecurringInvoiceRepository(s.db, logger.NewNoopLogger())

	s.mock.ExpectExec("UPDATE recurring_invoices SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(s.ctx, &recurringinvoice.RecurringInvoice{
		ID:              "rinv_gone",
		ClientID:        "cli_1",
		Name:            "Retainer",
		Frequency:       types.RecurringFrequencyMonthly,
		Status:          types.RecurringInvoiceStatusActive,
		Total:           decimal.NewFromInt(1000),
		NextInvoiceDate: s.now,
		BaseModel:       types.GetDefaultBaseModel(s.ctx),
	})
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))
	s.Equal("Recurring invoice not found", ierr.HintOf(err))
}

func (s *RepositorySuite) TestUpdateRecurringInvoiceKeepsCallerTimestamp() {
	repo := NewRecurringInvoiceRepository(s.db, logger.NewNoopLogger())
	anyArg := sqlmock.AnyArg()

	s.mock.ExpectExec(regexp.QuoteMeta("UPDATE recurring_invoices SET")).
		WithArgs(anyArg, anyArg, anyArg, anyArg, anyArg, anyArg, anyArg, anyArg, s.now, "rinv_1", "user_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	template := &recurringinvoice.RecurringInvoice{
		ID:              "rinv_1",
		ClientID:        "cli_1",
		Name:            "Retainer",
		Frequency:       types.RecurringFrequencyMonthly,
		Status:          types.RecurringInvoiceStatusActive,
		Total:           decimal.NewFromInt(1000),
		NextInvoiceDate: s.now.AddDate(0, 1, 0),
		BaseModel:       types.GetDefaultBaseModel(s.ctx),
	}
	template.UpdatedAt = s.now

	s.Require().NoError(repo.Update(s.ctx, template))
	s.Equal(s.now, template.UpdatedAt)
}

func (s *RepositorySuite) TestUpdateRecurringInvoiceStampsZeroTimestamp() {
	repo := NewRecurringInvoiceRepository(s.db, logger.NewNoopLogger())

	s.mock.ExpectExec(regexp.QuoteMeta("UPDATE recurring_invoices SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	template := &recurringinvoice.RecurringInvoice{
		ID:              "rinv_1",
		ClientID:        "cli_1",
		Name:            "Retainer",
		Frequency:       types.RecurringFrequencyMonthly,
		Status:          types.RecurringInvoiceStatusActive,
		NextInvoiceDate: s.now,
		BaseModel:       types.BaseModel{UserID: "user_1"},
	}

	s.Require().NoError(repo.Update(s.ctx, template))
	s.False(template.UpdatedAt.IsZero())
}

func (s *RepositorySuite) TestGetInvoiceMissingMapsToNotFound() {
	repo := NewInvoiceRepository(s.db, logger.NewNoopLogger())

	s.mock.ExpectQuery(regexp.QuoteMeta("FROM invoices WHERE id = $1 AND user_id = $2")).
		WithArgs("inv_missing", "user_1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(s.ctx, "inv_missing")
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))
	s.Equal("Invoice not found", ierr.HintOf(err))
}

func (s *RepositorySuite) TestCreateInvoiceDuplicateNumber() {
	repo := NewInvoiceRepository(s.db, logger.NewNoopLogger())

	s.mock.ExpectExec("INSERT INTO invoices").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "invoices_invoice_number_key"})

	err := repo.Create(s.ctx, &invoice.Invoice{
		ID:            "inv_1",
		ClientID:      "cli_1",
		InvoiceNumber: "REC-1710493200000-1",
		Status:        types.InvoiceStatusDraft,
		IssueDate:     s.now,
		Total:         decimal.NewFromInt(100),
		BaseModel:     types.GetDefaultBaseModel(s.ctx),
	})
	s.Require().Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *RepositorySuite) TestDriverFailureIsDatabaseError() {
	repo := NewInvoiceRepository(s.db, logger.NewNoopLogger())

	s.mock.ExpectQuery("FROM invoices").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Get(s.ctx, "inv_1")
	s.Require().Error(err)
	s.True(ierr.IsDatabase(err))
	s.False(ierr.IsNotFound(err))
}

func (s *RepositorySuite) TestLatestTimeEntryForTeamMember() {
	repo := NewTimeEntryRepository(s.db, logger.NewNoopLogger())
	in := s.now.Add(-2 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "team_member_id", "project_id", "clock_in_time", "clock_out_time",
		"clock_in_latitude", "clock_in_longitude", "clock_out_latitude", "clock_out_longitude", "is_geofenced",
		"duration_minutes", "hourly_rate", "total_cost", "approval_status", "approved_by", "notes",
		"created_at", "updated_at",
	}).AddRow("gte_1", "user_1", "tm_1", "proj_1", in, nil,
		"40.71280000", "-74.00600000", nil, nil, true,
		nil, nil, nil, "pending", nil, "", in, in)

	s.mock.ExpectQuery(regexp.QuoteMeta("ORDER BY clock_in_time DESC")).
		WithArgs("user_1", "tm_1").
		WillReturnRows(rows)

	entry, err := repo.GetLatestForTeamMember(s.ctx, "tm_1")
	s.Require().NoError(err)
	s.True(entry.IsOpen())
	s.False(entry.TotalCost.Valid)
	s.True(decimal.RequireFromString("40.7128").Equal(entry.ClockInLatitude))
}

func (s *RepositorySuite) TestLatestTimeEntryNoneIsNotFound() {
	repo := NewTimeEntryRepository(s.db, logger.NewNoopLogger())

	s.mock.ExpectQuery("FROM gps_time_entries").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetLatestForTeamMember(s.ctx, "tm_1")
	s.True(ierr.IsNotFound(err))
}

func (s *RepositorySuite) TestListInvoicesAppliesFiltersAndPaging() {
	repo := NewInvoiceRepository(s.db, logger.NewNoopLogger())

	filter := types.NewInvoiceFilter()
	filter.ClientID = "cli_1"
	filter.QueryFilter.Limit = lo.ToPtr(10)
	filter.QueryFilter.Offset = lo.ToPtr(20)

	s.mock.ExpectQuery(regexp.QuoteMeta("FROM invoices WHERE user_id = $1 AND client_id = $2 ORDER BY created_at DESC LIMIT 10 OFFSET 20")).
		WithArgs("user_1", "cli_1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	invoices, err := repo.List(s.ctx, filter)
	s.Require().NoError(err)
	s.Empty(invoices)
}

func (s *RepositorySuite) TestPortalTokenLookupIsUnscoped() {
	repo := NewPortalRepository(s.db, logger.NewNoopLogger())

	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE access_token = $1 AND is_active = true")).
		WithArgs("tok").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByToken(context.Background(), "tok")
	s.True(ierr.IsNotFound(err))
	s.Equal("Invalid or expired portal access", ierr.HintOf(err))
}
