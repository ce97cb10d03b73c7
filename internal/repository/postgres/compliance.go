package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/compliance"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type complianceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewComplianceRepository(db *postgres.DB, logger *logger.Logger) compliance.Repository {
	return &complianceRepository{db: db, logger: logger}
}

const complianceColumns = `id, user_id, team_member_id, document_type, document_name, file_url,
	issue_date, expiry_date, status, verification_status, notes, created_at, updated_at`

var complianceSortColumns = map[string]string{
	"created_at":  "created_at",
	"expiry_date": "expiry_date",
}

func (r *complianceRepository) Create(ctx context.Context, d *compliance.Document) error {
	query := `
	INSERT INTO compliance_documents (` + complianceColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		d.ID, d.UserID, d.TeamMemberID, d.DocumentType, d.DocumentName, d.FileURL, d.IssueDate,
		d.ExpiryDate, d.Status, d.VerificationStatus, d.Notes, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert compliance document")
	}
	return nil
}

func (r *complianceRepository) Get(ctx context.Context, id string) (*compliance.Document, error) {
	var d compliance.Document
	query := `SELECT ` + complianceColumns + ` FROM compliance_documents WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &d, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Compliance document not found", "get compliance document")
	}
	return &d, nil
}

func (r *complianceRepository) List(ctx context.Context, filter *types.ComplianceDocumentFilter) ([]*compliance.Document, error) {
	if filter == nil {
		filter = types.NewComplianceDocumentFilter()
	}
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.TeamMemberID != "" {
		w.and("team_member_id = ?", filter.TeamMemberID)
	}
	if filter.ExpiringBefore != nil {
		w.and("status = ?", types.DocumentStatusValid).
			and("expiry_date IS NOT NULL").
			and("expiry_date <= ?", *filter.ExpiringBefore)
	}
	query := r.db.Rebind(`SELECT ` + complianceColumns + ` FROM compliance_documents` + w.String() +
		orderAndPage(filter, complianceSortColumns, "created_at"))

	var docs []*compliance.Document
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &docs, query, w.args...); err != nil {
		return nil, dbError(err, "list compliance documents")
	}
	return docs, nil
}

func (r *complianceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM compliance_documents WHERE id = $1 AND user_id = $2`, id, types.GetUserID(ctx))
	if err != nil {
		return dbError(err, "delete compliance document")
	}
	return expectOneRow(result, "Compliance document not found", "delete compliance document")
}
