package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// notFoundOr maps sql.ErrNoRows to ErrNotFound with the given hint and every other
// driver error to ErrDatabase.
func notFoundOr(err error, hint string, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ierr.WithError(err).
			WithMessage(op).
			WithHint(hint).
			Mark(ierr.ErrNotFound)
	}
	return dbError(err, op)
}

func dbError(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ierr.WithError(err).
			WithMessage(op).
			WithHint("A record with these details already exists").
			WithReportableDetails(map[string]any{
				"constraint": pqErr.Constraint,
			}).
			Mark(ierr.ErrAlreadyExists)
	}
	return ierr.WithError(err).
		WithMessage(op).
		WithHint("Database not available").
		Mark(ierr.ErrDatabase)
}

// expectOneRow turns a zero row update or delete into ErrNotFound
func expectOneRow(result sql.Result, hint string, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return dbError(err, op)
	}
	if rows == 0 {
		return ierr.NewError(op + ": no rows affected").
			WithHint(hint).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

// where accumulates AND-ed conditions using ? placeholders; callers Rebind the final query
type where struct {
	conds []string
	args  []interface{}
}

func newWhere(cond string, args ...interface{}) *where {
	return &where{conds: []string{cond}, args: args}
}

func (w *where) and(cond string, args ...interface{}) *where {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
	return w
}

func (w *where) String() string {
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// orderAndPage renders ORDER BY and LIMIT/OFFSET from a filter. Sort columns are
// looked up in allowed so request input never reaches the SQL text.
func orderAndPage(filter types.BaseFilter, allowed map[string]string, fallback string) string {
	column := fallback
	order := "DESC"
	if filter != nil {
		if c, ok := allowed[filter.GetSort()]; ok {
			column = c
		}
		if strings.EqualFold(filter.GetOrder(), "asc") {
			order = "ASC"
		}
	}

	clause := fmt.Sprintf(" ORDER BY %s %s", column, order)
	if filter != nil && !filter.IsUnlimited() {
		clause += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.GetLimit(), filter.GetOffset())
	}
	return clause
}

// stampUpdated defaults an unset UpdatedAt to now; a caller-set value is kept
func stampUpdated(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC()
	}
}
