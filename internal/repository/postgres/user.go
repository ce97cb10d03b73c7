package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/user"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
)

type userRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return &userRepository{db: db, logger: logger}
}

const userColumns = `id, email, name, password_hash, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	query := `
	INSERT INTO users (` + userColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert user")
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &u, query, id); err != nil {
		return nil, notFoundOr(err, "User not found", "get user")
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &u, query, email); err != nil {
		return nil, notFoundOr(err, "User not found", "get user by email")
	}
	return &u, nil
}
