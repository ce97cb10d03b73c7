package auth

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/config"
)

// TokenTTL is how long an issued session token stays valid
const TokenTTL = 30 * 24 * time.Hour

type Claims struct {
	UserID string
	Email  string
}

type Provider interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
	GenerateToken(userID, email string) (string, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
	ValidateAPIKey(key string) (*Claims, bool)
}

func NewProvider(cfg *config.Configuration) Provider {
	return NewJWTAuth(cfg)
}
