package types

import (
	"context"
	"time"
)

// BaseModel carries the owner and audit timestamps shared by every persisted entity.
// Any changes here need a matching migration.
type BaseModel struct {
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		UserID:    GetUserID(ctx),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
