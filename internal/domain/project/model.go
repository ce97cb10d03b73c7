package project

import (
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

type Project struct {
	ID          string              `db:"id" json:"id"`
	ClientID    string              `db:"client_id" json:"client_id"`
	Name        string              `db:"name" json:"name"`
	Description string              `db:"description" json:"description"`
	Status      types.ProjectStatus `db:"status" json:"status"`
	StartDate   *time.Time          `db:"start_date" json:"start_date,omitempty"`
	EndDate     *time.Time          `db:"end_date" json:"end_date,omitempty"`
	Budget      decimal.Decimal     `db:"budget" json:"budget"`
	// Progress is a percentage between 0 and 100
	Progress int `db:"progress" json:"progress"`
	types.BaseModel
}
