package jobcost

import (
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

// JobCost is a single expense booked against a project
type JobCost struct {
	ID          string          `db:"id" json:"id"`
	ProjectID   string          `db:"project_id" json:"project_id"`
	Category    string          `db:"category" json:"category"`
	Description string          `db:"description" json:"description"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	CostDate    time.Time       `db:"cost_date" json:"cost_date"`
	types.BaseModel
}
