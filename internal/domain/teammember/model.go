package teammember

import (
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

type TeamMember struct {
	ID         string               `db:"id" json:"id"`
	Name       string               `db:"name" json:"name"`
	Email      string               `db:"email" json:"email"`
	Phone      string               `db:"phone" json:"phone"`
	Role       types.TeamMemberRole `db:"role" json:"role"`
	HourlyRate decimal.Decimal      `db:"hourly_rate" json:"hourly_rate"`
	types.BaseModel
}
