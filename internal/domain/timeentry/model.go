package timeentry

import (
	"math"
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

// Entry is a GPS stamped clock-in/clock-out record. It is open until ClockOutTime
// is set and then closed for good; duration, rate and cost stay empty while open.
type Entry struct {
	ID                string               `db:"id" json:"id"`
	TeamMemberID      string               `db:"team_member_id" json:"team_member_id"`
	ProjectID         string               `db:"project_id" json:"project_id"`
	ClockInTime       time.Time            `db:"clock_in_time" json:"clock_in_time"`
	ClockOutTime      *time.Time           `db:"clock_out_time" json:"clock_out_time,omitempty"`
	ClockInLatitude   decimal.Decimal      `db:"clock_in_latitude" json:"clock_in_latitude"`
	ClockInLongitude  decimal.Decimal      `db:"clock_in_longitude" json:"clock_in_longitude"`
	ClockOutLatitude  decimal.NullDecimal  `db:"clock_out_latitude" json:"clock_out_latitude"`
	ClockOutLongitude decimal.NullDecimal  `db:"clock_out_longitude" json:"clock_out_longitude"`
	IsGeofenced       bool                 `db:"is_geofenced" json:"is_geofenced"`
	DurationMinutes   *int                 `db:"duration_minutes" json:"duration_minutes,omitempty"`
	HourlyRate        decimal.NullDecimal  `db:"hourly_rate" json:"hourly_rate"`
	TotalCost         decimal.NullDecimal  `db:"total_cost" json:"total_cost"`
	ApprovalStatus    types.ApprovalStatus `db:"approval_status" json:"approval_status"`
	ApprovedBy        *string              `db:"approved_by" json:"approved_by,omitempty"`
	Notes             string               `db:"notes" json:"notes"`
	types.BaseModel
}

func (e *Entry) IsOpen() bool {
	return e.ClockOutTime == nil
}

// Close stamps the clock-out and computes duration and cost at the given hourly rate.
func (e *Entry) Close(out time.Time, latitude, longitude decimal.Decimal, rate decimal.Decimal) {
	minutes, cost := CalculateLaborCost(e.ClockInTime, out, rate)

	e.ClockOutTime = &out
	e.ClockOutLatitude = decimal.NewNullDecimal(latitude)
	e.ClockOutLongitude = decimal.NewNullDecimal(longitude)
	e.DurationMinutes = &minutes
	e.HourlyRate = decimal.NewNullDecimal(rate)
	e.TotalCost = decimal.NewNullDecimal(cost)
}

// CalculateLaborCost returns the elapsed minutes, rounded half up, and
// minutes / 60 * rate rounded to cents.
func CalculateLaborCost(clockIn, clockOut time.Time, rate decimal.Decimal) (int, decimal.Decimal) {
	minutes := int(math.Floor(clockOut.Sub(clockIn).Minutes() + 0.5))
	cost := decimal.NewFromInt(int64(minutes)).
		Mul(rate).
		Div(decimal.NewFromInt(60)).
		Round(2)
	return minutes, cost
}
