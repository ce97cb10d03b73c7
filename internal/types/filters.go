package types

import (
	"time"

	ierr "github.com/contractorpro/contractorpro/internal/errors"
)

// TimeRangeFilter bounds a list on the entity's primary timestamp
type TimeRangeFilter struct {
	StartTime *time.Time `json:"start_time,omitempty" form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime   *time.Time `json:"end_time,omitempty" form:"end_time" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (f *TimeRangeFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.StartTime != nil && f.EndTime != nil && f.EndTime.Before(*f.StartTime) {
		return ierr.NewError("end time must be after start time").
			WithHint("End date must not be before start date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Contains reports whether t falls inside the range, bounds inclusive
func (f *TimeRangeFilter) Contains(t time.Time) bool {
	if f == nil {
		return true
	}
	if f.StartTime != nil && t.Before(*f.StartTime) {
		return false
	}
	if f.EndTime != nil && t.After(*f.EndTime) {
		return false
	}
	return true
}

type ClientFilter struct {
	*QueryFilter
	Search string `json:"search,omitempty" form:"search"`
}

func NewClientFilter() *ClientFilter {
	return &ClientFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *ClientFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	return f.QueryFilter.Validate()
}

type ProjectFilter struct {
	*QueryFilter
	ClientID string         `json:"client_id,omitempty" form:"client_id"`
	Status   *ProjectStatus `json:"status,omitempty" form:"status"`
}

func NewProjectFilter() *ProjectFilter {
	return &ProjectFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *ProjectFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	return f.QueryFilter.Validate()
}

type InvoiceFilter struct {
	*QueryFilter
	ClientID  string         `json:"client_id,omitempty" form:"client_id"`
	ProjectID string         `json:"project_id,omitempty" form:"project_id"`
	Status    *InvoiceStatus `json:"status,omitempty" form:"status"`
}

func NewInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *InvoiceFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	return f.QueryFilter.Validate()
}

type RecurringInvoiceFilter struct {
	*QueryFilter
	Status *RecurringInvoiceStatus `json:"status,omitempty" form:"status"`
}

func NewRecurringInvoiceFilter() *RecurringInvoiceFilter {
	return &RecurringInvoiceFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *RecurringInvoiceFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	return f.QueryFilter.Validate()
}

type TeamMemberFilter struct {
	*QueryFilter
	Role *TeamMemberRole `json:"role,omitempty" form:"role"`
}

func NewTeamMemberFilter() *TeamMemberFilter {
	return &TeamMemberFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *TeamMemberFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	return f.QueryFilter.Validate()
}

// TimeEntryFilter lists GPS time entries, newest clock-in first
type TimeEntryFilter struct {
	*QueryFilter
	*TimeRangeFilter
	TeamMemberID   string          `json:"team_member_id,omitempty" form:"team_member_id"`
	ProjectID      string          `json:"project_id,omitempty" form:"project_id"`
	ApprovalStatus *ApprovalStatus `json:"approval_status,omitempty" form:"approval_status"`
}

func NewTimeEntryFilter() *TimeEntryFilter {
	return &TimeEntryFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *TimeEntryFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	if err := f.TimeRangeFilter.Validate(); err != nil {
		return err
	}
	return f.QueryFilter.Validate()
}

type JobCostFilter struct {
	*QueryFilter
	ProjectID string `json:"project_id,omitempty" form:"project_id"`
	Category  string `json:"category,omitempty" form:"category"`
}

func NewJobCostFilter() *JobCostFilter {
	return &JobCostFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *JobCostFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	return f.QueryFilter.Validate()
}

type InventoryFilter struct {
	*QueryFilter
	ProjectID string           `json:"project_id,omitempty" form:"project_id"`
	Status    *InventoryStatus `json:"status,omitempty" form:"status"`
}

func NewInventoryFilter() *InventoryFilter {
	return &InventoryFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *InventoryFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	return f.QueryFilter.Validate()
}

type CarbonRecordFilter struct {
	*QueryFilter
	ProjectID string `json:"project_id,omitempty" form:"project_id"`
}

func NewCarbonRecordFilter() *CarbonRecordFilter {
	return &CarbonRecordFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *CarbonRecordFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	return f.QueryFilter.Validate()
}

type ComplianceDocumentFilter struct {
	*QueryFilter
	TeamMemberID string `json:"team_member_id,omitempty" form:"team_member_id"`
	// ExpiringBefore keeps valid documents whose expiry date is on or before the given time
	ExpiringBefore *time.Time `json:"-" form:"-"`
}

func NewComplianceDocumentFilter() *ComplianceDocumentFilter {
	return &ComplianceDocumentFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *ComplianceDocumentFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	return f.QueryFilter.Validate()
}

type PortalAccessFilter struct {
	*QueryFilter
	ClientID  string `json:"client_id,omitempty" form:"client_id"`
	ProjectID string `json:"project_id,omitempty" form:"project_id"`
}

func NewPortalAccessFilter() *PortalAccessFilter {
	return &PortalAccessFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *PortalAccessFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	return f.QueryFilter.Validate()
}

type PaymentFilter struct {
	*QueryFilter
	InvoiceIDs    []string       `json:"invoice_ids,omitempty" form:"invoice_ids"`
	Status        *PaymentStatus `json:"status,omitempty" form:"status"`
	TransactionID string         `json:"transaction_id,omitempty" form:"transaction_id"`
}

func NewPaymentFilter() *PaymentFilter {
	return &PaymentFilter{QueryFilter: NoLimitQueryFilter()}
}

func (f *PaymentFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NoLimitQueryFilter()
	}
	return f.QueryFilter.Validate()
}
