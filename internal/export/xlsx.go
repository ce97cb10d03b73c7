package export

import (
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/jobcost"
	"github.com/contractorpro/contractorpro/internal/domain/timeentry"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetTimeEntries = "Time Entries"
	SheetJobCosts    = "Job Costs"
)

// Column maps one spreadsheet column to a value read from a row
type Column[T any] struct {
	Header string
	Value  func(T) any
}

// Workbook renders rows into a single sheet with a header row and returns the xlsx bytes
func Workbook[T any](sheet string, columns []Column[T], rows []T) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, workbookError(err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c.Header
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, workbookError(err)
	}

	for i, row := range rows {
		values := make([]any, len(columns))
		for j, c := range columns {
			values[j] = c.Value(row)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, workbookError(err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, workbookError(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, workbookError(err)
	}
	return buf.Bytes(), nil
}

func TimeEntries(entries []*timeentry.Entry) ([]byte, error) {
	return Workbook(SheetTimeEntries, []Column[*timeentry.Entry]{
		{Header: "Entry ID", Value: func(e *timeentry.Entry) any { return e.ID }},
		{Header: "Team Member", Value: func(e *timeentry.Entry) any { return e.TeamMemberID }},
		{Header: "Project", Value: func(e *timeentry.Entry) any { return e.ProjectID }},
		{Header: "Clock In", Value: func(e *timeentry.Entry) any { return formatTime(&e.ClockInTime) }},
		{Header: "Clock Out", Value: func(e *timeentry.Entry) any { return formatTime(e.ClockOutTime) }},
		{Header: "Minutes", Value: func(e *timeentry.Entry) any {
			if e.DurationMinutes == nil {
				return ""
			}
			return *e.DurationMinutes
		}},
		{Header: "Hourly Rate", Value: func(e *timeentry.Entry) any {
			if !e.HourlyRate.Valid {
				return ""
			}
			return e.HourlyRate.Decimal.StringFixed(2)
		}},
		{Header: "Total Cost", Value: func(e *timeentry.Entry) any {
			if !e.TotalCost.Valid {
				return ""
			}
			return e.TotalCost.Decimal.StringFixed(2)
		}},
		{Header: "Approval", Value: func(e *timeentry.Entry) any { return string(e.ApprovalStatus) }},
		{Header: "Notes", Value: func(e *timeentry.Entry) any { return e.Notes }},
	}, entries)
}

func JobCosts(costs []*jobcost.JobCost) ([]byte, error) {
	return Workbook(SheetJobCosts, []Column[*jobcost.JobCost]{
		{Header: "Cost ID", Value: func(c *jobcost.JobCost) any { return c.ID }},
		{Header: "Project", Value: func(c *jobcost.JobCost) any { return c.ProjectID }},
		{Header: "Category", Value: func(c *jobcost.JobCost) any { return c.Category }},
		{Header: "Description", Value: func(c *jobcost.JobCost) any { return c.Description }},
		{Header: "Amount", Value: func(c *jobcost.JobCost) any { return c.Amount.StringFixed(2) }},
		{Header: "Date", Value: func(c *jobcost.JobCost) any { return c.CostDate.Format(time.DateOnly) }},
	}, costs)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func workbookError(err error) error {
	return ierr.WithError(err).
		WithHint("Failed to build export").
		Mark(ierr.ErrSystem)
}
