// Package model defines the domain models for nippou.
package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"nippou/internal/timeutil"
)

// WorkHours holds the clock times of a working day. Total is derived from
// Start and End through timeutil and must never be set independently.
type WorkHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Total string `json:"total"`
}

// DailyReport represents one day's work report.
type DailyReport struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	WorkHours  WorkHours `json:"workHours"`
	Location   string    `json:"location"`
	TaskStatus string    `json:"taskStatus"`

	Tasks string `json:"tasks"`

	NextDayLocation   string `json:"nextDayLocation"`
	MonthlyTotalHours string `json:"monthlyTotalHours"`
	Notes             string `json:"notes"`
}

// ReportInput holds the fields required to create a report.
type ReportInput struct {
	Date            string
	Start           string
	End             string
	Location        string
	TaskStatus      string
	Tasks           string
	NextDayLocation string
	Notes           string
}

// NewReportID generates a report identifier from the report date and a
// random suffix, e.g. "20240601-3f2a9c1b".
func NewReportID(date string) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s-%s", strings.ReplaceAll(date, "-", ""), suffix)
}

// NewDailyReport builds a report from validated input, deriving the work-hours
// total and setting creation timestamps.
func NewDailyReport(input ReportInput) (*DailyReport, error) {
	minutes, err := timeutil.ElapsedMinutes(input.Start, input.End)
	if err != nil {
		return nil, err
	}

	now := timeutil.Timestamp()
	return &DailyReport{
		ID:        NewReportID(input.Date),
		Date:      input.Date,
		CreatedAt: now,
		UpdatedAt: now,
		WorkHours: WorkHours{
			Start: input.Start,
			End:   input.End,
			Total: timeutil.FormatDuration(minutes),
		},
		Location:          input.Location,
		TaskStatus:        input.TaskStatus,
		Tasks:             input.Tasks,
		NextDayLocation:   input.NextDayLocation,
		MonthlyTotalHours: "0h00m",
		Notes:             input.Notes,
	}, nil
}

// SetWorkHours updates the clock times and re-derives the total. This is the
// only way work hours may change after creation.
func (r *DailyReport) SetWorkHours(start, end string) error {
	minutes, err := timeutil.ElapsedMinutes(start, end)
	if err != nil {
		return err
	}
	r.WorkHours = WorkHours{
		Start: start,
		End:   end,
		Total: timeutil.FormatDuration(minutes),
	}
	return nil
}

// Touch refreshes the updatedAt timestamp.
func (r *DailyReport) Touch() {
	r.UpdatedAt = timeutil.Timestamp()
}

// TaskLines splits the free-text tasks field into trimmed, non-empty lines.
func (r *DailyReport) TaskLines() []string {
	var lines []string
	for _, line := range strings.Split(r.Tasks, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
