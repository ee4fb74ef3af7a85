package model

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ReportInput {
	return ReportInput{
		Date:            "2024-06-01",
		Start:           "09:00",
		End:             "18:00",
		Location:        "リモート",
		TaskStatus:      "順調",
		Tasks:           "設計レビュー\n実装",
		NextDayLocation: "リモート",
	}
}

// =============================================================================
// DailyReport Tests
// =============================================================================

func TestNewDailyReport(t *testing.T) {
	rec, err := NewDailyReport(validInput())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^20240601-[0-9a-f]{8}$`), rec.ID)
	assert.Equal(t, "2024-06-01", rec.Date)
	assert.Equal(t, "9h00m", rec.WorkHours.Total)
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
	assert.NotEmpty(t, rec.CreatedAt)
	assert.Equal(t, "0h00m", rec.MonthlyTotalHours)
}

func TestNewDailyReportBadTimes(t *testing.T) {
	input := validInput()
	input.Start = "25:00"
	_, err := NewDailyReport(input)
	assert.Error(t, err)
}

func TestSetWorkHours(t *testing.T) {
	rec, err := NewDailyReport(validInput())
	require.NoError(t, err)

	require.NoError(t, rec.SetWorkHours("09:30", "17:30"))
	assert.Equal(t, "09:30", rec.WorkHours.Start)
	assert.Equal(t, "8h00m", rec.WorkHours.Total)

	t.Run("overnight", func(t *testing.T) {
		require.NoError(t, rec.SetWorkHours("23:30", "00:30"))
		assert.Equal(t, "1h00m", rec.WorkHours.Total)
	})

	t.Run("invalid_keeps_previous", func(t *testing.T) {
		before := rec.WorkHours
		assert.Error(t, rec.SetWorkHours("9:30", "17:30"))
		assert.Equal(t, before, rec.WorkHours)
	})
}

func TestTaskLines(t *testing.T) {
	rec := &DailyReport{Tasks: "one\n\n  two  \nthree\n"}
	assert.Equal(t, []string{"one", "two", "three"}, rec.TaskLines())

	empty := &DailyReport{Tasks: ""}
	assert.Empty(t, empty.TaskLines())
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestValidateInput(t *testing.T) {
	assert.NoError(t, ValidateInput(validInput()))

	tests := []struct {
		name   string
		mutate func(*ReportInput)
	}{
		{"missing_date", func(i *ReportInput) { i.Date = "" }},
		{"bad_date", func(i *ReportInput) { i.Date = "2024/06/01" }},
		{"missing_start", func(i *ReportInput) { i.Start = "" }},
		{"bad_start", func(i *ReportInput) { i.Start = "9:00" }},
		{"missing_end", func(i *ReportInput) { i.End = "" }},
		{"bad_end", func(i *ReportInput) { i.End = "24:00" }},
		{"missing_location", func(i *ReportInput) { i.Location = "" }},
		{"missing_status", func(i *ReportInput) { i.TaskStatus = "" }},
		{"missing_tasks", func(i *ReportInput) { i.Tasks = "" }},
		{"missing_next_day", func(i *ReportInput) { i.NextDayLocation = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			err := ValidateInput(input)
			require.Error(t, err)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestValidateInputNotesOptional(t *testing.T) {
	input := validInput()
	input.Notes = ""
	assert.NoError(t, ValidateInput(input))
}

// =============================================================================
// Template Tests
// =============================================================================

func TestNewTemplate(t *testing.T) {
	tmpl := NewTemplate("monthly", "report", "{{month}}", true)
	assert.Regexp(t, regexp.MustCompile(`^tmpl-[0-9a-f]{8}$`), tmpl.ID)
	assert.Equal(t, "monthly", tmpl.Name)
	assert.True(t, tmpl.IsDefault)
}

func TestValidateTemplate(t *testing.T) {
	assert.Error(t, ValidateTemplate(&Template{}))
	assert.NoError(t, ValidateTemplate(&Template{Name: "x"}))
}

// =============================================================================
// Document Tests
// =============================================================================

func TestDefaultDocument(t *testing.T) {
	doc := DefaultDocument()
	assert.Empty(t, doc.Reports)
	assert.Equal(t, DefaultLocation, doc.Settings.DefaultLocation)
	assert.Equal(t, DefaultWorkStart, doc.Settings.DefaultWorkHours.Start)
	assert.Equal(t, DefaultWorkEnd, doc.Settings.DefaultWorkHours.End)
	assert.Equal(t, DefaultModel, doc.Settings.API.Model)
	assert.Empty(t, doc.Settings.Templates)
}
