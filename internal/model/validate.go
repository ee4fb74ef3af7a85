package model

import (
	"nippou/internal/errors"
	"nippou/internal/timeutil"
)

// ValidateInput checks a report input for missing required fields and
// malformed date/time strings. It returns a UserError describing the first
// problem found, or nil if the input is well-formed.
func ValidateInput(input ReportInput) error {
	switch {
	case input.Date == "":
		return errors.NewUserErrorWithField("date", input.Date,
			"Date is required", "Provide a date in YYYY-MM-DD format")
	case !timeutil.ValidDate(input.Date):
		return errors.NewUserErrorWithField("date", input.Date,
			"Invalid date format", "Use YYYY-MM-DD, e.g. 2024-06-01")
	case input.Start == "":
		return errors.NewUserErrorWithField("start", input.Start,
			"Start time is required", "Provide a start time in HH:MM format")
	case !timeutil.ValidTime(input.Start):
		return errors.NewUserErrorWithField("start", input.Start,
			"Invalid start time", "Use HH:MM, e.g. 09:30")
	case input.End == "":
		return errors.NewUserErrorWithField("end", input.End,
			"End time is required", "Provide an end time in HH:MM format")
	case !timeutil.ValidTime(input.End):
		return errors.NewUserErrorWithField("end", input.End,
			"Invalid end time", "Use HH:MM, e.g. 18:30")
	case input.Location == "":
		return errors.NewUserError("Work location is required",
			"Provide a location, e.g. リモート")
	case input.TaskStatus == "":
		return errors.NewUserError("Task status is required",
			"Provide a status, e.g. 順調")
	case input.Tasks == "":
		return errors.NewUserError("Tasks are required",
			"Describe what you worked on, one task per line")
	case input.NextDayLocation == "":
		return errors.NewUserError("Next-day location is required",
			"Provide tomorrow's work location")
	}
	return nil
}

// ValidateTemplate checks a template for a usable name.
func ValidateTemplate(t *Template) error {
	if t.Name == "" {
		return errors.NewUserError("Template name is required",
			"Provide a non-empty template name")
	}
	return nil
}
