package errors

import "errors"

// Suggestion returns a human-readable hint for fixing the given error,
// or an empty string if no suggestion applies.
func Suggestion(err error) string {
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	switch {
	case errors.Is(err, ErrInvalidDate):
		return "Use the YYYY-MM-DD format, e.g. 2024-06-01"
	case errors.Is(err, ErrInvalidTime):
		return "Use the HH:MM format, e.g. 09:30"
	case errors.Is(err, ErrInvalidMonth):
		return "Use the YYYY-MM format, e.g. 2024-06"
	case errors.Is(err, ErrReportExists):
		return "Pass --force to replace the existing report, or use 'nippou edit'"
	case errors.Is(err, ErrNoReports):
		return "Create reports with 'nippou create' before generating"
	case errors.Is(err, ErrAPIKeyMissing):
		return "Set a key with 'nippou config set-api-key' or the OPENAI_API_KEY variable"
	case errors.Is(err, ErrTemplateNotFound):
		return "List known templates with 'nippou template list'"
	case errors.Is(err, ErrStoreUninitialized):
		return "Check that the data file path is readable and writable"
	}
	return ""
}
