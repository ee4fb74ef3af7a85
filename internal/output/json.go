package output

// JSONFormatter provides JSON-specific output.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// PrintResult prints a generic success payload.
func (j *JSONFormatter) PrintResult(v interface{}) error {
	return j.JSON(v)
}

// PrintError prints an error payload.
func (j *JSONFormatter) PrintError(code, message, suggestion string) error {
	payload := map[string]string{
		"error":   code,
		"message": message,
	}
	if suggestion != "" {
		payload["suggestion"] = suggestion
	}
	return j.JSON(payload)
}
