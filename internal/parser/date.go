// Package parser turns command-line date and month expressions into the
// canonical YYYY-MM-DD / YYYY-MM strings the rest of the system uses.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"nippou/internal/errors"
	"nippou/internal/timeutil"
)

// ParseDate resolves a date expression to YYYY-MM-DD. Canonical dates pass
// through unchanged; everything else goes through natural-language parsing
// ("today", "yesterday", "last friday").
func ParseDate(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") {
		return timeutil.CurrentDate(), nil
	}
	if timeutil.ValidDate(input) {
		return input, nil
	}

	cfg := &dateparser.Configuration{CurrentTime: time.Now()}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidDate, "%q", input)
	}
	return result.Time.Format(timeutil.DateLayout), nil
}

// ParseMonth resolves a month expression to YYYY-MM. Canonical months pass
// through; "this month" and "last month" are handled directly; other
// expressions resolve through natural-language parsing and take the month
// of the resulting date.
func ParseMonth(input string) (string, error) {
	input = strings.TrimSpace(input)
	switch {
	case input == "" || strings.EqualFold(input, "last month"):
		return timeutil.PreviousMonth(), nil
	case strings.EqualFold(input, "this month"):
		return timeutil.CurrentMonth(), nil
	case timeutil.ValidMonth(input):
		return input, nil
	}

	cfg := &dateparser.Configuration{CurrentTime: time.Now()}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidMonth, "%q", input)
	}
	return result.Time.Format(timeutil.MonthLayout), nil
}

// ParseTime validates an HH:MM clock time, passing it through unchanged.
func ParseTime(input string) (string, error) {
	input = strings.TrimSpace(input)
	if !timeutil.ValidTime(input) {
		return "", errors.Wrapf(errors.ErrInvalidTime, "%q", input)
	}
	return input, nil
}
