// Package timeutil provides the time and date arithmetic for daily reports:
// HH:MM clock math, XhYYm duration formatting, and calendar-month ranges.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"nippou/internal/errors"
)

const (
	// DateLayout is the canonical date format for report dates.
	DateLayout = "2006-01-02"
	// MonthLayout is the canonical format for report months.
	MonthLayout = "2006-01"
	// TimeLayout is the canonical clock-time format for work hours.
	TimeLayout = "15:04"
	// TimestampLayout is the format for createdAt/updatedAt fields.
	TimestampLayout = "2006-01-02 15:04:05"
)

const minutesPerDay = 24 * 60

var (
	timePattern  = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ValidTime reports whether s is a valid HH:MM clock time.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidMonth reports whether s is a well-formed YYYY-MM month.
func ValidMonth(s string) bool {
	if !monthPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

// minuteOfDay converts an HH:MM string to minutes since midnight.
func minuteOfDay(s string) (int, error) {
	if !ValidTime(s) {
		return 0, errors.Wrapf(errors.ErrInvalidTime, "%q", s)
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return h*60 + m, nil
}

// ElapsedMinutes returns the number of minutes between two HH:MM clock times.
// An end time earlier than the start time is treated as crossing midnight
// once, never more than one day.
func ElapsedMinutes(start, end string) (int, error) {
	s, err := minuteOfDay(start)
	if err != nil {
		return 0, err
	}
	e, err := minuteOfDay(end)
	if err != nil {
		return 0, err
	}
	diff := e - s
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff, nil
}

// FormatDuration renders a minute count as "XhYYm", e.g. 540 -> "9h00m".
// Integer division only, no rounding.
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

// ParseDuration converts an "XhYYm" string back to minutes. It is the inverse
// of FormatDuration and is used for display caches only, never to compute
// totals from start/end times.
func ParseDuration(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%dh%dm", &h, &m); err != nil {
		return 0, errors.Wrapf(err, "parse duration %q", s)
	}
	return h*60 + m, nil
}

// MonthRange returns the first and last calendar day of a YYYY-MM month
// as YYYY-MM-DD strings.
func MonthRange(yearMonth string) (string, string, error) {
	first, err := time.Parse(MonthLayout, yearMonth)
	if err != nil {
		return "", "", errors.Wrapf(errors.ErrInvalidMonth, "%q", yearMonth)
	}
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout), nil
}

// CurrentDate returns today's date as YYYY-MM-DD.
func CurrentDate() string {
	return time.Now().Format(DateLayout)
}

// CurrentTime returns the current clock time as HH:MM.
func CurrentTime() string {
	return time.Now().Format(TimeLayout)
}

// Timestamp returns the current time in the createdAt/updatedAt format.
func Timestamp() string {
	return time.Now().Format(TimestampLayout)
}

// CurrentMonth returns the current month as YYYY-MM.
func CurrentMonth() string {
	return time.Now().Format(MonthLayout)
}

// PreviousMonth returns the month before the current one as YYYY-MM.
func PreviousMonth() string {
	return time.Now().AddDate(0, -1, 0).Format(MonthLayout)
}
