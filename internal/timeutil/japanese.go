package timeutil

import "time"

// Weekday names in Japanese, indexed by time.Weekday.
var weekdaysJP = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// FormatDateJP renders a YYYY-MM-DD date as "YYYY年MM月DD日".
// Malformed input is returned unchanged.
func FormatDateJP(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("2006年01月02日")
}

// FormatMonthJP renders a YYYY-MM month as "YYYY年MM月".
// Malformed input is returned unchanged.
func FormatMonthJP(yearMonth string) string {
	t, err := time.Parse(MonthLayout, yearMonth)
	if err != nil {
		return yearMonth
	}
	return t.Format("2006年01月")
}

// DayOfWeekJP returns the Japanese single-character weekday for a date,
// or an empty string for malformed input.
func DayOfWeekJP(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return weekdaysJP[t.Weekday()]
}
