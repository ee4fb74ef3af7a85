// Package report implements the monthly aggregation and the two-stage
// report rendering pipeline: a deterministic markdown rendering, optionally
// rewritten through an external text-generation capability with a guaranteed
// fallback to the deterministic output.
package report

import (
	"nippou/internal/errors"
	"nippou/internal/model"
	"nippou/internal/storage"
	"nippou/internal/timeutil"
)

// TotalMinutes sums the worked minutes across the given reports. Minutes are
// re-derived from each report's stored start/end times, never from the cached
// total string, so a stale cache cannot compound into the monthly figure.
func TotalMinutes(reports []model.DailyReport) (int, error) {
	total := 0
	for _, r := range reports {
		minutes, err := timeutil.ElapsedMinutes(r.WorkHours.Start, r.WorkHours.End)
		if err != nil {
			return 0, errors.Wrapf(err, "report %s", r.ID)
		}
		total += minutes
	}
	return total, nil
}

// MonthlyTotal formats the summed worked minutes as an XhYYm string.
func MonthlyTotal(reports []model.DailyReport) (string, error) {
	minutes, err := TotalMinutes(reports)
	if err != nil {
		return "", err
	}
	return timeutil.FormatDuration(minutes), nil
}

// ReportsForMonth returns the stored reports for a YYYY-MM month, in
// insertion order.
func ReportsForMonth(s *storage.Store, yearMonth string) ([]model.DailyReport, error) {
	start, end, err := timeutil.MonthRange(yearMonth)
	if err != nil {
		return nil, err
	}
	return s.ListByDateRange(start, end)
}

// RefreshMonthlyTotals recomputes the monthlyTotalHours display cache on
// every report of the given month and persists the refreshed records. It
// returns the updated reports and the month's total as an XhYYm string.
func RefreshMonthlyTotals(s *storage.Store, yearMonth string) ([]model.DailyReport, string, error) {
	reports, err := ReportsForMonth(s, yearMonth)
	if err != nil {
		return nil, "", err
	}

	minutes, err := TotalMinutes(reports)
	if err != nil {
		return nil, "", err
	}
	total := timeutil.FormatDuration(minutes)

	for i := range reports {
		// The cache compares by value, so an equivalent but differently
		// formatted string does not force a rewrite.
		cached, err := timeutil.ParseDuration(reports[i].MonthlyTotalHours)
		if err == nil && cached == minutes {
			continue
		}
		reports[i].MonthlyTotalHours = total
		if err := s.Upsert(&reports[i]); err != nil {
			return nil, "", err
		}
	}
	return reports, total, nil
}
