package report

import (
	"fmt"
	"sort"
	"strings"

	"nippou/internal/errors"
	"nippou/internal/model"
	"nippou/internal/timeutil"
)

// Placeholders recognized in template content. Anything else in a template
// is left untouched; this is deliberately not a general template engine.
const (
	PlaceholderMonth      = "{{month}}"
	PlaceholderTotalDays  = "{{total_days}}"
	PlaceholderTotalHours = "{{total_hours}}"
)

// sortByDate returns the reports sorted ascending by date. The sort is
// stable, so reports sharing a date keep their relative store order.
func sortByDate(reports []model.DailyReport) []model.DailyReport {
	sorted := make([]model.DailyReport, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// targetMonth derives the "YYYY年MM月" label from the earliest report date.
func targetMonth(sorted []model.DailyReport) string {
	return timeutil.FormatMonthJP(sorted[0].Date[:len(timeutil.MonthLayout)])
}

// RenderBasic produces the deterministic monthly report. With a non-empty
// template the recognized placeholders are substituted and the result is
// returned verbatim; otherwise a fixed markdown layout is emitted.
// An empty report set is a caller contract violation.
func RenderBasic(reports []model.DailyReport, template string) (string, error) {
	if len(reports) == 0 {
		return "", errors.ErrNoReports
	}

	sorted := sortByDate(reports)
	month := targetMonth(sorted)

	total, err := MonthlyTotal(sorted)
	if err != nil {
		return "", err
	}

	if template != "" {
		out := strings.ReplaceAll(template, PlaceholderMonth, month)
		out = strings.ReplaceAll(out, PlaceholderTotalDays, fmt.Sprintf("%d", len(sorted)))
		out = strings.ReplaceAll(out, PlaceholderTotalHours, total)
		return out, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %sの業務報告\n\n", month)
	b.WriteString("## 業務サマリー\n")
	fmt.Fprintf(&b, "- 勤務日数: %d日\n", len(sorted))
	fmt.Fprintf(&b, "- 合計勤務時間: %s\n\n", total)
	b.WriteString("## 日次業務報告\n\n")

	for _, r := range sorted {
		fmt.Fprintf(&b, "### %s (%s)\n", r.Date, r.Location)
		fmt.Fprintf(&b, "- 勤務時間: %s〜%s (%s)\n", r.WorkHours.Start, r.WorkHours.End, r.WorkHours.Total)
		fmt.Fprintf(&b, "- タスク状況: %s\n", r.TaskStatus)
		b.WriteString("- 実施タスク:\n")
		for _, task := range r.TaskLines() {
			fmt.Fprintf(&b, "  - %s\n", task)
		}
		if r.Notes != "" {
			fmt.Fprintf(&b, "- 特記事項: %s\n", r.Notes)
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// FallbackHeader returns the marker line prefixed to a basic rendering that
// stands in for a failed enhancement pass.
func FallbackHeader(month string) string {
	return fmt.Sprintf("# %sの月報（簡易生成）", month)
}
