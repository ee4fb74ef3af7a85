package report

import (
	"fmt"
	"strings"

	"nippou/internal/model"
	"nippou/internal/timeutil"
)

// FormatDaily renders one report in the numbered daily-report layout used
// for chat posting, e.g.
//
//	【日報】2024年06月01日（土）
//	①勤務時間：09:00-18:00（9h00m）
//	...
func FormatDaily(r *model.DailyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "【日報】%s（%s）\n", timeutil.FormatDateJP(r.Date), timeutil.DayOfWeekJP(r.Date))
	fmt.Fprintf(&b, "①勤務時間：%s-%s（%s）\n", r.WorkHours.Start, r.WorkHours.End, r.WorkHours.Total)
	fmt.Fprintf(&b, "②勤務場所：%s\n", r.Location)
	fmt.Fprintf(&b, "③タスク状況：%s\n", r.TaskStatus)
	b.WriteString("④実施したタスク：\n")
	for _, task := range r.TaskLines() {
		fmt.Fprintf(&b, "・%s\n", task)
	}
	fmt.Fprintf(&b, "⑤翌日の勤務場所：%s\n", r.NextDayLocation)
	fmt.Fprintf(&b, "⑥月内の累積稼働時間：%s\n", r.MonthlyTotalHours)
	notes := r.Notes
	if notes == "" {
		notes = "特になし"
	}
	fmt.Fprintf(&b, "⑦その他連絡事項：%s\n", notes)
	return b.String()
}
