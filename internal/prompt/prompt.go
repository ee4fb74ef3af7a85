// Package prompt provides the interactive entry forms for reports and
// templates. Commands fall back to these forms when flags do not fully
// specify a record.
package prompt

import (
	"github.com/charmbracelet/huh"

	"nippou/internal/model"
)

// Choices offered by the select fields. Free-text entry stays possible by
// picking その他 and editing afterwards with flags.
var (
	locations    = []string{"リモート", "大門", "新橋", "その他"}
	taskStatuses = []string{"順調", "遅延", "その他"}
)

func selectOptions(values []string, current string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values)+1)
	seen := false
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
		if v == current {
			seen = true
		}
	}
	if current != "" && !seen {
		opts = append(opts, huh.NewOption(current, current))
	}
	return opts
}

// ReportForm interactively fills the missing fields of a report input.
// Pre-populated fields become the form defaults.
func ReportForm(input *model.ReportInput) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("日付 (YYYY-MM-DD)").Value(&input.Date),
			huh.NewInput().Title("開始時間 (HH:MM)").Value(&input.Start),
			huh.NewInput().Title("終了時間 (HH:MM)").Value(&input.End),
			huh.NewSelect[string]().Title("勤務場所").
				Options(selectOptions(locations, input.Location)...).
				Value(&input.Location),
			huh.NewSelect[string]().Title("タスク状況").
				Options(selectOptions(taskStatuses, input.TaskStatus)...).
				Value(&input.TaskStatus),
		),
		huh.NewGroup(
			huh.NewText().Title("実施したタスク (1行に1件)").Value(&input.Tasks),
			huh.NewSelect[string]().Title("翌日の勤務場所").
				Options(selectOptions(locations, input.NextDayLocation)...).
				Value(&input.NextDayLocation),
			huh.NewText().Title("その他連絡事項 (任意)").Value(&input.Notes),
		),
	)
	return form.Run()
}

// TemplateForm interactively fills a template.
func TemplateForm(name, typ, content *string, isDefault *bool) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("テンプレート名").Value(name),
			huh.NewInput().Title("種別 (任意)").Value(typ),
			huh.NewText().
				Title("内容 ({{month}} {{total_days}} {{total_hours}} が使えます)").
				Value(content),
			huh.NewConfirm().Title("デフォルトにしますか？").Value(isDefault),
		),
	)
	return form.Run()
}

// Confirm asks a yes/no question.
func Confirm(title string) (bool, error) {
	ok := false
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&ok),
	)).Run()
	return ok, err
}
