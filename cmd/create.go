package cmd

import (
	"github.com/spf13/cobra"

	"nippou/internal/errors"
	"nippou/internal/model"
	"nippou/internal/parser"
	"nippou/internal/prompt"
	"nippou/internal/report"
)

// Create command flags.
var (
	createFlagDate     string
	createFlagStart    string
	createFlagEnd      string
	createFlagLocation string
	createFlagStatus   string
	createFlagTasks    string
	createFlagNextDay  string
	createFlagNotes    string
	createFlagForce    bool
	createFlagNoInput  bool
)

// createCmd represents the create command.
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c", "new"},
	Short:   "Create a daily report",
	Long: `Create a daily report. Fields not supplied via flags are asked
interactively; defaults come from the stored settings.

Examples:
  nippou create
  nippou create --date today --start 09:30 --end 18:30 \
    --location リモート --status 順調 --tasks "設計レビュー" --next-day リモート`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createFlagDate, "date", "d", "", "Report date (YYYY-MM-DD or natural language)")
	createCmd.Flags().StringVarP(&createFlagStart, "start", "s", "", "Work start time (HH:MM)")
	createCmd.Flags().StringVarP(&createFlagEnd, "end", "e", "", "Work end time (HH:MM)")
	createCmd.Flags().StringVarP(&createFlagLocation, "location", "l", "", "Work location")
	createCmd.Flags().StringVar(&createFlagStatus, "status", "", "Task status")
	createCmd.Flags().StringVarP(&createFlagTasks, "tasks", "t", "", "Tasks performed, one per line")
	createCmd.Flags().StringVar(&createFlagNextDay, "next-day", "", "Next day's work location")
	createCmd.Flags().StringVarP(&createFlagNotes, "notes", "n", "", "Additional notes")
	createCmd.Flags().BoolVar(&createFlagForce, "force", false, "Create even if a report for the date exists")
	createCmd.Flags().BoolVar(&createFlagNoInput, "no-input", false, "Fail instead of prompting for missing fields")
}

// buildInput merges flag values with settings defaults into a report input.
func buildInput() (model.ReportInput, error) {
	settings, err := ctx.Store.Settings()
	if err != nil {
		return model.ReportInput{}, err
	}

	input := model.ReportInput{
		Date:            createFlagDate,
		Start:           createFlagStart,
		End:             createFlagEnd,
		Location:        createFlagLocation,
		TaskStatus:      createFlagStatus,
		Tasks:           createFlagTasks,
		NextDayLocation: createFlagNextDay,
		Notes:           createFlagNotes,
	}

	if input.Date != "" {
		input.Date, err = parser.ParseDate(input.Date)
		if err != nil {
			return model.ReportInput{}, err
		}
	}
	if input.Start == "" {
		input.Start = settings.DefaultWorkHours.Start
	}
	if input.End == "" {
		input.End = settings.DefaultWorkHours.End
	}
	if input.Location == "" {
		input.Location = settings.DefaultLocation
	}
	return input, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	input, err := buildInput()
	if err != nil {
		return err
	}

	if model.ValidateInput(input) != nil && !createFlagNoInput {
		if err := prompt.ReportForm(&input); err != nil {
			return err
		}
		input.Date, err = parser.ParseDate(input.Date)
		if err != nil {
			return err
		}
	}
	if err := model.ValidateInput(input); err != nil {
		return err
	}

	existing, err := ctx.Store.FindByDate(input.Date)
	if err != nil {
		return err
	}
	if existing != nil && !createFlagForce {
		return errors.Wrapf(errors.ErrReportExists, "%s", input.Date)
	}

	rec, err := model.NewDailyReport(input)
	if err != nil {
		return err
	}
	if err := ctx.Store.Upsert(rec); err != nil {
		return err
	}

	// Refresh the month's display cache now that the day is stored. A failed
	// refresh is a store failure and fails the command.
	month := rec.Date[:7]
	_, total, err := report.RefreshMonthlyTotals(ctx.Store, month)
	if err != nil {
		return err
	}
	rec.MonthlyTotalHours = total

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResult(rec)
	}

	cli := ctx.CLIFormatter()
	cli.Success("日報を作成しました: " + rec.Date)
	cli.PrintDocument(report.FormatDaily(rec))
	return nil
}
