package cmd

import (
	"github.com/spf13/cobra"

	"nippou/internal/errors"
	"nippou/internal/model"
	"nippou/internal/parser"
	"nippou/internal/report"
)

// Edit command flags.
var (
	editFlagStart    string
	editFlagEnd      string
	editFlagLocation string
	editFlagStatus   string
	editFlagTasks    string
	editFlagNextDay  string
	editFlagNotes    string
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit DATE|ID",
	Short: "Edit an existing daily report",
	Long: `Edit an existing daily report, looked up by date or ID. Only the
fields supplied via flags change; the work-hours total is re-derived whenever
start or end changes.

Examples:
  nippou edit 2024-06-01 --end 19:00
  nippou edit 20240601-3f2a9c1b --status 遅延 --notes "リリース延期"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editFlagStart, "start", "s", "", "Work start time (HH:MM)")
	editCmd.Flags().StringVarP(&editFlagEnd, "end", "e", "", "Work end time (HH:MM)")
	editCmd.Flags().StringVarP(&editFlagLocation, "location", "l", "", "Work location")
	editCmd.Flags().StringVar(&editFlagStatus, "status", "", "Task status")
	editCmd.Flags().StringVarP(&editFlagTasks, "tasks", "t", "", "Tasks performed, one per line")
	editCmd.Flags().StringVar(&editFlagNextDay, "next-day", "", "Next day's work location")
	editCmd.Flags().StringVarP(&editFlagNotes, "notes", "n", "", "Additional notes")
}

// findReport looks a report up by date first, then by ID.
func findReport(key string) (*model.DailyReport, error) {
	if date, err := parser.ParseDate(key); err == nil {
		if rec, err := ctx.Store.FindByDate(date); err != nil {
			return nil, err
		} else if rec != nil {
			return rec, nil
		}
	}
	rec, err := ctx.Store.FindByID(key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(errors.ErrReportNotFound, "%q", key)
	}
	return rec, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	rec, err := findReport(args[0])
	if err != nil {
		return err
	}

	start := rec.WorkHours.Start
	end := rec.WorkHours.End
	if editFlagStart != "" {
		if start, err = parser.ParseTime(editFlagStart); err != nil {
			return err
		}
	}
	if editFlagEnd != "" {
		if end, err = parser.ParseTime(editFlagEnd); err != nil {
			return err
		}
	}
	if start != rec.WorkHours.Start || end != rec.WorkHours.End {
		if err := rec.SetWorkHours(start, end); err != nil {
			return err
		}
	}

	if editFlagLocation != "" {
		rec.Location = editFlagLocation
	}
	if editFlagStatus != "" {
		rec.TaskStatus = editFlagStatus
	}
	if editFlagTasks != "" {
		rec.Tasks = editFlagTasks
	}
	if editFlagNextDay != "" {
		rec.NextDayLocation = editFlagNextDay
	}
	if cmd.Flags().Changed("notes") {
		rec.Notes = editFlagNotes
	}

	rec.Touch()
	if err := ctx.Store.Upsert(rec); err != nil {
		return err
	}

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
	cli.Success("日報を更新しました: " + rec.Date)
	cli.PrintDocument(report.FormatDaily(rec))
	return nil
}
