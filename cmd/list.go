package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"nippou/internal/export"
	"nippou/internal/model"
	"nippou/internal/parser"
	"nippou/internal/report"
	"nippou/internal/timeutil"
)

// List command flags.
var (
	listFlagMonth string
	listFlagLong  bool
	listFlagCSV   string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List daily reports",
	Long: `List stored daily reports, optionally restricted to one month.

Examples:
  nippou list
  nippou list --month 2024-06
  nippou list --month "last month" --csv reports.csv`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFlagMonth, "month", "m", "", "Restrict to a month (YYYY-MM or natural language)")
	listCmd.Flags().BoolVar(&listFlagLong, "long", false, "Print full daily-report text instead of rows")
	listCmd.Flags().StringVar(&listFlagCSV, "csv", "", "Export the listed reports to a CSV file")
}

func runList(cmd *cobra.Command, args []string) error {
	var reports []model.DailyReport
	var err error

	if listFlagMonth != "" {
		month, perr := parser.ParseMonth(listFlagMonth)
		if perr != nil {
			return perr
		}
		start, end, rerr := timeutil.MonthRange(month)
		if rerr != nil {
			return rerr
		}
		reports, err = ctx.Store.ListByDateRange(start, end)
	} else {
		reports, err = ctx.Store.ListAll()
	}
	if err != nil {
		return err
	}

	// Store order is insertion order; present chronologically.
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Date < reports[j].Date
	})

	if listFlagCSV != "" {
		if err := export.ToCSV(reports, listFlagCSV); err != nil {
			return err
		}
		ctx.CLIFormatter().Success("CSVを書き出しました: " + listFlagCSV)
		return nil
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResult(reports)
	}

	cli := ctx.CLIFormatter()
	if listFlagLong {
		for i := range reports {
			cli.PrintDocument(report.FormatDaily(&reports[i]))
		}
		return nil
	}
	cli.PrintReportList(reports)
	return nil
}
