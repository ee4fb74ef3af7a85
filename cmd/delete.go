package cmd

import (
	"github.com/spf13/cobra"

	"nippou/internal/errors"
	"nippou/internal/prompt"
)

var deleteFlagYes bool

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a daily report",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteFlagYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	rec, err := findReport(args[0])
	if err != nil {
		return err
	}

	if !deleteFlagYes && !ctx.IsJSON() {
		ok, err := prompt.Confirm(rec.Date + " の日報を削除しますか？")
		if err != nil {
			return err
		}
		if !ok {
			ctx.CLIFormatter().Muted("中止しました")
			return nil
		}
	}

	removed, err := ctx.Store.Delete(rec.ID)
	if err != nil {
		return err
	}
	if !removed {
		return errors.Wrapf(errors.ErrReportNotFound, "%q", rec.ID)
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResult(map[string]any{
			"deleted": true,
			"id":      rec.ID,
		})
	}
	ctx.CLIFormatter().Success("日報を削除しました: " + rec.Date)
	return nil
}
