package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"nippou/internal/ai"
	"nippou/internal/errors"
	"nippou/internal/export"
	"nippou/internal/parser"
	"nippou/internal/report"
	"nippou/internal/timeutil"
)

// Generate command flags.
var (
	generateFlagTemplate string
	generateFlagOutput   string
	generateFlagHTML     string
	generateFlagBasic    bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:     "generate [MONTH]",
	Aliases: []string{"gen"},
	Short:   "Generate a monthly report from the month's daily reports",
	Long: `Generate a monthly report. MONTH is YYYY-MM or natural language and
defaults to the previous month. The report is rendered from the month's daily
reports through a template (explicit --template, else the default template,
else a built-in layout) and rewritten by the configured AI model. If the AI
pass fails for any reason, the deterministic rendering is produced instead.

Examples:
  nippou generate
  nippou generate 2024-06 --template monthly
  nippou generate this month --basic --output report.md --html report.html`,
	Args: cobra.ArbitraryArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateFlagTemplate, "template", "t", "", "Template name")
	generateCmd.Flags().StringVarP(&generateFlagOutput, "output", "o", "", "Write the report to a markdown file")
	generateCmd.Flags().StringVar(&generateFlagHTML, "html", "", "Write the report to a standalone HTML file")
	generateCmd.Flags().BoolVar(&generateFlagBasic, "basic", false, "Skip the AI pass and emit the deterministic rendering")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	monthArg := ""
	if len(args) > 0 {
		monthArg = args[0]
		for _, a := range args[1:] {
			monthArg += " " + a
		}
	}
	month, err := parser.ParseMonth(monthArg)
	if err != nil {
		return err
	}

	// Recompute the display caches and fetch the month in one pass.
	reports, _, err := report.RefreshMonthlyTotals(ctx.Store, month)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		return errors.Wrapf(errors.ErrNoReports, "%s", month)
	}

	var text string
	if generateFlagBasic {
		tmpl, err := report.NewRenderer(ctx.Store, nil, "").ResolveTemplate(generateFlagTemplate)
		if err != nil {
			return err
		}
		content := ""
		if tmpl != nil {
			content = tmpl.Content
		}
		text, err = report.RenderBasic(reports, content)
		if err != nil {
			return err
		}
	} else {
		settings, err := ctx.Store.Settings()
		if err != nil {
			return err
		}
		apiKey, err := ctx.APIKey()
		if err != nil {
			return err
		}

		var gen report.Generator
		if apiKey != "" {
			opts := []ai.Option{ai.WithTimeout(ctx.Config.HTTPTimeout)}
			if ctx.Config.BaseURL != "" {
				opts = append(opts, ai.WithBaseURL(ctx.Config.BaseURL))
			}
			gen = ai.NewClient(apiKey, opts...)
		}

		renderer := report.NewRenderer(ctx.Store, gen, settings.API.Model)
		text, err = renderer.RenderEnhanced(cmd.Context(), reports, generateFlagTemplate)
		if err != nil {
			return err
		}
	}

	if generateFlagOutput != "" {
		if err := os.WriteFile(generateFlagOutput, []byte(text), 0o644); err != nil {
			return errors.NewSystemErrorWithOp("generate", "write output file", err)
		}
	}
	if generateFlagHTML != "" {
		title := timeutil.FormatMonthJP(month) + "の月報"
		if err := export.ToHTML(text, title, generateFlagHTML); err != nil {
			return err
		}
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResult(map[string]any{
			"month":  month,
			"report": text,
		})
	}

	cli := ctx.CLIFormatter()
	if generateFlagOutput == "" && generateFlagHTML == "" {
		cli.PrintDocument(text)
	} else {
		cli.Success("月報を生成しました: " + month)
	}
	return nil
}
