// Package cmd provides the CLI commands for nippou.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"nippou/internal/errors"
	"nippou/internal/logging"
	"nippou/internal/output"
	"nippou/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagData   string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nippou",
	Short: "Record daily work reports and generate monthly reports",
	Long: `nippou records daily work-report entries (date, hours, location, tasks)
and synthesizes them into monthly reports, optionally through a user-defined
template and an AI rewriting pass.

Examples:
  nippou create
  nippou create --date today --start 09:30 --end 18:30 --tasks "設計レビュー"
  nippou list --month 2024-06
  nippou generate 2024-06 --template monthly
  nippou template list`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		} else {
			logging.Init(logging.DefaultConfig())
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		var err error
		ctx, err = runtime.New(runtime.Options{
			DataPath:  flagData,
			Format:    format,
			ColorMode: colorMode,
			Debug:     flagDebug,
		})
		return err
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "",
		"Path to the backing data file (default: XDG data dir, or $NIPPOU_DATA)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("nippou %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	suggestion := errors.Suggestion(err)
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), suggestion)
	} else {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		if suggestion != "" {
			os.Stderr.WriteString("  " + suggestion + "\n")
		}
	}
	os.Exit(1)
}
