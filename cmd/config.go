package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nippou/internal/errors"
	"nippou/internal/model"
	"nippou/internal/parser"
)

// Config set flags.
var (
	configFlagUserName string
	configFlagLocation string
	configFlagStart    string
	configFlagEnd      string
)

// configCmd groups the settings subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change user name, default location or default work hours",
	RunE:  runConfigSet,
}

var configSetAPIKeyCmd = &cobra.Command{
	Use:   "set-api-key",
	Short: "Store the generation API key (prompted without echo)",
	RunE:  runConfigSetAPIKey,
}

var configSetModelCmd = &cobra.Command{
	Use:   "set-model MODEL",
	Short: "Set the generation model",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetModel,
}

func init() {
	configSetCmd.Flags().StringVar(&configFlagUserName, "name", "", "User name")
	configSetCmd.Flags().StringVar(&configFlagLocation, "location", "", "Default work location")
	configSetCmd.Flags().StringVar(&configFlagStart, "start", "", "Default start time (HH:MM)")
	configSetCmd.Flags().StringVar(&configFlagEnd, "end", "", "Default end time (HH:MM)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetAPIKeyCmd)
	configCmd.AddCommand(configSetModelCmd)
}

// redactedSettings is the settings shape printed by config show; the API key
// is masked.
func redactedSettings(s model.Settings) map[string]any {
	key := ""
	if s.API.APIKey != "" {
		key = "****"
		// Show the suffix only when the key is long enough that four
		// characters reveal nothing useful.
		if len(s.API.APIKey) >= 8 {
			key += s.API.APIKey[len(s.API.APIKey)-4:]
		}
	}
	return map[string]any{
		"userName":         s.UserName,
		"defaultLocation":  s.DefaultLocation,
		"defaultWorkHours": s.DefaultWorkHours.Start + "-" + s.DefaultWorkHours.End,
		"apiKey":           key,
		"model":            s.API.Model,
		"templates":        len(s.Templates),
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := ctx.Store.Settings()
	if err != nil {
		return err
	}

	view := redactedSettings(settings)
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResult(view)
	}

	cli := ctx.CLIFormatter()
	cli.Title("設定")
	cli.Printf("  ユーザー名: %v\n", view["userName"])
	cli.Printf("  デフォルト勤務場所: %v\n", view["defaultLocation"])
	cli.Printf("  デフォルト勤務時間: %v\n", view["defaultWorkHours"])
	cli.Printf("  APIキー: %v\n", view["apiKey"])
	cli.Printf("  モデル: %v\n", view["model"])
	cli.Printf("  テンプレート数: %v\n", view["templates"])
	cli.Muted("  データファイル: " + ctx.Store.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configFlagStart != "" {
		if _, err := parser.ParseTime(configFlagStart); err != nil {
			return err
		}
	}
	if configFlagEnd != "" {
		if _, err := parser.ParseTime(configFlagEnd); err != nil {
			return err
		}
	}

	err := ctx.Store.UpdateSettings(func(s *model.Settings) {
		if configFlagUserName != "" {
			s.UserName = configFlagUserName
		}
		if configFlagLocation != "" {
			s.DefaultLocation = configFlagLocation
		}
		if configFlagStart != "" {
			s.DefaultWorkHours.Start = configFlagStart
		}
		if configFlagEnd != "" {
			s.DefaultWorkHours.End = configFlagEnd
		}
	})
	if err != nil {
		return err
	}

	ctx.CLIFormatter().Success("設定を更新しました")
	return nil
}

func runConfigSetAPIKey(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.NewUserError("set-api-key needs an interactive terminal",
			"Run it from a terminal, or set the OPENAI_API_KEY variable instead")
	}

	cmd.Print("API key: ")
	raw, err := term.ReadPassword(fd)
	cmd.Println()
	if err != nil {
		return errors.Wrap(err, "read key")
	}

	key := strings.TrimSpace(string(raw))
	if key == "" {
		return errors.NewUserError("Empty API key", "Paste a non-empty key")
	}

	err = ctx.Store.UpdateSettings(func(s *model.Settings) {
		s.API.APIKey = key
	})
	if err != nil {
		return err
	}

	ctx.CLIFormatter().Success("APIキーを保存しました")
	return nil
}

func runConfigSetModel(cmd *cobra.Command, args []string) error {
	err := ctx.Store.UpdateSettings(func(s *model.Settings) {
		s.API.Model = args[0]
	})
	if err != nil {
		return err
	}
	ctx.CLIFormatter().Success("モデルを設定しました: " + args[0])
	return nil
}
