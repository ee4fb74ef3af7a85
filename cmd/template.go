package cmd

import (
	"github.com/spf13/cobra"

	"nippou/internal/errors"
	"nippou/internal/model"
	"nippou/internal/prompt"
)

// Template add flags.
var (
	templateFlagName    string
	templateFlagType    string
	templateFlagContent string
	templateFlagDefault bool
)

// templateCmd groups the template subcommands.
var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tmpl"},
	Short:   "Manage monthly-report templates",
	Long: `Manage monthly-report templates. Template content may use the
{{month}}, {{total_days}} and {{total_hours}} placeholders; at most one
template is the default at any time.`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	RunE:  runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a template's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

var templateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a template",
	RunE:  runTemplateAdd,
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateDelete,
}

var templateSetDefaultCmd = &cobra.Command{
	Use:   "set-default NAME",
	Short: "Mark a template as the default",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateSetDefault,
}

func init() {
	templateAddCmd.Flags().StringVar(&templateFlagName, "name", "", "Template name")
	templateAddCmd.Flags().StringVar(&templateFlagType, "type", "", "Template category")
	templateAddCmd.Flags().StringVar(&templateFlagContent, "content", "", "Template content")
	templateAddCmd.Flags().BoolVar(&templateFlagDefault, "default", false, "Mark as the default template")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateAddCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	templateCmd.AddCommand(templateSetDefaultCmd)
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	templates, err := ctx.Store.Templates()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResult(templates)
	}

	cli := ctx.CLIFormatter()
	if len(templates) == 0 {
		cli.Muted("テンプレートはありません")
		return nil
	}
	for i := range templates {
		cli.PrintTemplateRow(&templates[i])
	}
	return nil
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	t, err := ctx.Store.FindTemplateByName(args[0])
	if err != nil {
		return err
	}
	if t == nil {
		return errors.Wrapf(errors.ErrTemplateNotFound, "%q", args[0])
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResult(t)
	}
	ctx.CLIFormatter().PrintDocument(t.Content)
	return nil
}

func runTemplateAdd(cmd *cobra.Command, args []string) error {
	name := templateFlagName
	typ := templateFlagType
	content := templateFlagContent
	isDefault := templateFlagDefault

	if name == "" || content == "" {
		if err := prompt.TemplateForm(&name, &typ, &content, &isDefault); err != nil {
			return err
		}
	}

	t := model.NewTemplate(name, typ, content, isDefault)
	if err := model.ValidateTemplate(t); err != nil {
		return err
	}
	if err := ctx.Store.SaveTemplate(t); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResult(t)
	}
	ctx.CLIFormatter().Success("テンプレートを追加しました: " + t.Name)
	return nil
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	removed, err := ctx.Store.DeleteTemplate(args[0])
	if err != nil {
		return err
	}
	if !removed {
		return errors.Wrapf(errors.ErrTemplateNotFound, "%q", args[0])
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResult(map[string]any{
			"deleted": true,
			"id":      args[0],
		})
	}
	ctx.CLIFormatter().Success("テンプレートを削除しました")
	return nil
}

func runTemplateSetDefault(cmd *cobra.Command, args []string) error {
	t, err := ctx.Store.FindTemplateByName(args[0])
	if err != nil {
		return err
	}
	if t == nil {
		return errors.Wrapf(errors.ErrTemplateNotFound, "%q", args[0])
	}

	t.IsDefault = true
	if err := ctx.Store.SaveTemplate(t); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResult(t)
	}
	ctx.CLIFormatter().Success("デフォルトテンプレートを設定しました: " + t.Name)
	return nil
}
