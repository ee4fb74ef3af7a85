// Package runtime provides the application runtime context for nippou.
package runtime

import (
	"nippou/internal/config"
	"nippou/internal/output"
	"nippou/internal/storage"
)

// Context holds the wired collaborators every command needs. The store is
// constructed once per process with an injected document path; there is no
// module-level singleton.
type Context struct {
	Store     *storage.Store
	Formatter *output.Formatter
	Config    *config.Config

	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DataPath  string
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// New creates a runtime context. An empty DataPath falls back to the
// configuration default (which itself honors the NIPPOU_DATA variable).
func New(opts Options) (*Context, error) {
	cfg := config.Load()
	if opts.DataPath != "" {
		cfg.DataPath = opts.DataPath
	}

	store := storage.New(cfg.DataPath)
	if err := store.Init(); err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Store:     store,
		Formatter: formatter,
		Config:    cfg,
		Debug:     opts.Debug,
	}, nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// APIKey returns the generation API key: stored settings first, then the
// environment.
func (c *Context) APIKey() (string, error) {
	settings, err := c.Store.Settings()
	if err != nil {
		return "", err
	}
	if settings.API.APIKey != "" {
		return settings.API.APIKey, nil
	}
	return c.Config.APIKey, nil
}
