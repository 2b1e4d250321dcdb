package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/consoletable/internal/config"
	"github.com/salmonumbrella/consoletable/internal/errors"
	"github.com/salmonumbrella/consoletable/internal/logging"
	"github.com/salmonumbrella/consoletable/internal/output"
	"github.com/salmonumbrella/consoletable/internal/ui"
)

const rootLong = `Render CSV, TSV, JSON, YAML or SQLite query results as console tables.

Styles:
  default      boxed with dashed dividers between rows
  markdown     GitHub-flavored Markdown table
  alternative  boxed with + at the corners
  minimal      Markdown layout without pipes

Examples:
  ctab render people.csv
  kubectl get pods -o json | ctab render -q '.items | map({name: .metadata.name})'
  ctab sql app.db 'SELECT id, email FROM users' --style markdown`

type globalFlags struct {
	debug       bool
	errorFormat string
	color       string
	configPath  string
	outputFmt   string
	logFormat   string
}

func newRootCmd(app *App) *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "ctab",
		Short:         "Render tabular data as console tables",
		Long:          rootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := buildRootContext(cmd, app, flags)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("ctab %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))
	rootCmd.SetFlagErrorFunc(flagErrorFunc)
	if app.Stdout != nil {
		rootCmd.SetOut(app.Stdout)
	}
	if app.Stderr != nil {
		rootCmd.SetErr(app.Stderr)
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging on stderr")
	pf.StringVar(&flags.errorFormat, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	pf.StringVar(&flags.color, "color", "auto", "Color for stderr messages (auto|always|never)")
	pf.StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/consoletable/config.yaml)")
	pf.StringVarP(&flags.outputFmt, "output", "o", "text", "Output format: text|json|ndjson|yaml")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log handler: text|json (default from config, else text)")

	flagAlias(pf, "output", "format")
	flagAlias(pf, "error-format", "ef")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newSQLCmd())
	rootCmd.AddCommand(newStylesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func buildRootContext(cmd *cobra.Command, app *App, flags globalFlags) (context.Context, error) {
	ctx := withAppIO(cmd.Context(), app)
	ctx = WithConfigPath(ctx, flags.configPath)

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}
	ctx = WithConfig(ctx, cfg)

	logFormat := flags.logFormat
	if !commandFlagChanged(cmd, "log-format") && cfg.LogFormat != "" {
		logFormat = cfg.LogFormat
	}
	if err := logging.SetupFormat(logFormat, flags.debug, stderrFromContext(ctx)); err != nil {
		return nil, errors.WrapUserError(err, "invalid log format", "Use --log-format text or json")
	}

	if err := validateErrorFormat(flags.errorFormat); err != nil {
		return nil, err
	}
	ctx = WithErrorFormat(ctx, flags.errorFormat)

	format, err := output.ParseFormat(flags.outputFmt)
	if err != nil {
		return nil, errors.WrapUserError(err, fmt.Sprintf("invalid --output %q", flags.outputFmt), "Use one of: text, json, ndjson, yaml")
	}
	ctx = output.WithFormat(ctx, format)

	colorValue := flags.color
	if !commandFlagChanged(cmd, "color") && cfg.GetColor() != "" {
		colorValue = cfg.GetColor()
	}
	mode, err := ui.ParseColorMode(colorValue)
	if err != nil {
		return nil, errors.WrapUserError(err, fmt.Sprintf("invalid --color %q", colorValue), "Use one of: auto, always, never")
	}
	ctx = ui.WithUI(ctx, ui.NewWithWriter(stderrFromContext(ctx), mode))

	slog.Debug("starting command", "command", cmd.CommandPath(), "output", format)
	return ctx, nil
}

// loadConfig reads the config file. Config subcommands manage the file
// themselves and start from an empty config.
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	if isConfigCommand(cmd) {
		return &config.Config{}, nil
	}
	path, err := configPathFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", err)
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}
