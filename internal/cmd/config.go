package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/consoletable/internal/config"
	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
	"github.com/salmonumbrella/consoletable/internal/input"
	"github.com/salmonumbrella/consoletable/internal/logging"
	"github.com/salmonumbrella/consoletable/internal/table"
	"github.com/salmonumbrella/consoletable/internal/ui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage CLI configuration",
		Long:    `Manage the ctab configuration file at ~/.config/consoletable/config.yaml`,
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			path, err := configPathFromContext(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to determine config path: %w", err)
			}
			cfg, err := config.LoadFromPath(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to format config: %w", err)
			}

			if len(data) == 0 || string(data) == "{}\n" {
				_, _ = fmt.Fprintf(out, "No configuration file found at %s\n", path)
				ui.FromContext(cmd.Context()).Info("Create one with: ctab config set style markdown")
				return nil
			}

			_, _ = fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.config/consoletable/config.yaml

Supported keys:
  style         - Default table style (default, markdown, alternative, minimal)
  count         - Append the row count to default-style tables (true, false)
  color         - Color mode for stderr messages (auto, always, never)
  log_format    - Log handler (text, json)
  input_format  - Input format when it cannot be inferred (csv, tsv, json, yaml)`,
		Example: `  ctab config set style markdown
  ctab config set count true`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			value, err := normalizeConfigValue(key, args[1])
			if err != nil {
				return err
			}

			path, err := configPathFromContext(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to determine config path: %w", err)
			}
			cfg, err := config.LoadFromPath(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Set(key, value); err != nil {
				return clierrors.WrapUserError(err, "invalid config value", "Run 'ctab config set --help' for supported keys")
			}
			if err := cfg.SaveToPath(path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			ui.FromContext(cmd.Context()).Success("Set %s = %s in %s", key, value, path)
			return nil
		},
	}
}

// normalizeConfigValue validates enumerated keys and returns the canonical value.
func normalizeConfigValue(key, value string) (string, error) {
	switch key {
	case "style":
		style, err := table.ParseStyle(value)
		if err != nil {
			return "", err
		}
		return style.String(), nil
	case "color":
		if _, err := ui.ParseColorMode(value); err != nil {
			return "", clierrors.WrapUserError(err, "invalid color mode", "Use one of: auto, always, never")
		}
		return strings.ToLower(strings.TrimSpace(value)), nil
	case "log_format":
		if err := logging.ValidateFormat(value); err != nil {
			return "", clierrors.WrapUserError(err, "invalid log format", "Use one of: text, json")
		}
		return strings.ToLower(strings.TrimSpace(value)), nil
	case "input_format":
		f, err := input.ParseFormat(value)
		if err != nil {
			return "", clierrors.WrapUserError(err, "invalid input format", "Use one of: auto, csv, tsv, json, yaml")
		}
		return string(f), nil
	case "count":
		return value, nil
	default:
		return "", clierrors.NewUserError(
			fmt.Sprintf("unknown config key %q", key),
			"Supported keys: "+strings.Join(config.Keys, ", "),
		)
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			path, err := configPathFromContext(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to determine config path: %w", err)
			}

			_, _ = fmt.Fprintln(out, path)

			if _, err := os.Stat(path); err == nil {
				_, _ = fmt.Fprintln(out, "(file exists)")
			} else if os.IsNotExist(err) {
				_, _ = fmt.Fprintln(out, "(file does not exist)")
			}

			return nil
		},
	}
}
