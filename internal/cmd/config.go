package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/logpanel/cli/internal/config"
	oerrors "github.com/logpanel/cli/internal/errors"
	"github.com/logpanel/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the logpanel CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(g))
	c.AddCommand(NewConfigPathCmd(g))

	return c
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a logpanel configuration file with default values.

The file is created at ~/.logpanel/config.yaml unless --config or
LOGPANEL_CONFIG names another location.

Examples:
  # Initialize configuration
  logpanel config init

  # Overwrite existing configuration
  logpanel config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, g, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(cmd *cobra.Command, g *GlobalConfig, force bool) error {
	path, err := config.ExpandPath(g.Resolved.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return oerrors.NewExitError(&oerrors.DetailError{
			Type:    "validation failed",
			Message: "configuration already exists",
			Context: map[string]string{"Path": path},
			Hint:    "Use --force to overwrite",
			Cause:   oerrors.ErrValidation,
		}, oerrors.ExitValidationError)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := []byte("# logpanel configuration\n# Panel names: VISITORS, REQUESTS, ..., STATUS_CODES\n\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}

// NewConfigPathCmd creates the config path command.
func NewConfigPathCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file in use",
		Long: `Show the configuration file in use.

A missing default file prints a notice. A file named by --config or
LOGPANEL_CONFIG that does not exist is an error.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exists, err := config.ConfigFileExists(g.Resolved.ConfigPath)
			if err != nil {
				return fmt.Errorf("checking config file: %w", err)
			}

			out := cmd.OutOrStdout()
			if !exists && g.Resolved.ConfigSource != config.SourceDefault {
				return oerrors.NewExitError(
					oerrors.Wrap(oerrors.ErrNotFound, "config file "+g.Resolved.ConfigPath),
					oerrors.ExitNotFound,
				)
			}
			if !exists {
				fmt.Fprintln(out, "No default config file found.")
				fmt.Fprintln(out, "You may specify one with `--config /path/config.yaml`")
				return nil
			}

			path, err := config.ExpandPath(g.Resolved.ConfigPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, path)
			return nil
		},
	}
}
