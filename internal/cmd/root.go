// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logpanel/cli/internal/config"
	oerrors "github.com/logpanel/cli/internal/errors"
	"github.com/logpanel/cli/internal/output"
	"github.com/logpanel/cli/internal/version"
)

// stdoutIsTerminal detects whether stdout is a terminal. Tests replace it.
var stdoutIsTerminal = output.IsTTY

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created empty by NewRootCmd, filled once before any subcommand runs,
// and passed explicitly into every subcommand constructor.
type GlobalConfig struct {
	Config   *config.Config
	Resolved *config.ResolvedConfig
	Verbose  bool
}

type globalFlags struct {
	config       string
	verbose      bool
	timestamps   bool
	maxItems     int
	logFormat    string
	enable       []string
	ignore       []string
	formats      []string
	realTimeHTML bool
	stdout       bool
}

// NewRootCmd creates the root command for the logpanel CLI.
func NewRootCmd() *cobra.Command {
	var flags globalFlags
	g := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "logpanel",
		Short: "Report panel selection for access log analysis",
		Long: `logpanel decides which report panels an access log analyzer shows,
in what order, and how many rows each panel may render for an output target.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, &flags, g)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "Path to config file (env: LOGPANEL_CONFIG)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	pf.IntVar(&flags.maxItems, "max-items", 0, "Maximum rows per panel, 0 for default (env: LOGPANEL_MAX_ITEMS)")
	pf.StringVar(&flags.logFormat, "log-format", "", "Access log format descriptor (env: LOGPANEL_LOG_FORMAT)")
	pf.StringArrayVar(&flags.enable, "enable-panel", nil, "Panel to enable, overrides --ignore-panel (can be repeated)")
	pf.StringArrayVar(&flags.ignore, "ignore-panel", nil, "Panel to ignore (can be repeated)")
	pf.StringArrayVar(&flags.formats, "output-format", nil, "Report output: csv, json, html or a file name (can be repeated)")
	pf.BoolVar(&flags.realTimeHTML, "real-time-html", false, "Real-time HTML streaming is active")
	pf.BoolVar(&flags.stdout, "stdout", false, "Write the report to standard output instead of the terminal UI")

	rootCmd.AddCommand(NewPanelsCmd(g))
	rootCmd.AddCommand(NewLimitsCmd(g))
	rootCmd.AddCommand(NewBrowseCmd(g))
	rootCmd.AddCommand(NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd(g))

	return rootCmd
}

// initializeGlobals sets up logging and resolves configuration into g.
func initializeGlobals(cmd *cobra.Command, flags *globalFlags, g *GlobalConfig) error {
	// Provisional logger so config loading can report problems.
	output.SetupLogging(output.LogConfig{Verbose: flags.verbose})

	cfg, err := config.NewLoader().Load(flags.config)
	if err != nil {
		// Commands such as `config init --force` must still work.
		output.Warn("config load error", "error", err)
	}

	var maxItems *int
	if cmd.Flags().Changed("max-items") {
		maxItems = &flags.maxItems
	}

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:       flags.config,
		MaxItemsFlag:     maxItems,
		LogFormatFlag:    flags.logFormat,
		EnableFlags:      flags.enable,
		IgnoreFlags:      flags.ignore,
		FormatFlags:      flags.formats,
		RealTimeHTMLFlag: flags.realTimeHTML,
		StdoutFlag:       flags.stdout,
		StdoutIsTerminal: stdoutIsTerminal(),
		Config:           cfg,
	})
	if err != nil {
		return err
	}

	g.Config = cfg
	g.Resolved = resolved
	g.Verbose = flags.verbose

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg != nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	output.Debug("logpanel started", "version", version.Get().Version)
	if flags.verbose {
		config.LogResolvedValues(resolved.Values)
	}

	return nil
}

// parseOutputFlag validates a command's -o value.
func parseOutputFlag(format string) (output.Format, error) {
	f, ok := output.ParseFormat(format)
	if !ok {
		return f, oerrors.NewExitError(
			oerrors.NewValidationError(
				fmt.Sprintf("unknown output format %q", format),
				"output",
				"Use one of: "+strings.Join(output.ValidFormats(), ", "),
			),
			oerrors.ExitValidationError,
		)
	}
	return f, nil
}
