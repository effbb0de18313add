package config

import (
	"os"
	"strconv"

	oerrors "github.com/logpanel/cli/internal/errors"
	"github.com/logpanel/cli/internal/limits"
	"github.com/logpanel/cli/internal/output"
	"github.com/logpanel/cli/internal/panel"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records one resolved setting, where it came from, and any
// lower-precedence values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) LOGPANEL_CONFIG env, (3) ~/.logpanel/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]any),
	}

	envValue := os.Getenv("LOGPANEL_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveMaxItems resolves the row limit using precedence:
// (1) --max-items flag, (2) LOGPANEL_MAX_ITEMS env, (3) output.maxItems.
// flagValue is nil when the flag was not given.
func ResolveMaxItems(flagValue *int, configValue int) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "output.maxItems",
		Shadowed: make(map[ConfigSource]any),
	}

	var envValue *int
	if raw := os.Getenv("LOGPANEL_MAX_ITEMS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return result, oerrors.NewValidationError(
				"LOGPANEL_MAX_ITEMS must be an integer, got "+strconv.Quote(raw),
				"output.maxItems",
				"Unset the variable or use a whole number such as 100",
			)
		}
		envValue = &n
	}

	switch {
	case flagValue != nil:
		result.Value = *flagValue
		result.Source = SourceFlag
		if envValue != nil {
			result.Shadowed[SourceEnv] = *envValue
		}
		if configValue != 0 {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != nil:
		result.Value = *envValue
		result.Source = SourceEnv
		if configValue != 0 {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != 0:
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = 0
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveLogFormat resolves the log-format descriptor using precedence:
// (1) --log-format flag, (2) LOGPANEL_LOG_FORMAT env, (3) log.format.
func ResolveLogFormat(flagValue, configValue string) ResolvedValue {
	result := ResolvedValue{
		Key:      "log.format",
		Shadowed: make(map[ConfigSource]any),
	}

	envValue := os.Getenv("LOGPANEL_LOG_FORMAT")

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = ""
		result.Source = SourceDefault
	}

	return result
}

// ResolveAllOptions carries raw flag values and the loaded config.
type ResolveAllOptions struct {
	ConfigFlag    string
	MaxItemsFlag  *int
	LogFormatFlag string

	// List flags are appended to the config file lists.
	EnableFlags []string
	IgnoreFlags []string
	FormatFlags []string

	RealTimeHTMLFlag bool
	StdoutFlag       bool

	// StdoutIsTerminal is the detected terminal state of standard output.
	StdoutIsTerminal bool

	Config *Config
}

// ResolvedConfig holds every setting the panel core consumes.
type ResolvedConfig struct {
	ConfigPath       string
	ConfigSource     ConfigSource
	Enable           []string
	Ignore           []string
	MaxItems         int
	Formats          []string
	RealTimeHTML     bool
	OutputStdout     bool
	StdoutIsTerminal bool
	LogFormat        string

	// Values records how precedence was applied, for debug logging.
	Values []ResolvedValue
}

// ResolveAll applies precedence to every setting. The report goes to
// standard output when requested, when any output format is requested, or
// when stdout is not a terminal.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	configPath, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, err
	}

	maxItems, err := ResolveMaxItems(opts.MaxItemsFlag, cfg.Output.MaxItems)
	if err != nil {
		return nil, err
	}

	logFormat := ResolveLogFormat(opts.LogFormatFlag, cfg.Log.Format)

	formats := appendLists(cfg.Output.Formats, opts.FormatFlags)

	resolved := &ResolvedConfig{
		ConfigPath:       configPath.Value.(string),
		ConfigSource:     configPath.Source,
		Enable:           appendLists(cfg.Panels.Enable, opts.EnableFlags),
		Ignore:           appendLists(cfg.Panels.Ignore, opts.IgnoreFlags),
		MaxItems:         maxItems.Value.(int),
		Formats:          formats,
		RealTimeHTML:     opts.RealTimeHTMLFlag || cfg.Output.RealTimeHTML,
		OutputStdout:     opts.StdoutFlag || cfg.Output.Stdout || len(formats) > 0 || !opts.StdoutIsTerminal,
		StdoutIsTerminal: opts.StdoutIsTerminal,
		LogFormat:        logFormat.Value.(string),
		Values:           []ResolvedValue{configPath, maxItems, logFormat},
	}

	return resolved, nil
}

// Filter returns the panel selection lists.
func (r *ResolvedConfig) Filter() panel.Filter {
	return panel.Filter{Enable: r.Enable, Ignore: r.Ignore}
}

// LimitFlags returns the output target flags for row-limit decisions.
func (r *ResolvedConfig) LimitFlags() limits.Flags {
	return limits.Flags{
		MaxItems:         r.MaxItems,
		OutputStdout:     r.OutputStdout,
		RealTimeHTML:     r.RealTimeHTML,
		Formats:          r.Formats,
		StdoutIsTerminal: r.StdoutIsTerminal,
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

func appendLists(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
