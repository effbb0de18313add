// Package config provides configuration loading and management.
package config

// PanelsConfig contains the panel selection lists.
type PanelsConfig struct {
	// Enable lists panels to show even when they are also ignored.
	Enable []string `mapstructure:"enable" yaml:"enable"`

	// Ignore lists panels to hide.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`
}

// OutputConfig contains output target settings.
type OutputConfig struct {
	// MaxItems is the maximum number of rows per panel. Zero means unset.
	// Env: LOGPANEL_MAX_ITEMS
	MaxItems int `mapstructure:"maxItems" yaml:"maxItems"`

	// Formats lists requested report outputs, either type names (csv, json,
	// html) or file names whose extension names the type.
	Formats []string `mapstructure:"formats" yaml:"formats"`

	// RealTimeHTML enables real-time HTML streaming.
	RealTimeHTML bool `mapstructure:"realTimeHTML" yaml:"realTimeHTML"`

	// Stdout writes the report to standard output instead of the terminal UI.
	Stdout bool `mapstructure:"stdout" yaml:"stdout"`
}

// LogConfig contains log-format and logging settings.
type LogConfig struct {
	// Format is the access log format descriptor, e.g. "%h %^[%d:%t %^] %s".
	// Env: LOGPANEL_LOG_FORMAT
	Format string `mapstructure:"format" yaml:"format"`

	// Timestamps controls whether timestamps are shown in CLI log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the logpanel configuration file.
// Loaded from ~/.logpanel/config.yaml.
type Config struct {
	Panels PanelsConfig `mapstructure:"panels" yaml:"panels"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `logpanel config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Panels: PanelsConfig{
			Enable: []string{},
			Ignore: []string{},
		},
		Output: OutputConfig{
			Formats: []string{},
		},
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}
