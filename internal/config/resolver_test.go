package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/logpanel/cli/internal/errors"
	"github.com/logpanel/cli/internal/limits"
)

func intPtr(n int) *int { return &n }

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag precedence", func(t *testing.T) {
		t.Setenv("LOGPANEL_CONFIG", "/env/config.yaml")

		result, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/flag/config.yaml"})
		require.NoError(t, err)

		assert.Equal(t, "/flag/config.yaml", result.Value)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/config.yaml", result.Shadowed[SourceEnv])
		assert.NotEmpty(t, result.Shadowed[SourceDefault])
	})

	t.Run("env precedence", func(t *testing.T) {
		t.Setenv("LOGPANEL_CONFIG", "/env/config.yaml")

		result, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)

		assert.Equal(t, "/env/config.yaml", result.Value)
		assert.Equal(t, SourceEnv, result.Source)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("LOGPANEL_CONFIG", "")

		result, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)

		assert.Contains(t, result.Value, "config.yaml")
		assert.Equal(t, SourceDefault, result.Source)
		assert.Empty(t, result.Shadowed)
	})
}

func TestResolveMaxItems(t *testing.T) {
	t.Run("flag overrides env and config", func(t *testing.T) {
		t.Setenv("LOGPANEL_MAX_ITEMS", "20")

		result, err := ResolveMaxItems(intPtr(10), 30)
		require.NoError(t, err)

		assert.Equal(t, 10, result.Value)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, 20, result.Shadowed[SourceEnv])
		assert.Equal(t, 30, result.Shadowed[SourceConfig])
	})

	t.Run("explicit zero flag wins", func(t *testing.T) {
		t.Setenv("LOGPANEL_MAX_ITEMS", "")

		result, err := ResolveMaxItems(intPtr(0), 30)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Value)
		assert.Equal(t, SourceFlag, result.Source)
	})

	t.Run("env overrides config", func(t *testing.T) {
		t.Setenv("LOGPANEL_MAX_ITEMS", "20")

		result, err := ResolveMaxItems(nil, 30)
		require.NoError(t, err)

		assert.Equal(t, 20, result.Value)
		assert.Equal(t, SourceEnv, result.Source)
	})

	t.Run("config fallback", func(t *testing.T) {
		t.Setenv("LOGPANEL_MAX_ITEMS", "")

		result, err := ResolveMaxItems(nil, 30)
		require.NoError(t, err)

		assert.Equal(t, 30, result.Value)
		assert.Equal(t, SourceConfig, result.Source)
	})

	t.Run("unset", func(t *testing.T) {
		t.Setenv("LOGPANEL_MAX_ITEMS", "")

		result, err := ResolveMaxItems(nil, 0)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Value)
		assert.Equal(t, SourceDefault, result.Source)
	})

	t.Run("invalid env", func(t *testing.T) {
		t.Setenv("LOGPANEL_MAX_ITEMS", "lots")

		_, err := ResolveMaxItems(nil, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})
}

func TestResolveLogFormat(t *testing.T) {
	t.Setenv("LOGPANEL_LOG_FORMAT", "%h env")

	result := ResolveLogFormat("%v flag", "%h config")
	assert.Equal(t, "%v flag", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "%h env", result.Shadowed[SourceEnv])
	assert.Equal(t, "%h config", result.Shadowed[SourceConfig])

	result = ResolveLogFormat("", "%h config")
	assert.Equal(t, "%h env", result.Value)
	assert.Equal(t, SourceEnv, result.Source)

	t.Setenv("LOGPANEL_LOG_FORMAT", "")
	result = ResolveLogFormat("", "%h config")
	assert.Equal(t, "%h config", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
}

func TestResolveAll(t *testing.T) {
	t.Setenv("LOGPANEL_MAX_ITEMS", "")
	t.Setenv("LOGPANEL_LOG_FORMAT", "")
	t.Setenv("LOGPANEL_CONFIG", "")

	cfg := &Config{
		Panels: PanelsConfig{Enable: []string{"VIRTUAL_HOSTS"}, Ignore: []string{"OS"}},
		Output: OutputConfig{MaxItems: 40},
		Log:    LogConfig{Format: "%h %s"},
	}

	resolved, err := ResolveAll(ResolveAllOptions{
		IgnoreFlags:      []string{"BROWSERS"},
		FormatFlags:      []string{"csv"},
		StdoutIsTerminal: true,
		Config:           cfg,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"VIRTUAL_HOSTS"}, resolved.Enable)
	assert.Equal(t, []string{"OS", "BROWSERS"}, resolved.Ignore)
	assert.Equal(t, 40, resolved.MaxItems)
	assert.Equal(t, []string{"csv"}, resolved.Formats)
	assert.True(t, resolved.OutputStdout, "requesting a format writes to stdout")
	assert.Equal(t, "%h %s", resolved.LogFormat)
	assert.Equal(t, SourceDefault, resolved.ConfigSource)
	assert.Len(t, resolved.Values, 3)

	f := resolved.Filter()
	assert.Equal(t, resolved.Enable, f.Enable)
	assert.Equal(t, resolved.Ignore, f.Ignore)

	assert.Equal(t, limits.Flags{
		MaxItems:         40,
		OutputStdout:     true,
		Formats:          []string{"csv"},
		StdoutIsTerminal: true,
	}, resolved.LimitFlags())
}

func TestResolveAll_OutputStdout(t *testing.T) {
	t.Setenv("LOGPANEL_MAX_ITEMS", "")

	tests := []struct {
		name string
		opts ResolveAllOptions
		want bool
	}{
		{"terminal UI", ResolveAllOptions{StdoutIsTerminal: true}, false},
		{"redirected stdout", ResolveAllOptions{StdoutIsTerminal: false}, true},
		{"explicit flag", ResolveAllOptions{StdoutIsTerminal: true, StdoutFlag: true}, true},
		{"config stdout", ResolveAllOptions{StdoutIsTerminal: true, Config: &Config{Output: OutputConfig{Stdout: true}}}, true},
		{"config format", ResolveAllOptions{StdoutIsTerminal: true, Config: &Config{Output: OutputConfig{Formats: []string{"json"}}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ResolveAll(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resolved.OutputStdout)
		})
	}
}

func TestResolveAll_NilConfig(t *testing.T) {
	t.Setenv("LOGPANEL_MAX_ITEMS", "")

	resolved, err := ResolveAll(ResolveAllOptions{})
	require.NoError(t, err)

	assert.Empty(t, resolved.Enable)
	assert.Zero(t, resolved.MaxItems)
}

func TestResolveAll_InvalidEnv(t *testing.T) {
	t.Setenv("LOGPANEL_MAX_ITEMS", "x")

	_, err := ResolveAll(ResolveAllOptions{})
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "flag", string(SourceFlag))
	assert.Equal(t, "env", string(SourceEnv))
	assert.Equal(t, "config", string(SourceConfig))
	assert.Equal(t, "default", string(SourceDefault))
}
