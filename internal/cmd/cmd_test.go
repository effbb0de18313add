package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
)

// executeRoot runs the root command with an isolated environment and
// returns its stdout.
func executeRoot(t *testing.T, terminal bool, args ...string) (string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LOGPANEL_CONFIG", filepath.Join(home, ".logpanel", "config.yaml"))
	t.Setenv("LOGPANEL_MAX_ITEMS", "")
	t.Setenv("LOGPANEL_LOG_FORMAT", "")
	t.Setenv("LOGPANEL_REAL_TIME_HTML", "")
	t.Setenv("LOGPANEL_STDOUT", "")

	return executeRootWithEnv(t, terminal, args...)
}

// executeRootWithEnv runs the root command without resetting the environment.
func executeRootWithEnv(t *testing.T, terminal bool, args ...string) (string, error) {
	t.Helper()

	orig := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return terminal }
	t.Cleanup(func() { stdoutIsTerminal = orig })

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}
