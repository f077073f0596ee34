package main

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Neev4n/minishell/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRC(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func runRoot(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}

	cmd := newRootCmd(strings.NewReader(input), out, errw)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errw.String(), err
}

func TestRootCmd_RunsUntilExit(t *testing.T) {
	rc := writeRC(t, "MINISHELL_NO_COLOR=true\n")

	out, _, err := runRoot(t, "help\nexit\n", "--config", rc)

	require.NoError(t, err)
	assert.Contains(t, out, ">_")
	assert.Contains(t, out, "- openfile   |")
}

func TestRootCmd_EndOfInputIsCleanExit(t *testing.T) {
	rc := writeRC(t, "")

	_, _, err := runRoot(t, "", "--config", rc, "--no-color")

	require.NoError(t, err)
}

func TestRootCmd_FatalErrorIsReturned(t *testing.T) {
	rc := writeRC(t, "")

	_, _, err := runRoot(t, "openfile /definitely/not/here.txt\n", "--config", rc, "--no-color")

	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	rc := writeRC(t, "")

	_, _, err := runRoot(t, "exit\n", "--config", rc, "--log-level", "chatty")

	require.ErrorIs(t, err, config.ErrInvalidLevel)
}

func TestRootCmd_MissingExplicitConfig(t *testing.T) {
	_, _, err := runRoot(t, "exit\n", "--config", filepath.Join(t.TempDir(), "absent"))

	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	_, _, err := runRoot(t, "exit\n", "extra")

	require.Error(t, err)
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	rc := writeRC(t, "MINISHELL_LOG_LEVEL=error\nMINISHELL_SEARCH_PRESERVE_CASE=true\n")

	opts := &options{}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addFlags(flags, opts)
	require.NoError(t, flags.Parse([]string{"--config", rc, "--log-level", "debug", "--preserve-case=false"}))

	cfg, err := resolveConfig(flags, opts)

	require.NoError(t, err)
	assert.Equal(t, &config.Config{LogLevel: slog.LevelDebug, NoColor: false, PreserveCase: false}, cfg)
}

func TestResolveConfig_FileValuesKeptWithoutFlags(t *testing.T) {
	rc := writeRC(t, "MINISHELL_LOG_LEVEL=error\nMINISHELL_NO_COLOR=true\nMINISHELL_SEARCH_PRESERVE_CASE=true\n")

	opts := &options{}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addFlags(flags, opts)
	require.NoError(t, flags.Parse([]string{"-c", rc}))

	cfg, err := resolveConfig(flags, opts)

	require.NoError(t, err)
	assert.Equal(t, &config.Config{LogLevel: slog.LevelError, NoColor: true, PreserveCase: true}, cfg)
}
