package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TsubasaBE/go-cellfmt/locale"
)

func TestMain(m *testing.M) {
	homedir.DisableCache = true
	os.Exit(m.Run())
}

// execute runs a fresh command tree with an empty home directory so that no
// user config file is picked up.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootVersion(t *testing.T) {
	out, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.0.0")
}

func TestRootLocaleFlag(t *testing.T) {
	out, _, err := execute(t, "", "--locale", "de-DE", "format", "#,##0.00", "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "1.234,50\n", out)
}

func TestRootLocaleFromEnv(t *testing.T) {
	t.Setenv("CELLFMT_LOCALE", "de-DE")
	out, _, err := execute(t, "", "format", "mmmm", "45292")
	require.NoError(t, err)
	assert.Equal(t, "Januar\n", out)
}

func TestRootFlagBeatsEnv(t *testing.T) {
	t.Setenv("CELLFMT_LOCALE", "de-DE")
	out, _, err := execute(t, "", "--locale", "en-US", "format", "mmmm", "45292")
	require.NoError(t, err)
	assert.Equal(t, "January\n", out)
}

func TestRootConfigFile(t *testing.T) {
	cfg := writeFile(t, "cellfmt.yaml", "locale: fr-FR\ndate1904: true\n")
	out, _, err := execute(t, "", "--config", cfg, "format", "dddd d mmmm yyyy", "0")
	require.NoError(t, err)
	assert.Equal(t, "vendredi 1 janvier 1904\n", out)
}

func TestRootConfigFileInHome(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".cellfmt.yaml"), []byte("locale: es-ES\n"), 0o600))

	cmd := newRootCmd()
	t.Setenv("HOME", home)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"format", "0.0", "2.5"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "2,5\n", stdout.String())
}

func TestRootMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "builtin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestRootLocaleFile(t *testing.T) {
	path := writeFile(t, "swiss.yaml", `tag: de-CH
decimal_separator: "."
thousands_separator: "'"
`)
	out, _, err := execute(t, "", "--locale-file", path, "format", "#,##0.00", "1234567.5")
	require.NoError(t, err)
	assert.Equal(t, "1'234'567.50\n", out)
}

func TestRootUnknownLocale(t *testing.T) {
	_, _, err := execute(t, "", "--locale", "zu", "builtin")
	require.Error(t, err)
	require.ErrorIs(t, err, locale.ErrUnknownLocale)
}

func TestRootBadLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "loud", "builtin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestRootDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "debug", "format", "0.00", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "engine ready")
	assert.Contains(t, stderr, "numfmt: cached")
}

func TestRootDefaultLogLevelIsQuiet(t *testing.T) {
	_, stderr, err := execute(t, "", "format", "0.00", "1")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
