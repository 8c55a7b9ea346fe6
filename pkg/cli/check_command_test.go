//go:build !integration

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pilulerouge/latexcmd/pkg/commandconfig"
	"github.com/pilulerouge/latexcmd/pkg/contentcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `{
  "allCommands": [
    {"type": "CONTROL", "commands": ["foo", "bar"]},
    {"type": "FORMAT", "commands": [
      {"name": "baz", "tag": "b1"},
      {"name": "emph", "tag": "em"},
      "bar"
    ]}
  ],
  "environments": {"table": ["tabular"]}
}`

type checkFixture struct {
	dir     string
	config  string
	content string
}

func newCheckFixture(t *testing.T, config string) checkFixture {
	t.Helper()
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	f := checkFixture{
		dir:     dir,
		config:  filepath.Join(dir, "commands.json"),
		content: filepath.Join(dir, "book"),
	}
	require.NoError(t, os.WriteFile(f.config, []byte(config), 0o644))
	require.NoError(t, os.Mkdir(f.content, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.content, "ch1.tex"), []byte(`\begin{x}\foo \bar \qux\end{x}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(f.content, "ch2.tex"), []byte(`\baz{1} \\qux \item`), 0o644))
	return f
}

func runCheck(t *testing.T, config CheckConfig) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	config.Stdout = &stdout
	config.Stderr = &stderr
	if config.Settings.Pattern == "" {
		config.Settings = DefaultSettings()
	}
	err := RunCheck(config)
	return stdout.String(), stderr.String(), err
}

func TestRunCheck_ReportsUnknownCommands(t *testing.T) {
	f := newCheckFixture(t, testConfig)

	stdout, stderr, err := runCheck(t, CheckConfig{ConfigPath: f.config, ContentPath: f.content})
	require.NoError(t, err, "Unknown commands do not fail the run by default")

	assert.Contains(t, stdout, "Configuration file integrity verified.")
	assert.Contains(t, stdout, "Checking commands in provided document(s)...")
	assert.Contains(t, stdout, "Found unknown commands in provided document(s):\nitem\nqux\n")
	assert.Contains(t, stderr, "Command <bar> has a duplicate entry.")
	assert.Contains(t, stderr, "Command <emph> has unnumbered tag <em>")
}

func TestRunCheck_ValidateOnly(t *testing.T) {
	f := newCheckFixture(t, testConfig)

	stdout, _, err := runCheck(t, CheckConfig{ConfigPath: f.config})
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration file integrity verified.")
	assert.NotContains(t, stdout, "Checking commands")
}

func TestRunCheck_Builtins(t *testing.T) {
	f := newCheckFixture(t, testConfig)

	settings := DefaultSettings()
	settings.Builtins = []string{"item"}
	stdout, _, err := runCheck(t, CheckConfig{ConfigPath: f.config, ContentPath: f.content, Settings: settings})
	require.NoError(t, err)
	assert.Contains(t, stdout, "Found unknown commands in provided document(s):\nqux\n")
}

func TestRunCheck_Strict(t *testing.T) {
	f := newCheckFixture(t, testConfig)

	settings := DefaultSettings()
	settings.Strict = true
	_, _, err := runCheck(t, CheckConfig{ConfigPath: f.config, ContentPath: f.content, Settings: settings})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCommands)
	assert.Contains(t, err.Error(), "item, qux")
}

func TestRunCheck_StrictCleanContent(t *testing.T) {
	f := newCheckFixture(t, testConfig)
	doc := filepath.Join(f.dir, "clean.tex")
	require.NoError(t, os.WriteFile(doc, []byte(`\foo \baz`), 0o644))

	settings := DefaultSettings()
	settings.Strict = true
	stdout, _, err := runCheck(t, CheckConfig{ConfigPath: f.config, ContentPath: doc, Settings: settings})
	require.NoError(t, err)
	assert.Contains(t, stdout, "Provided content doesn't contain any unknown commands.")
}

func TestRunCheck_InvalidConfiguration(t *testing.T) {
	f := newCheckFixture(t, `{"allCommands": [{"type": "FORMAT", "commands": [{"name": "foo"}]}]}`)

	stdout, _, err := runCheck(t, CheckConfig{ConfigPath: f.config, ContentPath: f.content})
	require.Error(t, err)

	var v *commandconfig.Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, commandconfig.KindMissingTag, v.Kind)
	assert.NotContains(t, stdout, "Checking commands", "Content is not scanned when the configuration is invalid")
}

func TestRunCheck_PathErrors(t *testing.T) {
	f := newCheckFixture(t, testConfig)

	_, _, err := runCheck(t, CheckConfig{ConfigPath: filepath.Join(f.dir, "absent.json")})
	require.ErrorIs(t, err, commandconfig.ErrConfigPathInvalid)

	_, _, err = runCheck(t, CheckConfig{ConfigPath: f.config, ContentPath: filepath.Join(f.dir, "absent")})
	require.ErrorIs(t, err, contentcheck.ErrContentPathMissing)
}

func TestRunCheck_JSON(t *testing.T) {
	f := newCheckFixture(t, testConfig)

	stdout, stderr, err := runCheck(t, CheckConfig{ConfigPath: f.config, ContentPath: f.content, JSONOutput: true})
	require.NoError(t, err)
	assert.Empty(t, stderr, "JSON mode carries warnings in the document")

	var summary checkSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary), "stdout should be a single JSON document")
	assert.True(t, summary.Valid)
	assert.Equal(t, 4, summary.Commands)
	assert.Len(t, summary.Warnings, 2)
	assert.Equal(t, []string{filepath.Join(f.content, "ch1.tex"), filepath.Join(f.content, "ch2.tex")}, summary.Files)
	assert.Equal(t, []contentcheck.Finding{
		{Command: "item", File: filepath.Join(f.content, "ch2.tex")},
		{Command: "qux", File: filepath.Join(f.content, "ch1.tex")},
	}, summary.Unknown)
}

func TestRunCheck_FormatBareNameIsKnown(t *testing.T) {
	f := newCheckFixture(t, `{"allCommands": [
		{"type": "FORMAT", "commands": ["foo", {"name": "bar", "tag": "b1"}]},
		{"type": "CONTROL", "commands": ["baz"]}
	]}`)
	chapter := filepath.Join(f.dir, "chapter.tex")
	require.NoError(t, os.WriteFile(chapter, []byte(`\foo{} \bar{} \qux{}`), 0o644))

	stdout, stderr, err := runCheck(t, CheckConfig{ConfigPath: f.config, ContentPath: chapter})
	require.NoError(t, err)
	assert.Empty(t, stderr, "Bare FORMAT names raise no warning")
	assert.True(t, strings.HasSuffix(stdout, "Found unknown commands in provided document(s):\nqux\n"),
		"Only qux should be reported, got:\n%s", stdout)

	stdout, _, err = runCheck(t, CheckConfig{ConfigPath: f.config, ContentPath: chapter, JSONOutput: true})
	require.NoError(t, err)
	var summary checkSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, []contentcheck.Finding{{Command: "qux", File: chapter}}, summary.Unknown)
}

func TestRunCheck_JSONInvalid(t *testing.T) {
	f := newCheckFixture(t, `{"allCommands": [{"type": "FORMAT", "commands": [
		{"name": "a", "tag": "3x"},
		{"name": "b", "tag": "b1"},
		{"name": "c", "tag": "b1"}
	]}]}`)

	settings := DefaultSettings()
	settings.KeepGoing = true
	stdout, _, err := runCheck(t, CheckConfig{ConfigPath: f.config, Settings: settings, JSONOutput: true})
	require.Error(t, err)

	var summary struct {
		Valid  bool `json:"valid"`
		Errors []struct {
			Kind    string `json:"kind"`
			Command string `json:"command"`
		} `json:"errors"`
		Unknown []any `json:"unknown"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.False(t, summary.Valid)
	require.Len(t, summary.Errors, 2)
	assert.Equal(t, "invalid-tag", summary.Errors[0].Kind)
	assert.Equal(t, "duplicate-tag", summary.Errors[1].Kind)
	assert.Equal(t, "c", summary.Errors[1].Command)
	assert.NotNil(t, summary.Unknown, "unknown is always a list")
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "check", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"settings", "keep-going", "json", "pattern", "builtin", "strict"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "check command should have a --%s flag", name)
	}
	assert.Equal(t, "j", cmd.Flags().Lookup("json").Shorthand)

	require.Error(t, cmd.Args(cmd, []string{}), "config path is required")
	require.NoError(t, cmd.Args(cmd, []string{"a.json"}))
	require.NoError(t, cmd.Args(cmd, []string{"a.json", "book"}))
	require.Error(t, cmd.Args(cmd, []string{"a.json", "book", "extra"}))
}

func TestCheckCommand_Execute(t *testing.T) {
	f := newCheckFixture(t, testConfig)

	cmd := NewCheckCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{f.config, f.content, "--builtin", "item,qux", "--strict"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Provided content doesn't contain any unknown commands.")
}

func TestCheckCommand_ExecuteStrictFailure(t *testing.T) {
	f := newCheckFixture(t, testConfig)

	cmd := NewCheckCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{f.config, f.content, "--strict", "--pattern", "ch1.tex"})

	err := cmd.Execute()
	require.ErrorIs(t, err, ErrUnknownCommands)
	assert.Contains(t, err.Error(), "qux")
	assert.NotContains(t, err.Error(), "item", "ch2.tex is not scanned")
}
