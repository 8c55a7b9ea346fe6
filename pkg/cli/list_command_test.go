//go:build !integration

package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pilulerouge/latexcmd/pkg/commandconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeList(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewListCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestListCommand_Text(t *testing.T) {
	f := newCheckFixture(t, testConfig)

	out, err := executeList(t, f.config)
	require.NoError(t, err)

	assert.Contains(t, out, "Configuration: "+f.config)
	assert.Contains(t, out, "## Declared Commands")
	assert.Contains(t, out, "## Table Environments")
	assert.Contains(t, out, "• tabular")
	assert.NotContains(t, out, "Consuming Options", "Empty environment lists are omitted")
	for _, name := range []string{"foo", "bar", "baz", "emph"} {
		assert.Contains(t, out, name)
	}
}

func TestListCommand_TypeFilterJSON(t *testing.T) {
	f := newCheckFixture(t, testConfig)

	out, err := executeList(t, f.config, "--type", "format", "--json")
	require.NoError(t, err)

	var listing configListing
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	assert.Equal(t, 4, listing.Commands)
	assert.Equal(t, []commandconfig.Definition{
		{Name: "baz", Type: "FORMAT", Tag: "b1"},
		{Name: "emph", Type: "FORMAT", Tag: "em"},
	}, listing.Definitions)
	assert.Equal(t, []string{"tabular"}, listing.Tables)
}

func TestListCommand_InvalidConfiguration(t *testing.T) {
	f := newCheckFixture(t, `{"allCommands": 3}`)

	_, err := executeList(t, f.config)
	var v *commandconfig.Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, commandconfig.KindDamaged, v.Kind)
}
