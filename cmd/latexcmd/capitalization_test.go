//go:build !integration

package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// TestCapitalizationConsistency verifies that short descriptions start with
// an uppercase letter and carry no trailing period, and that "LaTeX" keeps
// its usual casing.
func TestCapitalizationConsistency(t *testing.T) {
	commands := append([]*cobra.Command{rootCmd}, rootCmd.Commands()...)

	for _, cmd := range commands {
		if cmd.Hidden || cmd.Short == "" {
			continue
		}
		first := cmd.Short[:1]
		if strings.ToUpper(first) != first {
			t.Errorf("Command '%s' Short description should start with an uppercase letter, got: %s", cmd.Name(), cmd.Short)
		}
		if strings.HasSuffix(cmd.Short, ".") {
			t.Errorf("Command '%s' Short description should not end with a period, got: %s", cmd.Name(), cmd.Short)
		}
		for _, text := range []string{cmd.Short, cmd.Long} {
			if strings.Contains(strings.ToLower(text), "latex") && !strings.Contains(text, "LaTeX") {
				t.Errorf("Command '%s' should spell 'LaTeX' with its usual casing, got: %s", cmd.Name(), text)
			}
		}
	}
}
