//go:build !integration

package contentcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCommands(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "plain text", text: "no commands here", want: nil},
		{name: "single command", text: `\foo{x}`, want: []string{"foo"}},
		{name: "repeated commands", text: `\bar \bar \baz`, want: []string{"bar", "bar", "baz"}},
		{name: "escaped backslash", text: `\\foo and \bar`, want: []string{"bar"}},
		{name: "single letter", text: `\a \b{x}`, want: nil},
		{name: "uppercase stops the name", text: `\emPh`, want: []string{"em"}},
		{name: "uppercase first letter", text: `\Large`, want: nil},
		{name: "adjacent commands", text: `\foo\bar`, want: []string{"foo", "bar"}},
		{name: "triple backslash", text: `\\\foo`, want: nil},
		{name: "digits end the name", text: `\ab1`, want: []string{"ab"}},
		{name: "commented out", text: "% \\todo later", want: []string{"todo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCommands(tt.text))
		})
	}
}
