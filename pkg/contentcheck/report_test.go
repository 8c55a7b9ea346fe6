//go:build !integration

package contentcheck

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/require"
)

func TestReport_WriteText(t *testing.T) {
	tests := []struct {
		name   string
		report *Report
	}{
		{
			name:   "clean",
			report: &Report{Files: []string{"a.tex"}},
		},
		{
			name: "unknown",
			report: &Report{
				Files: []string{"a.tex", "b.tex"},
				Unknown: []Finding{
					{Command: "qux", File: "a.tex"},
					{Command: "zap", File: "b.tex"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.report.WriteText(&buf))
			golden.RequireEqual(t, buf.Bytes())
		})
	}
}
