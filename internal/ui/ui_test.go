package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name              string
		done, total, wdth int
		want              string
	}{
		{name: "empty", done: 0, total: 4, wdth: 8, want: "░░░░░░░░   0%"},
		{name: "half", done: 2, total: 4, wdth: 8, want: "████░░░░  50%"},
		{name: "full", done: 4, total: 4, wdth: 8, want: "████████ 100%"},
		{name: "no tasks", done: 0, total: 0, wdth: 5, want: "░░░░░   0%"},
		{name: "min width", done: 1, total: 1, wdth: 2, want: "█████ 100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressBar(tt.done, tt.total, tt.wdth))
		})
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { _ = SetTheme("classic") })

	require.NoError(t, SetTheme("MONO"))
	assert.Equal(t, "mono", Current().Name)
	assert.Equal(t, "[x]", Current().BoxChecked)

	require.NoError(t, SetTheme("neon"))
	assert.Equal(t, "◼", Current().BoxChecked)

	err := SetTheme("solarized")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classic, neon, mono")
	assert.Equal(t, "neon", Current().Name)
}

func TestPanelContainsLines(t *testing.T) {
	out := Panel([]string{"first", "second"})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "first")
	assert.Contains(t, lines[2], "second")
}

func TestFail(t *testing.T) {
	var buf bytes.Buffer
	Fail(&buf, "boom")
	assert.Contains(t, buf.String(), "✖ boom")
}
