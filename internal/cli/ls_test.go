package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store"
	"github.com/idilsaglam/tasklist/internal/ui"
	"github.com/idilsaglam/tasklist/internal/view"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { _ = ui.SetTheme("classic") })

	cmd, a, err := newRootCmd()
	require.NoError(t, err)
	t.Cleanup(a.close)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), err
}

func TestListAll(t *testing.T) {
	out, err := execute(t, "ls", "--theme", "mono")
	require.NoError(t, err)

	for _, task := range model.Seed() {
		assert.Contains(t, out, task.Text)
	}
	assert.Contains(t, out, "[x] Complete online JavaScript course")
	assert.Contains(t, out, "[ ] Jog around the park 3x")
	assert.Contains(t, out, "5 items left")
	assert.Contains(t, out, "[All]")
}

func TestListActive(t *testing.T) {
	out, err := execute(t, "ls", "--theme", "mono", "--filter", "active")
	require.NoError(t, err)

	assert.NotContains(t, out, "Complete online JavaScript course")
	assert.Contains(t, out, "Jog around the park 3x")
	assert.Contains(t, out, "5 items left")
	assert.Contains(t, out, "[Active]")
}

func TestListUnknownFilter(t *testing.T) {
	_, err := execute(t, "ls", "--filter", "done")
	assert.ErrorContains(t, err, `unknown filter "done"`)
}

func TestListUnknownTheme(t *testing.T) {
	_, err := execute(t, "ls", "--theme", "solarized")
	assert.ErrorContains(t, err, "theme")
}

func TestListSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- text: Water the plants\n- text: Fix the bike\n  completed: true\n"), 0o644))

	out, err := execute(t, "ls", "--theme", "mono", "--seed", path, "--filter", "completed")
	require.NoError(t, err)

	assert.Contains(t, out, "[x] Fix the bike")
	assert.NotContains(t, out, "Water the plants")
	assert.Contains(t, out, "1 items left")
}

func TestListBadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: 1\n"), 0o644))

	_, err := execute(t, "ls", "--seed", path)
	assert.ErrorContains(t, err, "seed schema validation failed")
}

func TestListMarkdown(t *testing.T) {
	out, err := execute(t, "ls", "--theme", "mono", "--markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "TODO")
	assert.Contains(t, out, "Jog around the park 3x")
	assert.Contains(t, out, "5 items left")
}

func TestMarkdownList(t *testing.T) {
	tasks := store.Reduce(model.Seed()[:3], store.Toggle{ID: 3})

	got := markdownList(tasks, listOptions{Filter: view.All})
	want := strings.Join([]string{
		"# TODO",
		"",
		"- [x] Complete online JavaScript course",
		"- [ ] Jog around the park 3x",
		"- [x] 10 minutes meditation",
		"",
		"1 items left",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestMarkdownListEscapesText(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Text: "*x*"},
		{ID: 2, Text: "# y"},
		{ID: 3, Text: "a\\b [link](url) `code`"},
	}

	got := markdownList(tasks, listOptions{Filter: view.All})
	assert.Contains(t, got, "- [ ] \\*x\\*\n")
	assert.Contains(t, got, "- [ ] \\# y\n")
	assert.Contains(t, got, "- [ ] a\\\\b \\[link\\](url) \\`code\\`\n")

	require.NoError(t, ui.SetTheme("mono"))
	t.Cleanup(func() { _ = ui.SetTheme("classic") })
	out, err := renderMarkdown(got)
	require.NoError(t, err)
	assert.Contains(t, out, "*x*")
	assert.Contains(t, out, "# y")
}

func TestMarkdownListGrouped(t *testing.T) {
	got := markdownList(model.Seed()[:2], listOptions{Filter: view.Completed, Group: true})

	assert.Equal(t, strings.Join([]string{
		"# TODO",
		"",
		"## Active",
		"",
		"_no tasks_",
		"",
		"## Completed",
		"",
		"- [x] Complete online JavaScript course",
		"",
		"1 items left",
		"",
	}, "\n"), got)
}

func TestGroupLines(t *testing.T) {
	t.Cleanup(func() { _ = ui.SetTheme("classic") })
	require.NoError(t, ui.SetTheme("mono"))

	lines := groupLines(model.Seed()[:2])
	assert.Equal(t, []string{
		"Active",
		" 2. [ ] Jog around the park 3x",
		"",
		"Completed",
		" 1. [x] Complete online JavaScript course",
	}, lines)

	assert.Equal(t, []string{"Active", "(none)", "", "Completed", "(none)"}, groupLines(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 80))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}
