package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// row adapts model.Task to bubbles/list.Item
type row struct {
	task model.Task
}

func (r row) FilterValue() string { return r.task.Text }

// Custom delegate to control how rows render (single line).
// The row being edited shows the live editor instead of its text.
type itemDelegate struct {
	focused  bool
	editID   int
	editView string
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	text := r.task.Text
	if r.task.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	if d.editView != "" && r.task.ID == d.editID {
		text = d.editView
	}

	prefix := "  "
	if d.focused && index == m.Index() {
		prefix = t.Selected.Render(t.Cursor)
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}
