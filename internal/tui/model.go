// Package tui is the interactive task list. Key presses become store
// actions and every transition re-renders the filtered list from scratch.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store"
	"github.com/idilsaglam/tasklist/internal/ui"
	"github.com/idilsaglam/tasklist/internal/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// header, add box, footer, help and the outer frame
	chromeHeight = 10
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the Bubble Tea model for the task list.
type Model struct {
	store *store.Store
	state view.State
	keys  keyMap

	list  list.Model
	input textinput.Model // add field
	edit  textinput.Model // live row editor
	help  help.Model

	focus    focus
	editing  bool
	editID   int
	editText string // last text sent to the store while editing

	width, height int

	copyText func(string) error
}

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the function used by the copy key.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copyText = fn }
}

// New builds the UI around s. The add field starts focused and the filter
// starts at All.
func New(s *store.Store, opts ...Option) Model {
	t := ui.Current()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetStatusBarItemName("task", "tasks")
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = t.Help
	l.Styles.NoItems = t.Muted

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "Create a new todo..."
	in.Focus()

	ed := textinput.New()
	ed.Prompt = ""

	h := help.New()
	h.Styles.ShortKey = t.Accent
	h.Styles.ShortDesc = t.Help
	h.Styles.ShortSeparator = t.Help

	m := Model{
		store:    s,
		keys:     defaultKeyMap(),
		list:     l,
		input:    in,
		edit:     ed,
		help:     h,
		focus:    focusInput,
		copyText: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.setSize(defaultWidth, defaultHeight)
	m.refresh()
	return m
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(s *store.Store, opts ...Option) error {
	p := tea.NewProgram(New(s, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch {
		case m.editing:
			return m.updateEdit(msg)
		case m.focus == focusInput:
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	// blink and paste messages belong to whichever input has focus
	var cmd tea.Cmd
	switch {
	case m.editing:
		m.edit, cmd = m.edit.Update(msg)
		m.syncEdit()
	case m.focus == focusInput:
		m.input, cmd = m.input.Update(msg)
		m.state.Input = m.input.Value()
	}
	return m, cmd
}

// add mode
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if text, ok := m.state.Submit(); ok {
			task := m.store.Add(text)
			logAction(store.Add{ID: task.ID, Text: task.Text}, m.store.Len())
			m.input.SetValue("")
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.leaveInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.Input = m.input.Value()
	return m, cmd
}

// edit mode: every change reaches the store immediately
func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit, m.keys.Done) {
		m.editing = false
		m.edit.Blur()
		m.edit.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	m.syncEdit()
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.dispatch(store.Toggle{ID: t.ID})
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.dispatch(store.Delete{ID: t.ID})
		}
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			return m.startEdit(t)
		}
	case key.Matches(msg, m.keys.All):
		m.setFilter(view.All)
	case key.Matches(msg, m.keys.Active):
		m.setFilter(view.Active)
	case key.Matches(msg, m.keys.Completed):
		m.setFilter(view.Completed)
	case key.Matches(msg, m.keys.Clear):
		m.dispatch(store.ClearCompleted{})
	case key.Matches(msg, m.keys.Theme):
		// The toggle is drawn in the header but switches nothing.
	case key.Matches(msg, m.keys.Copy):
		if t, ok := m.selected(); ok && m.copyText != nil {
			if err := m.copyText(t.Text); err != nil {
				log.Warn().Err(err).Int("id", t.ID).Msg("copy to clipboard")
			}
		}
	case key.Matches(msg, m.keys.Add):
		m.focus = focusInput
		return m, m.input.Focus()
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// startEdit opens the row editor on t. The editor is single-line and
// collapses tabs and newlines, so such text is left alone rather than
// rewritten behind the user's back.
func (m Model) startEdit(t model.Task) (tea.Model, tea.Cmd) {
	m.edit.SetValue(t.Text)
	if v := m.edit.Value(); v != t.Text {
		m.edit.SetValue("")
		log.Warn().Int("id", t.ID).Msg("task text cannot be edited on one line")
		return m, nil
	}
	m.editing = true
	m.editID = t.ID
	m.editText = t.Text
	m.edit.CursorEnd()
	return m, m.edit.Focus()
}

func (m *Model) syncEdit() {
	v := m.edit.Value()
	if v == m.editText {
		return
	}
	m.editText = v
	m.dispatch(store.Update{ID: m.editID, Text: v})
}

func (m *Model) dispatch(a store.Action) {
	m.store.Dispatch(a)
	logAction(a, m.store.Len())
	m.refresh()
}

func logAction(a store.Action, n int) {
	ev := log.Debug().Str("action", fmt.Sprintf("%T", a)).Int("tasks", n)
	switch a := a.(type) {
	case store.Add:
		ev = ev.Int("id", a.ID)
	case store.Toggle:
		ev = ev.Int("id", a.ID)
	case store.Update:
		ev = ev.Int("id", a.ID)
	case store.Delete:
		ev = ev.Int("id", a.ID)
	}
	ev.Msg("dispatch")
}

func (m *Model) setFilter(f view.Filter) {
	if m.state.Filter == f {
		return
	}
	m.state.Filter = f
	m.list.ResetSelected()
	m.refresh()
	log.Debug().Stringer("filter", f).Msg("filter selected")
}

func (m *Model) leaveInput() {
	m.focus = focusList
	m.input.Blur()
}

// refresh rebuilds the rows from the store and keeps the cursor in range.
func (m *Model) refresh() {
	tasks := view.Visible(m.store.Tasks(), m.state.Filter)
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = row{task: t}
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
}

func (m *Model) setSize(w, h int) {
	m.width, m.height = w, h
	listHeight := h - chromeHeight
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(w-4, listHeight)
	m.input.Width = w - 10
	m.help.Width = w - 4
}

func (m Model) selected() (model.Task, bool) {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return model.Task{}, false
	}
	return r.task, true
}

func (m Model) View() string {
	t := ui.Current()

	d := itemDelegate{focused: m.focus == focusList}
	if m.editing {
		d.editID = m.editID
		d.editView = m.edit.View()
	}
	m.list.SetDelegate(d)

	header := t.Title.Render("TODO") + "  " + t.Muted.Render(t.Sun)

	box := ui.Frame()
	if m.focus == focusInput {
		box = box.BorderForeground(t.Accent.GetForeground())
	}
	input := box.Width(m.width - 6).Render(m.input.View())

	var helpLine string
	switch {
	case m.editing:
		helpLine = m.help.ShortHelpView(m.keys.editHelp())
	case m.focus == focusInput:
		helpLine = m.help.ShortHelpView(m.keys.inputHelp())
	default:
		helpLine = m.help.View(m.keys)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		input,
		m.list.View(),
		m.footer(),
		helpLine,
	)
	return ui.Frame().Render(content)
}

func (m Model) footer() string {
	t := ui.Current()

	filters := make([]string, 0, len(view.Filters()))
	for _, f := range view.Filters() {
		if f == m.state.Filter {
			filters = append(filters, t.Selected.Render(f.Label()))
			continue
		}
		filters = append(filters, t.Muted.Render(f.Label()))
	}

	return strings.Join([]string{
		t.Pending.Render(view.ItemsLeft(view.Remaining(m.store.Tasks()))),
		strings.Join(filters, " "),
		t.Muted.Render("Clear Completed"),
	}, "   ")
}
