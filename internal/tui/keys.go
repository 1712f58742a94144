package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Edit      key.Binding
	All       key.Binding
	Active    key.Binding
	Completed key.Binding
	Filters   key.Binding // help only
	Clear     key.Binding
	Theme     key.Binding
	Copy      key.Binding
	Add       key.Binding
	Submit    key.Binding
	Back      key.Binding
	Done      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		All:       key.NewBinding(key.WithKeys("1")),
		Active:    key.NewBinding(key.WithKeys("2")),
		Completed: key.NewBinding(key.WithKeys("3")),
		Filters:   key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "filter")),
		Clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear completed")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Add:       key.NewBinding(key.WithKeys("a", "tab"), key.WithHelp("a", "add")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Back:      key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "list")),
		Done:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Edit, k.Add, k.Filters, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete, k.Edit},
		{k.Add, k.Filters, k.Clear, k.Copy, k.Theme, k.Quit},
	}
}

// inputHelp is shown while the add field has focus.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Back}
}

func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Done}
}
