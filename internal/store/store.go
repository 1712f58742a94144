// Package store holds the ordered task list and the reducer that applies
// actions to it.
package store

import "github.com/idilsaglam/tasklist/internal/model"

// Action is a discrete state transition applied by Reduce.
type Action interface {
	action()
}

// Add appends a new incomplete task. The caller picks the id and is
// responsible for rejecting blank text.
type Add struct {
	ID   int
	Text string
}

// Toggle flips the completion flag of the task with ID.
type Toggle struct{ ID int }

// Update replaces the text of the task with ID verbatim.
type Update struct {
	ID   int
	Text string
}

// Delete removes the task with ID.
type Delete struct{ ID int }

// ClearCompleted removes every completed task.
type ClearCompleted struct{}

func (Add) action()            {}
func (Toggle) action()         {}
func (Update) action()         {}
func (Delete) action()         {}
func (ClearCompleted) action() {}

// Reduce returns the list that results from applying a to tasks.
// tasks is never modified; the result is always a new slice.
// Actions that name an unknown id leave the list as it was.
func Reduce(tasks []model.Task, a Action) []model.Task {
	switch a := a.(type) {
	case Add:
		out := make([]model.Task, 0, len(tasks)+1)
		out = append(out, tasks...)
		return append(out, model.Task{ID: a.ID, Text: a.Text})
	case Toggle:
		return mapTasks(tasks, a.ID, func(t model.Task) model.Task {
			t.Completed = !t.Completed
			return t
		})
	case Update:
		return mapTasks(tasks, a.ID, func(t model.Task) model.Task {
			t.Text = a.Text
			return t
		})
	case Delete:
		return filterTasks(tasks, func(t model.Task) bool { return t.ID != a.ID })
	case ClearCompleted:
		return filterTasks(tasks, func(t model.Task) bool { return !t.Completed })
	}
	return clone(tasks)
}

func mapTasks(tasks []model.Task, id int, fn func(model.Task) model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t = fn(t)
		}
		out[i] = t
	}
	return out
}

func filterTasks(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func clone(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}

// Store owns the authoritative task list for a session.
// It is not safe for concurrent use; the UI event loop is its only writer.
type Store struct {
	tasks  []model.Task
	nextID int
}

// New returns a store seeded with a copy of seed.
func New(seed []model.Task) *Store {
	return &Store{
		tasks:  clone(seed),
		nextID: model.MaxID(seed) + 1,
	}
}

// Tasks returns a copy of the current list.
func (s *Store) Tasks() []model.Task { return clone(s.tasks) }

// Len reports the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Dispatch applies a to the list.
func (s *Store) Dispatch(a Action) {
	if add, ok := a.(Add); ok && add.ID >= s.nextID {
		s.nextID = add.ID + 1
	}
	s.tasks = Reduce(s.tasks, a)
}

// NextID returns the id the next Add will receive.
// Ids grow monotonically, so deleted ids are never handed out again.
func (s *Store) NextID() int { return s.nextID }

// Add appends text as a new task with a fresh id and returns it.
func (s *Store) Add(text string) model.Task {
	a := Add{ID: s.nextID, Text: text}
	s.Dispatch(a)
	return model.Task{ID: a.ID, Text: a.Text}
}
