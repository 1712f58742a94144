package model

// Task is the domain model for a single todo entry.
type Task struct {
	ID        int    `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Seed returns the example tasks every session starts with.
func Seed() []Task {
	return []Task{
		{ID: 1, Text: "Complete online JavaScript course", Completed: true},
		{ID: 2, Text: "Jog around the park 3x"},
		{ID: 3, Text: "10 minutes meditation"},
		{ID: 4, Text: "Read for 1 hour"},
		{ID: 5, Text: "Pick up groceries"},
		{ID: 6, Text: "Complete Todo App on Frontend Mentor"},
	}
}

// MaxID returns the largest id in tasks, or 0 for an empty slice.
func MaxID(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.ID > n {
			n = t.ID
		}
	}
	return n
}
