package model

// Task is the domain model for a single todo entry.
// Kept minimal on purpose; it’s easy to evolve.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
