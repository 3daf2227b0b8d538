package garden

import (
	"math"
	"strings"

	"github.com/idilsaglam/zengarden/internal/model"
)

// Filter selects which tasks a projection shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// NextFilter cycles through the filter tabs in display order.
func NextFilter(f Filter) Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// TaskList is an ordered task collection, most recent first.
type TaskList []model.Task

// Add prepends a new task. Blank text (after trimming) is a no-op.
func (l *TaskList) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	t := model.Task{ID: model.NewID(), Text: text}
	*l = append([]model.Task{t}, *l...)
	return true
}

// Toggle flips the completed flag of the task with the given id.
// It reports the task's new completed state; ok is false when no task
// matched and nothing changed.
func (l TaskList) Toggle(id string) (completed, ok bool) {
	for i := range l {
		if l[i].ID == id {
			l[i].Completed = !l[i].Completed
			return l[i].Completed, true
		}
	}
	return false, false
}

// Remove deletes the task with the given id; unknown ids are a no-op.
func (l *TaskList) Remove(id string) bool {
	for i, t := range *l {
		if t.ID == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// Filtered returns the tasks matching f without touching list order.
func (l TaskList) Filtered(f Filter) TaskList {
	if f == FilterAll {
		return l
	}
	out := make(TaskList, 0, len(l))
	for _, t := range l {
		if t.Completed == (f == FilterCompleted) {
			out = append(out, t)
		}
	}
	return out
}

// Stats counts completed and total tasks.
func (l TaskList) Stats() (done, total int) {
	for _, t := range l {
		if t.Completed {
			done++
		}
	}
	return done, len(l)
}

// Progress is the completion percentage, rounded to the nearest
// integer; an empty list reports 0.
func (l TaskList) Progress() int {
	done, total := l.Stats()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
