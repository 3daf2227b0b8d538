package garden

import (
	"errors"
	"fmt"
	"log"

	"github.com/idilsaglam/zengarden/internal/model"
)

var (
	// ErrUnknownPlant reports a typeId missing from the catalog.
	ErrUnknownPlant = errors.New("unknown plant type")
	// ErrCannotAfford reports a purchase the balance does not cover.
	ErrCannotAfford = errors.New("not enough water")
)

// State is the whole mutable game state: tasks, wallet and owned
// plants. All mutations run synchronously inside one event handler,
// so no locking is needed.
type State struct {
	Tasks  TaskList
	Wallet Wallet
	Plants []model.PlantInstance
}

// NewState restores a State from a snapshot.
func NewState(snap model.Snapshot) *State {
	s := &State{
		Tasks:  TaskList(snap.Tasks),
		Plants: snap.Plants,
	}
	s.Wallet.Credit(snap.Water)
	return s
}

// Snapshot captures the persistable triple.
func (s *State) Snapshot() model.Snapshot {
	return model.Snapshot{
		Tasks:  []model.Task(s.Tasks),
		Water:  s.Wallet.Balance(),
		Plants: s.Plants,
	}
}

// AddTask creates a task from text; blank input is ignored.
func (s *State) AddTask(text string) bool {
	return s.Tasks.Add(text)
}

// ToggleTask flips a task and moves the bound water in the same step:
// completing credits WaterPerTask, un-completing debits it (clamped
// at zero).
func (s *State) ToggleTask(id string) bool {
	completed, ok := s.Tasks.Toggle(id)
	if !ok {
		return false
	}
	if completed {
		s.Wallet.Credit(WaterPerTask)
	} else {
		s.Wallet.Debit(WaterPerTask)
	}
	return true
}

// RemoveTask deletes a task. Earned water stays earned: deleting a
// completed task never claws its credit back.
func (s *State) RemoveTask(id string) bool {
	return s.Tasks.Remove(id)
}

// BuyPlant purchases one plant of the given type and appends it to
// the garden. On any failure no state changes.
func (s *State) BuyPlant(typeID string) (model.PlantInstance, error) {
	entry, ok := LookupType(typeID)
	if !ok {
		log.Printf("[Garden] rejected purchase of unknown type %q", typeID)
		return model.PlantInstance{}, fmt.Errorf("%w: %s", ErrUnknownPlant, typeID)
	}
	if !s.Wallet.Purchase(entry.Price) {
		return model.PlantInstance{}, fmt.Errorf("%w: %s costs %d, have %d",
			ErrCannotAfford, entry.TypeID, entry.Price, s.Wallet.Balance())
	}
	p := model.PlantInstance{TypeID: entry.TypeID, InstanceID: model.NewID()}
	s.Plants = append(s.Plants, p)
	return p, nil
}
