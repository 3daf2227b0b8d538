package garden

import (
	"errors"
	"testing"

	"github.com/idilsaglam/zengarden/internal/model"
)

// Meditate scenario: complete → +10, unaffordable buy rejected,
// un-complete → back to 0.
func TestToggleEarnsAndRefundsWater(t *testing.T) {
	s := NewState(model.Snapshot{})
	s.AddTask("Meditate")
	id := s.Tasks[0].ID

	s.ToggleTask(id)
	if got := s.Wallet.Balance(); got != WaterPerTask {
		t.Fatalf("balance after complete: got %d, want %d", got, WaterPerTask)
	}

	if _, err := s.BuyPlant("grass"); !errors.Is(err, ErrCannotAfford) {
		t.Fatalf("buy with 10 water: got err %v, want ErrCannotAfford", err)
	}
	if got := s.Wallet.Balance(); got != WaterPerTask {
		t.Errorf("failed buy changed balance: got %d, want %d", got, WaterPerTask)
	}
	if len(s.Plants) != 0 {
		t.Errorf("failed buy changed garden: got %d plants, want 0", len(s.Plants))
	}

	s.ToggleTask(id)
	if got := s.Wallet.Balance(); got != 0 {
		t.Errorf("balance after un-complete: got %d, want 0", got)
	}
}

func TestRemoveCompletedTaskKeepsWater(t *testing.T) {
	s := NewState(model.Snapshot{})
	s.AddTask("ship it")
	id := s.Tasks[0].ID
	s.ToggleTask(id)
	s.RemoveTask(id)

	if got := s.Wallet.Balance(); got != WaterPerTask {
		t.Errorf("balance after deleting completed task: got %d, want %d", got, WaterPerTask)
	}
}

func TestBuyPlantAppendsInstance(t *testing.T) {
	s := NewState(model.Snapshot{Water: 100})

	p, err := s.BuyPlant("flower_r") // price 80
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if got := s.Wallet.Balance(); got != 20 {
		t.Errorf("balance: got %d, want 20", got)
	}
	if len(s.Plants) != 1 || s.Plants[0] != p {
		t.Fatalf("garden: got %v, want exactly the purchased instance", s.Plants)
	}
	if p.InstanceID == "" || p.TypeID != "flower_r" {
		t.Errorf("instance: got %+v", p)
	}

	if _, err := s.BuyPlant("flower_r"); !errors.Is(err, ErrCannotAfford) {
		t.Fatalf("second buy: got err %v, want ErrCannotAfford", err)
	}
	if len(s.Plants) != 1 {
		t.Errorf("garden after rejected buy: got %d plants, want 1", len(s.Plants))
	}
}

func TestBuyPlantUnknownType(t *testing.T) {
	s := NewState(model.Snapshot{Water: 1000})
	if _, err := s.BuyPlant("triffid"); !errors.Is(err, ErrUnknownPlant) {
		t.Fatalf("unknown type: got err %v, want ErrUnknownPlant", err)
	}
	if got := s.Wallet.Balance(); got != 1000 {
		t.Errorf("balance: got %d, want untouched 1000", got)
	}
}

func TestInstanceIDsAreUnique(t *testing.T) {
	s := NewState(model.Snapshot{Water: 10000})
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p, err := s.BuyPlant("grass")
		if err != nil {
			t.Fatalf("buy %d: %v", i, err)
		}
		if seen[p.InstanceID] {
			t.Fatalf("duplicate instance id %q", p.InstanceID)
		}
		seen[p.InstanceID] = true
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewState(model.Snapshot{})
	s.AddTask("a")
	s.AddTask("b")
	s.ToggleTask(s.Tasks[0].ID)
	s.BuyPlant("grass") // 10 water is not enough; garden stays empty

	snap := s.Snapshot()
	restored := NewState(snap)

	if got, want := restored.Wallet.Balance(), s.Wallet.Balance(); got != want {
		t.Errorf("restored balance: got %d, want %d", got, want)
	}
	if len(restored.Tasks) != 2 || restored.Tasks[0].Text != "b" {
		t.Errorf("restored tasks: got %v", restored.Tasks)
	}
	if len(restored.Plants) != len(s.Plants) {
		t.Errorf("restored plants: got %d, want %d", len(restored.Plants), len(s.Plants))
	}
}
