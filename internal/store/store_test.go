package store

import (
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/idilsaglam/zengarden/internal/model"
)

// openTestStore points gdata at a throwaway HOME so tests never touch
// real app data.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	s, err := Open("zengarden_test")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := model.Snapshot{
		Tasks: []model.Task{
			{ID: "t1", Text: "Meditate", Completed: true},
			{ID: "t2", Text: "Stretch"},
		},
		Water: 40,
		Plants: []model.PlantInstance{
			{TypeID: "grass", InstanceID: "p1"},
		},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out := s.Load()
	if len(out.Tasks) != 2 || out.Tasks[0] != in.Tasks[0] {
		t.Errorf("tasks: got %v, want %v", out.Tasks, in.Tasks)
	}
	if out.Water != 40 {
		t.Errorf("water: got %d, want 40", out.Water)
	}
	if len(out.Plants) != 1 || out.Plants[0] != in.Plants[0] {
		t.Errorf("plants: got %v, want %v", out.Plants, in.Plants)
	}
}

func TestLoadFirstRunDefaults(t *testing.T) {
	s := openTestStore(t)

	snap := s.Load()
	if len(snap.Tasks) != 0 || snap.Water != 0 || len(snap.Plants) != 0 {
		t.Errorf("first run should be empty, got %+v", snap)
	}
}

func TestLoadToleratesCorruptEntries(t *testing.T) {
	s := openTestStore(t)

	// Write garbage straight through the manager, bypassing Save.
	m, err := gdata.Open(gdata.Config{AppName: "zengarden_test"})
	if err != nil {
		t.Fatalf("open gdata: %v", err)
	}
	m.SaveObjectProp(saveObject, propTasks, []byte("{not json"))
	m.SaveObjectProp(saveObject, propWater, []byte("lots"))
	m.SaveObjectProp(saveObject, propGarden, []byte("[[["))

	snap := s.Load()
	if len(snap.Tasks) != 0 || snap.Water != 0 || len(snap.Plants) != 0 {
		t.Errorf("corrupt entries should fall back to defaults, got %+v", snap)
	}
}

func TestLoadToleratesPartialCorruption(t *testing.T) {
	s := openTestStore(t)
	s.Save(model.Snapshot{Water: 70})

	m, err := gdata.Open(gdata.Config{AppName: "zengarden_test"})
	if err != nil {
		t.Fatalf("open gdata: %v", err)
	}
	m.SaveObjectProp(saveObject, propTasks, []byte("oops"))

	snap := s.Load()
	if snap.Water != 70 {
		t.Errorf("water: got %d, want 70 (only tasks were corrupt)", snap.Water)
	}
	if len(snap.Tasks) != 0 {
		t.Errorf("tasks: got %v, want defaults", snap.Tasks)
	}
}

func TestDegradedStore(t *testing.T) {
	s := NewDegraded()
	if err := s.Save(model.Snapshot{Water: 5}); err != nil {
		t.Errorf("degraded save should be a silent no-op, got %v", err)
	}
	snap := s.Load()
	if snap.Water != 0 {
		t.Errorf("degraded load: got %d, want 0", snap.Water)
	}
}
