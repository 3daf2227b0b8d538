// Package store persists the game snapshot through gdata, a
// cross-platform per-app key-value storage. It is the moral
// equivalent of browser localStorage: three string-valued entries,
// replaced wholesale on every save.
package store

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/quasilyte/gdata/v2"

	"github.com/idilsaglam/zengarden/internal/model"
)

const (
	saveObject = "save"
	propTasks  = "tasks"  // JSON array of tasks
	propWater  = "water"  // stringified integer
	propGarden = "garden" // JSON array of plant instances
)

// Store reads and writes the snapshot. A nil manager puts the store
// in degraded mode: loads return defaults and saves are dropped, so
// the rest of the app keeps working without persistence.
type Store struct {
	m *gdata.Manager
}

// Open creates a Store rooted in the platform's app-data location.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, err
	}
	return &Store{m: m}, nil
}

// NewDegraded returns an in-memory-only store.
func NewDegraded() *Store { return &Store{} }

// Load reassembles the snapshot. It never fails hard: a missing key
// or an unparsable value falls back to that slot's empty default, so
// a corrupt save can cost data but never crash the app.
func (s *Store) Load() model.Snapshot {
	snap := model.Snapshot{}
	if s.m == nil {
		return snap
	}

	if b, ok := s.loadProp(propTasks); ok {
		var tasks []model.Task
		if err := json.Unmarshal(b, &tasks); err != nil {
			log.Printf("[Store] ignoring corrupt tasks entry: %v", err)
		} else {
			snap.Tasks = tasks
		}
	}

	if b, ok := s.loadProp(propWater); ok {
		n, err := strconv.Atoi(string(b))
		if err != nil || n < 0 {
			log.Printf("[Store] ignoring corrupt water entry %q", b)
		} else {
			snap.Water = n
		}
	}

	if b, ok := s.loadProp(propGarden); ok {
		var plants []model.PlantInstance
		if err := json.Unmarshal(b, &plants); err != nil {
			log.Printf("[Store] ignoring corrupt garden entry: %v", err)
		} else {
			snap.Plants = plants
		}
	}
	return snap
}

func (s *Store) loadProp(key string) ([]byte, bool) {
	if !s.m.ObjectPropExists(saveObject, key) {
		return nil, false
	}
	b, err := s.m.LoadObjectProp(saveObject, key)
	if err != nil {
		log.Printf("[Store] load %s: %v", key, err)
		return nil, false
	}
	return b, true
}

// Save writes all three entries synchronously; last write wins.
func (s *Store) Save(snap model.Snapshot) error {
	if s.m == nil {
		return nil
	}

	tasks, err := json.Marshal(tasksOrEmpty(snap.Tasks))
	if err != nil {
		return err
	}
	plants, err := json.Marshal(plantsOrEmpty(snap.Plants))
	if err != nil {
		return err
	}

	if err := s.m.SaveObjectProp(saveObject, propTasks, tasks); err != nil {
		return err
	}
	if err := s.m.SaveObjectProp(saveObject, propWater, []byte(strconv.Itoa(snap.Water))); err != nil {
		return err
	}
	return s.m.SaveObjectProp(saveObject, propGarden, plants)
}

// Marshal nil slices as [] so the stored shape is stable.
func tasksOrEmpty(ts []model.Task) []model.Task {
	if ts == nil {
		return []model.Task{}
	}
	return ts
}

func plantsOrEmpty(ps []model.PlantInstance) []model.PlantInstance {
	if ps == nil {
		return []model.PlantInstance{}
	}
	return ps
}
