package model

// PlantInstance is one purchased plant in the garden. Instances are
// append-only: once grown, a plant is never removed or edited.
type PlantInstance struct {
	TypeID     string `json:"typeId"`
	InstanceID string `json:"instanceId"`
}

// Snapshot is the complete durable state: the task list, the water
// balance and the garden, saved and loaded as one unit.
type Snapshot struct {
	Tasks  []Task
	Water  int
	Plants []PlantInstance
}
