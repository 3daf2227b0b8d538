// Package scene turns the garden's plant list into an animated
// pseudo-3D picture. The model side (meshes, placement, growth, sway)
// is plain data so it stays testable without a terminal; the Renderer
// rasterizes it into colored cells.
package scene

import (
	"log"
	"math"

	"github.com/idilsaglam/zengarden/internal/garden"
	"github.com/idilsaglam/zengarden/internal/model"
)

// Animation constants, per display tick / elapsed seconds.
const (
	GrowthStep    = 0.02 // full growth in ~50 ticks
	SwayAmplitude = 0.05 // radians
	swayPhaseStep = 0.5  // per rebuild-order index
)

// Visual is the runtime-only view of one plant instance: its mesh,
// its deterministic spot, and transient growth/sway state.
type Visual struct {
	Instance model.PlantInstance
	Entry    garden.CatalogEntry
	Mesh     Group
	X, Z     float64

	Growth float64 // 0 just planted .. 1 fully grown
	TiltX  float64 // current sway, radians
	TiltZ  float64
}

// Scene holds the live visuals. Sync rebuilds them from scratch;
// Advance steps the animation.
type Scene struct {
	visuals []*Visual
}

func New() *Scene { return &Scene{} }

// Sync discards every visual and rebuilds from the given plant list,
// in order. Growth restarts at 0 for every plant, including ones that
// were fully grown before the rebuild. That reset is deliberate and
// carried over from the first version of this toy; see DESIGN.md.
func (s *Scene) Sync(plants []model.PlantInstance) {
	s.visuals = s.visuals[:0]
	for _, p := range plants {
		entry, ok := garden.LookupType(p.TypeID)
		if !ok {
			// A stale save can reference a retired type; skip it.
			log.Printf("[Scene] skipping plant with unknown type %q", p.TypeID)
			continue
		}
		x, z := Placement(p.InstanceID)
		s.visuals = append(s.visuals, &Visual{
			Instance: p,
			Entry:    entry,
			Mesh:     BuildMesh(entry),
			X:        x,
			Z:        z,
		})
	}
}

// Advance steps growth and recomputes the idle sway for elapsed wall
// clock t (seconds). Sway phase comes from the rebuild-order index,
// not from plant identity, matching the original behavior.
func (s *Scene) Advance(t float64) {
	for i, v := range s.visuals {
		if v.Growth < 1 {
			v.Growth += GrowthStep
			if v.Growth > 1 {
				v.Growth = 1
			}
		}
		phase := float64(i) * swayPhaseStep
		v.TiltZ = math.Sin(t+phase) * SwayAmplitude
		v.TiltX = math.Cos(t*0.8+phase) * SwayAmplitude
	}
}

// Visuals exposes the live visuals in rebuild order.
func (s *Scene) Visuals() []*Visual { return s.visuals }
