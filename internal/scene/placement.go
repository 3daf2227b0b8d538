package scene

import (
	"hash/fnv"
	"math"
)

// PlacementRadius bounds the disk plants are scattered on.
const PlacementRadius = 10.0

// Placement maps a plant instance id to its (x, z) spot on the ground
// disk. The same id lands on the same spot every rebuild and every
// session: radius and angle are drawn from independent hash streams
// of the id, never from time or shared randomness. Overlaps are
// accepted; there is no collision avoidance.
func Placement(instanceID string) (x, z float64) {
	r := hashUnit(instanceID, 0) * PlacementRadius
	theta := hashUnit(instanceID, 1) * 2 * math.Pi
	return r * math.Cos(theta), r * math.Sin(theta)
}

// hashUnit folds an id into a uniform float in [0,1). The stream byte
// separates the radius and angle draws.
func hashUnit(id string, stream byte) float64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	h.Write([]byte{stream})
	return float64(h.Sum64()>>11) / float64(uint64(1)<<53)
}
