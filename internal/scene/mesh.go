package scene

import "github.com/idilsaglam/zengarden/internal/garden"

// Shape is a closed set of drawable primitives.
type Shape int

const (
	ShapeCylinder Shape = iota
	ShapeCone
	ShapeCanopy
)

var shapeNames = map[Shape]string{
	ShapeCylinder: "cylinder",
	ShapeCone:     "cone",
	ShapeCanopy:   "canopy",
}

// Vec3 is a point or extent in world units; Y is up.
type Vec3 struct{ X, Y, Z float64 }

// Primitive is one solid inside a plant assembly. Pos is the center
// offset from the plant's root, Size.Y the height and Size.X/Size.Z
// the horizontal radii.
type Primitive struct {
	Shape Shape
	Pos   Vec3
	Size  Vec3
	Tilt  float64 // static lean, radians around z
	Color string
}

// Group is the assembled plant mesh.
type Group struct {
	Prims []Primitive
}

// Height is the top of the tallest primitive, in world units.
func (g Group) Height() float64 {
	top := 0.0
	for _, p := range g.Prims {
		if h := p.Pos.Y + p.Size.Y/2; h > top {
			top = h
		}
	}
	return top
}

const (
	trunkBrown = "#5d4037"
	stemGreen  = "#65a30d"
)

// BuildMesh assembles the primitives for a plant type. Geometry
// classes form a closed set, so this is a plain switch; anything
// unclassified gets the fallback cone.
func BuildMesh(e garden.CatalogEntry) Group {
	switch e.Geometry {
	case garden.GeometryTree, garden.GeometryTreeFlowering:
		return Group{Prims: []Primitive{
			{Shape: ShapeCylinder, Pos: Vec3{Y: 0.5}, Size: Vec3{X: 0.25, Y: 1, Z: 0.25}, Color: trunkBrown},
			{Shape: ShapeCanopy, Pos: Vec3{Y: 1.5}, Size: Vec3{X: 1.2, Y: 1, Z: 1.2}, Color: e.Color},
		}}

	case garden.GeometryBamboo:
		return Group{Prims: []Primitive{
			{Shape: ShapeCylinder, Pos: Vec3{Y: 1}, Size: Vec3{X: 0.12, Y: 2, Z: 0.12}, Color: e.Color},
		}}

	case garden.GeometryFlower:
		return Group{Prims: []Primitive{
			{Shape: ShapeCylinder, Pos: Vec3{Y: 0.4}, Size: Vec3{X: 0.05, Y: 0.8, Z: 0.05}, Color: stemGreen},
			{Shape: ShapeCone, Pos: Vec3{Y: 0.9}, Size: Vec3{X: 0.3, Y: 0.3, Z: 0.3}, Color: e.Color},
		}}

	case garden.GeometrySimpleBlade:
		// Three blades fanning out from the root.
		blade := Primitive{Shape: ShapeCone, Pos: Vec3{Y: 0.3}, Size: Vec3{X: 0.2, Y: 0.6, Z: 0.2}, Color: e.Color}
		left, right := blade, blade
		left.Pos = Vec3{X: -0.15, Y: 0.25, Z: 0.1}
		left.Size = Vec3{X: 0.14, Y: 0.42, Z: 0.14}
		left.Tilt = 0.2
		right.Pos = Vec3{X: 0.15, Y: 0.2}
		right.Size = Vec3{X: 0.16, Y: 0.48, Z: 0.16}
		right.Tilt = -0.2
		return Group{Prims: []Primitive{blade, right, left}}

	default:
		return Group{Prims: []Primitive{
			{Shape: ShapeCone, Pos: Vec3{Y: 0.3}, Size: Vec3{X: 0.2, Y: 0.6, Z: 0.2}, Color: e.Color},
		}}
	}
}
