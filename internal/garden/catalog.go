package garden

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// GeometryClass selects which primitive assembly the scene builds for
// a plant type. The set is closed; anything unclassified renders as
// GeometryOther.
type GeometryClass string

const (
	GeometrySimpleBlade   GeometryClass = "simple-blade"
	GeometryFlower        GeometryClass = "flower"
	GeometryBamboo        GeometryClass = "bamboo"
	GeometryTree          GeometryClass = "tree"
	GeometryTreeFlowering GeometryClass = "tree-flowering"
	GeometryOther         GeometryClass = "other"
)

// CatalogEntry describes one purchasable plant type. Entries are
// static and immutable; the garden persists only typeId references.
type CatalogEntry struct {
	TypeID   string        `yaml:"typeId"`
	Name     string        `yaml:"name"`
	Price    int           `yaml:"price"`
	Color    string        `yaml:"color"` // hex, e.g. "#4ade80"
	Geometry GeometryClass `yaml:"geometry"`
	Scale    float64       `yaml:"scale"`  // relative overall size
	Height   float64       `yaml:"height"` // base height in world units
}

//go:embed catalog.yaml
var catalogYAML []byte

var (
	catalogOrder []CatalogEntry
	catalogByID  map[string]CatalogEntry
)

func init() {
	var doc struct {
		Plants []CatalogEntry `yaml:"plants"`
	}
	// The catalog ships inside the binary; failing to parse it is a
	// build defect, not a runtime condition.
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		panic(fmt.Sprintf("garden: bad embedded catalog: %v", err))
	}
	catalogOrder = doc.Plants
	catalogByID = make(map[string]CatalogEntry, len(doc.Plants))
	for _, e := range doc.Plants {
		catalogByID[e.TypeID] = e
	}
}

// Catalog returns every plant type in shop display order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

// LookupType resolves a typeId against the catalog.
func LookupType(typeID string) (CatalogEntry, bool) {
	e, ok := catalogByID[typeID]
	return e, ok
}
