package scene

import (
	_ "embed"
	"fmt"
	"log"
	"sync"

	"gopkg.in/yaml.v3"
)

// Engine holds the render tables the rasterizer draws with. It plays
// the role a remotely loaded 3D engine would: it is bootstrapped
// lazily exactly once, and a boot failure leaves the garden pane
// blank without taking the rest of the app down.
type Engine struct {
	Sky    rune
	Ground GroundDressing
	shapes map[Shape][]rune // glyph ramp per shape, thin to thick
}

type GroundDressing struct {
	Fill     rune
	Rim      rune
	Color    string
	RimColor string
}

//go:embed engine.yaml
var engineYAML []byte

var bootOnce = sync.OnceValues(bootEngine)

// Boot returns the process-wide engine. Every caller shares one boot
// attempt; a failure is cached and logged once.
func Boot() (*Engine, error) {
	return bootOnce()
}

func bootEngine() (*Engine, error) {
	var doc struct {
		Sky    string `yaml:"sky"`
		Ground struct {
			Fill     string `yaml:"fill"`
			Rim      string `yaml:"rim"`
			Color    string `yaml:"color"`
			RimColor string `yaml:"rimColor"`
		} `yaml:"ground"`
		Shapes map[string]string `yaml:"shapes"`
	}
	if err := yaml.Unmarshal(engineYAML, &doc); err != nil {
		log.Printf("[Scene] engine boot failed: %v", err)
		return nil, fmt.Errorf("parse engine tables: %w", err)
	}

	eng := &Engine{
		Sky: firstRune(doc.Sky, ' '),
		Ground: GroundDressing{
			Fill:     firstRune(doc.Ground.Fill, '.'),
			Rim:      firstRune(doc.Ground.Rim, '~'),
			Color:    doc.Ground.Color,
			RimColor: doc.Ground.RimColor,
		},
		shapes: make(map[Shape][]rune, len(shapeNames)),
	}
	for shape, name := range shapeNames {
		ramp := []rune(doc.Shapes[name])
		if len(ramp) == 0 {
			log.Printf("[Scene] engine boot failed: no glyph ramp for %q", name)
			return nil, fmt.Errorf("engine tables missing ramp for %q", name)
		}
		eng.shapes[shape] = ramp
	}
	log.Printf("[Scene] engine booted (%d shape ramps)", len(eng.shapes))
	return eng, nil
}

// Glyph picks a glyph for a shape by thickness in [0,1].
func (e *Engine) Glyph(s Shape, thickness float64) rune {
	ramp, ok := e.shapes[s]
	if !ok {
		return '?'
	}
	i := int(thickness * float64(len(ramp)))
	if i >= len(ramp) {
		i = len(ramp) - 1
	}
	if i < 0 {
		i = 0
	}
	return ramp[i]
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
