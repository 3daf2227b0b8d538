package scene

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer rasterizes a Scene into a colored character grid. The
// camera is fixed: the ground disk fills the lower part of the pane,
// larger z is nearer (lower and bigger), and depth doubles as the
// lighting cue: far plants render faint.
type Renderer struct {
	engine        *Engine
	width, height int
}

// Minimum pane size below which the renderer draws nothing useful.
const (
	minFrameWidth  = 16
	minFrameHeight = 8
)

// NewRenderer boots the shared engine and sizes the viewport. The
// error is the engine boot failure; callers keep the rest of the app
// alive and leave the pane blank.
func NewRenderer(width, height int) (*Renderer, error) {
	eng, err := Boot()
	if err != nil {
		return nil, err
	}
	r := &Renderer{engine: eng}
	r.Resize(width, height)
	return r, nil
}

// Resize tracks the pane's displayed size.
func (r *Renderer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.width, r.height = width, height
}

// Size reports the current viewport.
func (r *Renderer) Size() (width, height int) { return r.width, r.height }

type cell struct {
	ch    rune
	color string
	faint bool
}

// Frame draws the scene at its current animation state.
func (r *Renderer) Frame(s *Scene) string {
	if r == nil || s == nil || r.width < minFrameWidth || r.height < minFrameHeight {
		return blankFrame(r)
	}

	grid := make([][]cell, r.height)
	for y := range grid {
		grid[y] = make([]cell, r.width)
		for x := range grid[y] {
			grid[y][x] = cell{ch: r.engine.Sky}
		}
	}

	// Ground disk, drawn as an ellipse across the lower pane.
	groundTop := int(float64(r.height) * 0.45)
	groundBottom := r.height - 1
	gy := float64(groundTop+groundBottom) / 2
	b := float64(groundBottom-groundTop) / 2
	a := float64(r.width) * 0.48
	cx := float64(r.width) / 2

	for y := groundTop; y <= groundBottom; y++ {
		ny := (float64(y) - gy) / b
		if ny < -1 || ny > 1 {
			continue
		}
		halfw := a * math.Sqrt(1-ny*ny)
		lo, hi := int(cx-halfw), int(cx+halfw)
		for x := lo; x <= hi; x++ {
			if x < 0 || x >= r.width {
				continue
			}
			c := cell{ch: r.engine.Ground.Fill, color: r.engine.Ground.Color}
			if x == lo || x == hi {
				c = cell{ch: r.engine.Ground.Rim, color: r.engine.Ground.RimColor}
			}
			grid[y][x] = c
		}
	}

	// Painter's order: far plants first so near ones overdraw them.
	vis := append([]*Visual(nil), s.Visuals()...)
	sort.SliceStable(vis, func(i, j int) bool { return vis[i].Z < vis[j].Z })

	rowsPerUnit := float64(r.height) * 0.10
	colsPerUnit := rowsPerUnit * 1.6

	for _, v := range vis {
		r.drawVisual(grid, v, cx, gy, a, b, rowsPerUnit, colsPerUnit)
	}

	return renderGrid(grid)
}

func (r *Renderer) drawVisual(grid [][]cell, v *Visual, cx, gy, a, b, rowsPerUnit, colsPerUnit float64) {
	if v.Growth <= 0 {
		return // scale zero, nothing to draw yet
	}

	zn := v.Z / PlacementRadius
	if zn > 1 {
		zn = 1
	} else if zn < -1 {
		zn = -1
	}
	baseRow := int(math.Round(gy + zn*b*0.9))
	halfwAtRow := a * math.Sqrt(1-zn*zn*0.81)
	baseCol := int(math.Round(cx + (v.X/PlacementRadius)*halfwAtRow*0.9))

	depth := (zn + 1) / 2
	scale := v.Growth * v.Entry.Scale * (0.65 + 0.55*depth)
	faint := depth < 0.35

	kv := rowsPerUnit * scale
	kh := colsPerUnit * scale

	for _, p := range v.Mesh.Prims {
		topRow := baseRow - int(math.Round((p.Pos.Y+p.Size.Y/2)*kv))
		botRow := baseRow - int(math.Round((p.Pos.Y-p.Size.Y/2)*kv))
		if botRow < topRow {
			botRow = topRow
		}
		primCol := baseCol + int(math.Round(p.Pos.X*kh))

		for row := topRow; row <= botRow; row++ {
			hAbove := float64(baseRow - row)
			sway := int(math.Round((v.TiltZ + 0.5*v.TiltX) * hAbove * 2.2))
			lean := int(math.Round(p.Tilt * hAbove * 1.5))
			center := primCol + sway + lean

			halfCols, thickness := rowProfile(p, row, topRow, botRow, kh)
			for dx := -halfCols; dx <= halfCols; dx++ {
				putCell(grid, row, center+dx, cell{
					ch:    r.engine.Glyph(p.Shape, thickness),
					color: p.Color,
					faint: faint,
				})
			}
		}
	}
}

// rowProfile gives a primitive's half-width in columns at one screen
// row, plus the glyph-ramp thickness to draw it with.
func rowProfile(p Primitive, row, topRow, botRow int, kh float64) (halfCols int, thickness float64) {
	span := botRow - topRow
	frac := 1.0
	if span > 0 {
		frac = float64(row-topRow) / float64(span)
	}

	switch p.Shape {
	case ShapeCone:
		// Wide at the base, a point at the tip.
		halfCols = int(math.Round(p.Size.X * kh * frac))
		return halfCols, frac

	case ShapeCanopy:
		// Elliptical cross-section.
		nn := 2*frac - 1
		halfCols = int(math.Round(p.Size.X * kh * math.Sqrt(1-nn*nn)))
		return halfCols, 1 - math.Abs(nn)

	default: // cylinder
		halfCols = int(math.Round(p.Size.X * kh))
		return halfCols, clamp01(p.Size.X / 0.3)
	}
}

func putCell(grid [][]cell, row, col int, c cell) {
	if row < 0 || row >= len(grid) {
		return
	}
	if col < 0 || col >= len(grid[row]) {
		return
	}
	grid[row][col] = c
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// blankFrame keeps the pane's footprint when there is nothing to draw.
func blankFrame(r *Renderer) string {
	if r == nil || r.width <= 0 || r.height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", r.width)
	lines := make([]string, r.height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// renderGrid styles runs of same-colored cells to keep the frame's
// escape-sequence overhead down.
func renderGrid(grid [][]cell) string {
	styles := map[string]lipgloss.Style{}
	styleFor := func(color string, faint bool) lipgloss.Style {
		key := color
		if faint {
			key += "/f"
		}
		st, ok := styles[key]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Faint(faint)
			styles[key] = st
		}
		return st
	}

	var sb strings.Builder
	for y, rowCells := range grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < len(rowCells) {
			c := rowCells[x]
			j := x
			var run strings.Builder
			for j < len(rowCells) && rowCells[j].color == c.color && rowCells[j].faint == c.faint {
				run.WriteRune(rowCells[j].ch)
				j++
			}
			if c.color == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(c.color, c.faint).Render(run.String()))
			}
			x = j
		}
	}
	return sb.String()
}
