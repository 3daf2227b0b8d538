package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/zengarden/internal/garden"
	"github.com/idilsaglam/zengarden/internal/model"
	"github.com/idilsaglam/zengarden/internal/store"
)

func newTestApp(t *testing.T, snap model.Snapshot) App {
	t.Helper()
	a := NewApp(garden.NewState(snap), store.NewDegraded(), DefaultTick)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(App)
}

func press(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	return m.(App)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var ansiSeqs = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// containsPlain looks for text ignoring styling escapes.
func containsPlain(styled, want string) bool {
	return strings.Contains(ansiSeqs.ReplaceAllString(styled, ""), want)
}

func TestAddTaskFlow(t *testing.T) {
	a := newTestApp(t, model.Snapshot{})

	a = press(t, a, runes("a"))
	if !a.adding {
		t.Fatal("'a' should open the add bar")
	}
	a.input.SetValue("Meditate")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.adding {
		t.Error("enter should close the add bar")
	}
	if len(a.state.Tasks) != 1 || a.state.Tasks[0].Text != "Meditate" {
		t.Fatalf("tasks: got %v", a.state.Tasks)
	}
}

func TestAddBlankTaskIsNoOp(t *testing.T) {
	a := newTestApp(t, model.Snapshot{})
	a = press(t, a, runes("a"))
	a.input.SetValue("   ")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if len(a.state.Tasks) != 0 {
		t.Errorf("blank add created a task: %v", a.state.Tasks)
	}
}

func TestToggleCreditsWater(t *testing.T) {
	a := newTestApp(t, model.Snapshot{
		Tasks: []model.Task{{ID: "t1", Text: "Stretch"}},
	})

	a = press(t, a, tea.KeyMsg{Type: tea.KeySpace})
	if got := a.state.Wallet.Balance(); got != garden.WaterPerTask {
		t.Fatalf("balance after toggle: got %d, want %d", got, garden.WaterPerTask)
	}
	a = press(t, a, tea.KeyMsg{Type: tea.KeySpace})
	if got := a.state.Wallet.Balance(); got != 0 {
		t.Errorf("balance after toggle back: got %d, want 0", got)
	}
}

func TestDeleteTask(t *testing.T) {
	a := newTestApp(t, model.Snapshot{
		Tasks: []model.Task{{ID: "t1", Text: "x"}, {ID: "t2", Text: "y"}},
	})
	a = press(t, a, runes("d"))
	if len(a.state.Tasks) != 1 || a.state.Tasks[0].ID != "t2" {
		t.Errorf("tasks after delete: got %v", a.state.Tasks)
	}
}

func TestShopBuySyncsScene(t *testing.T) {
	a := newTestApp(t, model.Snapshot{Water: 100})

	a = press(t, a, runes("s"))
	if !a.showShop {
		t.Fatal("'s' should open the shop")
	}
	// Cursor starts on grass (price 20).
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if got := a.state.Wallet.Balance(); got != 80 {
		t.Errorf("balance: got %d, want 80", got)
	}
	if len(a.state.Plants) != 1 {
		t.Fatalf("garden: got %d plants, want 1", len(a.state.Plants))
	}
	if a.renderer != nil && len(a.gardenScene.Visuals()) != 1 {
		t.Errorf("scene visuals: got %d, want 1 after sync", len(a.gardenScene.Visuals()))
	}
}

func TestShopRejectedBuyChangesNothing(t *testing.T) {
	a := newTestApp(t, model.Snapshot{Water: 5})
	a = press(t, a, runes("s"))
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if got := a.state.Wallet.Balance(); got != 5 {
		t.Errorf("balance: got %d, want untouched 5", got)
	}
	if len(a.state.Plants) != 0 {
		t.Errorf("garden: got %d plants, want 0", len(a.state.Plants))
	}
}

func TestFilterCyclesAndClampsCursor(t *testing.T) {
	a := newTestApp(t, model.Snapshot{
		Tasks: []model.Task{
			{ID: "t1", Text: "open"},
			{ID: "t2", Text: "done", Completed: true},
		},
	})
	a.cursor = 1
	a = press(t, a, runes("f"))
	if a.filter != garden.FilterActive {
		t.Fatalf("filter: got %q, want active", a.filter)
	}
	if a.cursor != 0 {
		t.Errorf("cursor after narrowing filter: got %d, want 0", a.cursor)
	}
}

func TestTickAdvancesSceneAndReschedules(t *testing.T) {
	a := newTestApp(t, model.Snapshot{
		Water:  0,
		Plants: []model.PlantInstance{{TypeID: "grass", InstanceID: "p1"}},
	})
	if a.renderer == nil {
		t.Skip("engine unavailable in this environment")
	}

	m, cmd := a.Update(tickMsg(time.Now()))
	a = m.(App)
	if cmd == nil {
		t.Error("tick should reschedule the next frame")
	}
	if got := a.gardenScene.Visuals()[0].Growth; got <= 0 {
		t.Errorf("growth after tick: got %v, want > 0", got)
	}
}

func TestQuitStopsTicking(t *testing.T) {
	a := newTestApp(t, model.Snapshot{})
	m, _ := a.Update(runes("q"))
	a = m.(App)
	if !a.quitting {
		t.Fatal("'q' should quit")
	}
	if _, cmd := a.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks must not be rescheduled after quit")
	}
}

func TestResizeTracksRenderer(t *testing.T) {
	a := newTestApp(t, model.Snapshot{})
	if a.renderer == nil {
		t.Skip("engine unavailable in this environment")
	}
	a = press(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})
	w, h := a.renderer.Size()
	ww, wh := a.gardenPaneSize()
	if w != ww || h != wh {
		t.Errorf("renderer viewport: got %dx%d, want %dx%d", w, h, ww, wh)
	}
}

func TestViewRenders(t *testing.T) {
	a := newTestApp(t, model.Snapshot{
		Tasks: []model.Task{{ID: "t1", Text: "Stretch"}},
		Water: 42,
	})
	v := a.View()
	if v == "" {
		t.Fatal("view should render")
	}
	for _, want := range []string{"Zen Garden", "Your Tasks", "42", "Stretch"} {
		if !containsPlain(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
