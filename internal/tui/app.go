// Package tui is the interactive surface: the animated garden pane on
// the left, the task list on the right, and the shop overlay. All
// state mutations happen synchronously inside Update and persist
// before the next message is handled.
package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/zengarden/internal/garden"
	"github.com/idilsaglam/zengarden/internal/scene"
	"github.com/idilsaglam/zengarden/internal/store"
)

// DefaultTick approximates a display refresh; overridable for slow
// terminals via configuration.
const DefaultTick = 33 * time.Millisecond

// tickMsg drives one animation frame.
type tickMsg time.Time

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Filter key.Binding
	Shop   key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Shop:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shop")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Filter, k.Shop, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.Add, k.Filter, k.Shop, k.Quit},
	}
}

// App is the Bubble Tea model.
type App struct {
	state *garden.State
	store *store.Store

	gardenScene *scene.Scene
	renderer    *scene.Renderer // nil when the engine failed to boot

	input textinput.Model
	prog  progress.Model
	help  help.Model
	keys  keyMap

	filter     garden.Filter
	cursor     int
	adding     bool
	showShop   bool
	shopCursor int

	width, height int
	start         time.Time
	tick          time.Duration
	quitting      bool
}

// NewApp wires the state, storage and scene together. A renderer
// boot failure is logged and tolerated: the garden pane stays blank
// and everything else keeps working.
func NewApp(st *garden.State, sv *store.Store, tick time.Duration) App {
	if tick <= 0 {
		tick = DefaultTick
	}

	gs := scene.New()
	renderer, err := scene.NewRenderer(0, 0)
	if err != nil {
		log.Printf("[TUI] garden rendering disabled: %v", err)
		renderer = nil
	} else {
		gs.Sync(st.Plants)
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200

	return App{
		state:       st,
		store:       sv,
		gardenScene: gs,
		renderer:    renderer,
		input:       ti,
		prog:        progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:        help.New(),
		keys:        newKeyMap(),
		filter:      garden.FilterAll,
		start:       time.Now(),
		tick:        tick,
	}
}

func (a App) Init() tea.Cmd {
	return a.tickCmd()
}

func (a App) tickCmd() tea.Cmd {
	return tea.Tick(a.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if a.quitting {
			// Teardown: stop scheduling frames.
			return a, nil
		}
		a.gardenScene.Advance(time.Time(msg).Sub(a.start).Seconds())
		return a, a.tickCmd()

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		gw, gh := a.gardenPaneSize()
		if a.renderer != nil {
			a.renderer.Resize(gw, gh)
		}
		a.prog.Width = a.taskPaneWidth() - 6
		return a, nil

	case tea.KeyMsg:
		if a.adding {
			return a.updateAdding(msg)
		}
		if a.showShop {
			return a.updateShop(msg)
		}
		return a.updateList(msg)
	}

	return a, nil
}

func (a App) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if a.state.AddTask(a.input.Value()) {
			a.persist()
			a.cursor = 0
		}
		// Blank input falls through silently; either way the bar closes.
		a.input.SetValue("")
		a.input.Blur()
		a.adding = false
		return a, nil
	case "esc":
		a.input.SetValue("")
		a.input.Blur()
		a.adding = false
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) updateShop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := garden.Catalog()
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.shopCursor > 0 {
			a.shopCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.shopCursor < len(entries)-1 {
			a.shopCursor++
		}
	case msg.String() == "enter":
		entry := entries[a.shopCursor]
		if _, err := a.state.BuyPlant(entry.TypeID); err == nil {
			a.persist()
			a.gardenScene.Sync(a.state.Plants)
		}
		// Rejected purchases change nothing; the row stays dimmed.
	case msg.String() == "esc", key.Matches(msg, a.keys.Shop):
		a.showShop = false
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	}
	return a, nil
}

func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := a.state.Tasks.Filtered(a.filter)
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(visible)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Toggle):
		if a.cursor < len(visible) {
			a.state.ToggleTask(visible[a.cursor].ID)
			a.persist()
		}

	case key.Matches(msg, a.keys.Delete):
		if a.cursor < len(visible) {
			a.state.RemoveTask(visible[a.cursor].ID)
			a.persist()
			a.clampCursor()
		}

	case key.Matches(msg, a.keys.Filter):
		a.filter = garden.NextFilter(a.filter)
		a.clampCursor()

	case key.Matches(msg, a.keys.Add):
		a.adding = true
		a.input.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Shop):
		a.showShop = true
		a.shopCursor = 0
	}
	return a, nil
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	return a, tea.Quit
}

func (a *App) clampCursor() {
	n := len(a.state.Tasks.Filtered(a.filter))
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// persist writes the whole snapshot; a storage error costs
// persistence, never the session.
func (a *App) persist() {
	if err := a.store.Save(a.state.Snapshot()); err != nil {
		log.Printf("[TUI] save failed: %v", err)
	}
}
