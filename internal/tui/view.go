package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/zengarden/internal/garden"
	"github.com/idilsaglam/zengarden/internal/ui"
)

var paneStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

// gardenPaneSize is the scene viewport inside the left pane, after
// border, padding and the two header rows.
func (a App) gardenPaneSize() (w, h int) {
	w = a.width/2 - 4
	h = a.height - 4
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func (a App) taskPaneWidth() int {
	if a.width == 0 {
		return 40
	}
	return a.width - a.width/2
}

func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.width == 0 {
		return "starting..."
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, a.viewGarden(), a.viewTasks())
}

func (a App) viewGarden() string {
	gw, gh := a.gardenPaneSize()

	header := ui.Title.Render("Zen Garden")
	badge := ui.Water.Render(fmt.Sprintf("💧 %d", a.state.Wallet.Balance()))
	gap := gw - lipgloss.Width(header) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	top := header + strings.Repeat(" ", gap) + badge

	sub := ui.Muted.Render("a gentle breeze drifts by")
	if a.showShop {
		sub = ui.Muted.Render("seed shop")
	}

	var body string
	switch {
	case a.showShop:
		body = a.viewShop(gw, gh)
	case a.renderer != nil:
		body = a.renderer.Frame(a.gardenScene)
	default:
		// Engine never booted: pane stays blank, tasks stay usable.
		body = strings.TrimRight(strings.Repeat(strings.Repeat(" ", gw)+"\n", gh), "\n")
	}

	return paneStyle.Width(a.width/2 - 2).Height(a.height - 2).
		Render(top + "\n" + sub + "\n" + body)
}

func (a App) viewShop(w, h int) string {
	lines := make([]string, 0, h)
	for i, e := range garden.Catalog() {
		affordable := a.state.Wallet.CanAfford(e.Price)
		row := fmt.Sprintf("%-14s %4d💧", e.Name, e.Price)
		switch {
		case i == a.shopCursor && affordable:
			row = ui.Selected.Render("> " + row)
		case i == a.shopCursor:
			row = ui.Muted.Render("> "+row) + ui.Muted.Render("  (not enough)")
		case affordable:
			row = "  " + row
		default:
			row = ui.Muted.Render("  " + row)
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", ui.Help.Render("enter buy · esc close"))
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines[:h], "\n")
}

func (a App) viewTasks() string {
	tw := a.taskPaneWidth() - 4
	done, total := a.state.Tasks.Stats()

	var b strings.Builder
	b.WriteString(ui.Title.Render("Your Tasks") + "\n")
	b.WriteString(ui.Muted.Render(time.Now().Format("Monday, Jan 2")) +
		ui.Muted.Render(fmt.Sprintf("  ·  %d/%d done", done, total)) + "\n")
	b.WriteString(a.prog.ViewAs(float64(a.state.Tasks.Progress())/100) +
		fmt.Sprintf(" %3d%%", a.state.Tasks.Progress()) + "\n")
	b.WriteString(a.viewFilterTabs() + "\n\n")

	visible := a.state.Tasks.Filtered(a.filter)
	if len(visible) == 0 {
		b.WriteString(ui.Muted.Render("Emptiness is peace...") + "\n")
	}
	for i, t := range visible {
		box := ui.Muted.Render(ui.BoxUnchecked)
		text := truncate(t.Text, tw-10)
		if t.Completed {
			box = ui.Success.Render(ui.BoxChecked)
			text = ui.Done.Render(text) + " " + ui.Water.Render("+10")
		}
		prefix := "  "
		if i == a.cursor && !a.adding {
			prefix = ui.Selected.Render("> ")
		}
		b.WriteString(prefix + box + " " + text + "\n")
	}

	if a.adding {
		bar := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		b.WriteString("\n" + bar.Render("Add new task\n"+a.input.View()) + "\n")
	}

	b.WriteString("\n" + a.help.View(a.keys))

	return paneStyle.Width(a.taskPaneWidth() - 2).Height(a.height - 2).
		Render(b.String())
}

func (a App) viewFilterTabs() string {
	var tabs []string
	for _, f := range []garden.Filter{garden.FilterAll, garden.FilterActive, garden.FilterCompleted} {
		label := string(f)
		if f == a.filter {
			tabs = append(tabs, ui.Accent.Render(label))
		} else {
			tabs = append(tabs, ui.Muted.Render(label))
		}
	}
	return strings.Join(tabs, "  ")
}

// truncate cuts plain (unstyled) text so rows never wrap the pane.
func truncate(s string, w int) string {
	runes := []rune(s)
	if w <= 1 || len(runes) <= w {
		return s
	}
	return string(runes[:w-1]) + "…"
}
