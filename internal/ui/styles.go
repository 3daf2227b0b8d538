package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------

// Styles the rest of the app renders with. SetTheme swaps the whole
// set at once.
var (
	Title    lipgloss.Style
	Success  lipgloss.Style
	Pending  lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	ErrStyle lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Water    lipgloss.Style

	BoxChecked   string
	BoxUnchecked string
)

func init() { SetTheme("classic") }

// SetTheme picks a palette: "classic" (default) or "mono" for plain
// terminals.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		plain := lipgloss.NewStyle()
		Title = plain.Bold(true)
		Success, Pending, Accent, Water = plain, plain, plain, plain
		Muted = plain.Faint(true)
		ErrStyle = plain.Bold(true)
		Selected = plain.Reverse(true)
		Done = plain.Faint(true).Strikethrough(true)
		Help = plain.Faint(true)
		BoxChecked, BoxUnchecked = "[x]", "[ ]"
	default:
		Title = lipgloss.NewStyle().Bold(true)
		Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		Muted = lipgloss.NewStyle().Faint(true)
		ErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		Selected = lipgloss.NewStyle().Bold(true).Reverse(true)
		Done = lipgloss.NewStyle().Faint(true).Strikethrough(true)
		Help = lipgloss.NewStyle().Faint(true)
		Water = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
		BoxChecked, BoxUnchecked = "☑", "☐"
	}
}

func Ok(msg string) {
	fmt.Println(Success.Render("✔ " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, ErrStyle.Render("✖ "+msg))
}

// Panel frames lines in a rounded border.
func Panel(lines []string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// ProgressBar renders a Unicode progress bar for the non-interactive
// list view.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}
