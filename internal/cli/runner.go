package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/zengarden/internal/garden"
	"github.com/idilsaglam/zengarden/internal/store"
	"github.com/idilsaglam/zengarden/internal/tui"
	"github.com/idilsaglam/zengarden/internal/ui"
)

// Options tune behavior from root flags and the environment.
type Options struct {
	Theme   string        // "classic" | "mono"
	AppName string        // storage namespace
	Tick    time.Duration // animation frame interval
}

const defaultAppName = "zengarden"

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	ui.SetTheme(opt.Theme)
	if opt.AppName == "" {
		opt.AppName = defaultAppName
	}

	if len(args) == 0 {
		return doGarden(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "garden":
		return doGarden(opt)

	case "ls":
		return doList(opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: zengarden add <text...>")
			return 2
		}
		return doAdd(opt, strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: zengarden done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return doToggle(opt, n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: zengarden rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(opt, n)

	case "shop":
		return doShop(opt)

	case "buy":
		if len(a) != 1 {
			ui.Fail("usage: zengarden buy <typeId>")
			return 2
		}
		return doBuy(opt, a[0])

	case "water":
		return doWater(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`zengarden - grow a garden by getting things done

Usage:
  zengarden [subcommand] [args]

Subcommands:
  (none) | garden    Interactive garden + task list
  add <text...>      Add a new task
  ls                 List tasks with progress
  done <index>       Toggle task at 1-based index (+/-10 water)
  rm <index>         Remove task at 1-based index
  shop               Show the plant catalog
  buy <typeId>       Buy a plant with earned water
  water              Show the water balance

Examples:
  zengarden add "Meditate"
  zengarden done 1
  zengarden buy grass
`)
}

// openState loads the snapshot into a fresh State. A storage failure
// degrades to in-memory mode instead of refusing to start.
func openState(opt Options) (*garden.State, *store.Store) {
	st, err := store.Open(opt.AppName)
	if err != nil {
		log.Printf("[CLI] storage unavailable, running in-memory: %v", err)
	}
	return garden.NewState(st.Load()), st
}

// ---------------------------------------------------
// Subcommands
// ---------------------------------------------------

func doGarden(opt Options) int {
	state, st := openState(opt)
	app := tui.NewApp(state, st, opt.Tick)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doList(opt Options) int {
	state, _ := openState(opt)
	done, total := state.Tasks.Stats()

	lines := []string{
		fmt.Sprintf("%s   %s %d  %s %d  %s %d",
			ui.Title.Render("Tasks"),
			ui.Success.Render("✔"), done,
			ui.Pending.Render("•"), total-done,
			ui.Water.Render("💧"), state.Wallet.Balance(),
		),
		ui.ProgressBar(done, total, 28),
		"",
	}
	if total == 0 {
		lines = append(lines, ui.Muted.Render("nothing to do, add a task"))
	}
	for i, t := range state.Tasks {
		box := ui.BoxUnchecked
		text := t.Text
		if t.Completed {
			box = ui.Success.Render(ui.BoxChecked)
			text = ui.Done.Render(text)
		}
		lines = append(lines, fmt.Sprintf("%2d. %s %s", i+1, box, text))
	}
	fmt.Println(ui.Panel(lines))
	return 0
}

func doAdd(opt Options, text string) int {
	state, st := openState(opt)
	if !state.AddTask(text) {
		ui.Fail("add: empty text")
		return 2
	}
	if err := st.Save(state.Snapshot()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.Ok("added")
	return 0
}

func doToggle(opt Options, userIndex int) int {
	state, st := openState(opt)
	if userIndex < 1 || userIndex > len(state.Tasks) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(state.Tasks), userIndex))
		fmt.Fprintln(os.Stderr, ui.Muted.Render("Hint: run `zengarden ls` to see valid indexes"))
		return 2
	}
	state.ToggleTask(state.Tasks[userIndex-1].ID)
	if err := st.Save(state.Snapshot()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.Ok(fmt.Sprintf("toggled, water balance %d", state.Wallet.Balance()))
	return 0
}

func doRemove(opt Options, userIndex int) int {
	state, st := openState(opt)
	if userIndex < 1 || userIndex > len(state.Tasks) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(state.Tasks), userIndex))
		fmt.Fprintln(os.Stderr, ui.Muted.Render("Hint: run `zengarden ls` to see valid indexes"))
		return 2
	}
	state.RemoveTask(state.Tasks[userIndex-1].ID)
	if err := st.Save(state.Snapshot()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.Ok("removed")
	return 0
}

func doShop(opt Options) int {
	state, _ := openState(opt)
	lines := []string{
		ui.Title.Render("Seed Shop") + "   " +
			ui.Water.Render(fmt.Sprintf("balance %d💧", state.Wallet.Balance())),
		"",
	}
	for _, e := range garden.Catalog() {
		row := fmt.Sprintf("%-10s %-14s %4d💧", e.TypeID, e.Name, e.Price)
		if !state.Wallet.CanAfford(e.Price) {
			row = ui.Muted.Render(row)
		}
		lines = append(lines, row)
	}
	fmt.Println(ui.Panel(lines))
	return 0
}

func doBuy(opt Options, typeID string) int {
	state, st := openState(opt)
	p, err := state.BuyPlant(typeID)
	switch {
	case errors.Is(err, garden.ErrUnknownPlant):
		ui.Fail("buy: unknown plant type " + typeID)
		return 2
	case errors.Is(err, garden.ErrCannotAfford):
		ui.Fail("buy: " + err.Error())
		return 2
	case err != nil:
		ui.Fail("buy: " + err.Error())
		return 1
	}
	if err := st.Save(state.Snapshot()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.Ok(fmt.Sprintf("planted %s, water balance %d", p.TypeID, state.Wallet.Balance()))
	return 0
}

func doWater(opt Options) int {
	state, _ := openState(opt)
	fmt.Println(ui.Water.Render(fmt.Sprintf("💧 %d", state.Wallet.Balance())))
	return 0
}
