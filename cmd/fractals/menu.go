package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/platform/tui"
	"github.com/vovakirdan/fractals/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick curves and levels interactively",
	Long: `Start the terminal menu.

Use arrow keys or j/k to pick a curve, left/right to change its level and
Enter to watch it. After the last level you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change level
  Enter/Space  - Show curve
  Tab          - Render history
  Q            - Quit

Examples:
  fractals menu
  fractals menu --cmap viridis
  fractals menu --db ./history.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	tickRate := terminalMaxFPS
	if flagFPS > 0 {
		tickRate = min(flagFPS, terminalMaxFPS)
	}

	return tui.RunSession(tui.SessionConfig{
		Store:    store,
		Launcher: launcher(cmd),
		Items:    menuItems(),
		Mode:     storage.ModeTerminal,
		Logger:   logger,
	}, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
	})
}
