package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/registry"
	"github.com/vovakirdan/fractals/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryStats bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [curve]",
	Short: "Show recent renders",
	Long: `Display recent renders from the history database, newest first.

Examples:
  fractals history
  fractals history dragon --limit 5
  fractals history --stats
  fractals history koch --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of renders to show")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show per-curve statistics instead")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the history (of one curve if given)")
}

func runHistory(_ *cobra.Command, args []string) error {
	curveID := ""
	if len(args) == 1 {
		curveID = args[0]
		if !registry.Exists(curveID) {
			return fmt.Errorf("unknown curve %q (run 'fractals list'): %w", curveID, core.ErrConfig)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.ClearRenders(curveID); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	case flagHistoryStats:
		return printStats(os.Stdout, store, curveID)
	}

	var records []storage.RenderRecord
	if curveID == "" {
		records, err = store.RecentRenders(flagHistoryLimit)
	} else {
		records, err = store.RendersByCurve(curveID, flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No renders recorded yet.")
		fmt.Println()
		fmt.Println("Run 'fractals show <curve>' or 'fractals export <curve>' to add one.")
		return nil
	}

	// Print header
	fmt.Printf("  %-10s  %-5s  %-8s  %-9s  %-8s  %-16s  %s\n", "Curve", "Level", "Mode", "Edges", "Time", "Date", "Output")
	fmt.Printf("  %-10s  %-5s  %-8s  %-9s  %-8s  %-16s  %s\n", "-----", "-----", "----", "-----", "----", "----", "------")
	for _, r := range records {
		fmt.Printf("  %-10s  %-5d  %-8s  %-9d  %-8s  %-16s  %s\n",
			r.CurveID, r.Level, r.Mode, r.Edges, formatElapsed(r), r.CreatedAt.Format("2006-01-02 15:04"), r.Output)
	}
	return nil
}

func printStats(w io.Writer, store *storage.Store, curveID string) error {
	stats := map[string]*storage.CurveStats{}
	if curveID != "" {
		s, err := store.CurveStats(curveID)
		if err != nil {
			return err
		}
		stats[curveID] = s
	} else {
		all, err := store.AllCurveStats()
		if err != nil {
			return err
		}
		stats = all
	}

	fmt.Fprintf(w, "  %-10s  %-7s  %-9s  %-10s  %-12s  %s\n", "Curve", "Renders", "Max level", "Max edges", "Avg time", "Last")
	fmt.Fprintf(w, "  %-10s  %-7s  %-9s  %-10s  %-12s  %s\n", "-----", "-------", "---------", "---------", "--------", "----")
	for _, info := range registry.List() {
		s, ok := stats[info.ID]
		if !ok || s == nil || s.Renders == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-10s  %-7d  %-9d  %-10d  %-12s  %s\n",
			info.ID, s.Renders, s.MaxLevel, s.MaxEdges, s.AvgElapsed.Round(time.Millisecond), s.LastRendered.Format("2006-01-02 15:04"))
	}
	return nil
}

func formatElapsed(r storage.RenderRecord) string {
	if r.Elapsed <= 0 {
		return "-"
	}
	return r.Elapsed.Round(time.Millisecond).String()
}
