package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/asteroids-arcade/internal/platform/tui"
	"github.com/vovakirdan/asteroids-arcade/internal/storage"
)

var (
	flagPlain        bool
	flagRecordsLimit int
	flagClear        bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [player]",
	Short: "Show or clear the run history",
	Long: `Browse the furthest runs, overall or per player.

Without --plain an interactive table opens; tab switches between players.
With --plain the ranking is printed, optionally for a single player.
With --clear the runs of the player, or every run, are deleted.

Examples:
  asteroids records
  asteroids records --plain
  asteroids records --plain --limit 5 ada
  asteroids records --clear ada`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the records instead of opening the table")
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Number of runs to print with --plain")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the runs of the player, or all runs")
}

func runRecords(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	player := ""
	if len(args) == 1 {
		player = args[0]
	}

	if flagClear {
		return clearRecords(cmd.OutOrStdout(), store, player)
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunRecords(store, width, height)
	}

	return printRecords(store, player, flagRecordsLimit)
}

// clearRecords deletes the runs of player, or all runs when player is empty.
func clearRecords(w io.Writer, store *storage.Store, player string) error {
	if err := store.ClearRuns(player); err != nil {
		return err
	}
	if player == "" {
		fmt.Fprintln(w, "Cleared all runs.")
	} else {
		fmt.Fprintf(w, "Cleared runs of %s.\n", player)
	}
	return nil
}

func printRecords(store *storage.Store, player string, limit int) error {
	var runs []storage.Run
	var err error
	if player == "" {
		runs, err = store.TopRuns(limit)
		fmt.Println("Furthest runs")
	} else {
		runs, err = store.RunsByPlayer(player, limit)
		fmt.Printf("Runs - %s\n", player)
	}
	if err != nil {
		return err
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'asteroids play' to record the first run!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-5s  %-8s  %s\n", "Rank", "Player", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-5s  %-8s  %s\n", "----", "------", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-16s  %-5d  %-8s  %s\n",
			i+1, r.Player, r.Level, tui.FormatDuration(r.Seconds), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.PlayerStats(player)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best level: %d over %d runs (%s played)\n",
			stats.BestLevel, stats.Runs, tui.FormatDuration(stats.TotalSeconds))
	}
	return nil
}
