package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rpg/internal/platform/tui"
	"github.com/vovakirdan/tui-rpg/internal/registry"
	"github.com/vovakirdan/tui-rpg/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsTUI   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Show the best recorded runs",
	Long: `Display the best runs, ranked by level reached and then kills.
A run is recorded when the hero dies.

Examples:
  rpg runs
  rpg runs vale --limit 20
  rpg runs --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs interactively")
}

func runRuns(cmd *cobra.Command, args []string) {
	mapID := ""
	if len(args) == 1 {
		mapID = args[0]
		if !registry.Exists(mapID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", mapID)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRunsBoard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.BestRuns(mapID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	title := "all scenarios"
	if mapID != "" {
		title = registry.Title(mapID)
	}
	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %-5s  %s\n", "Rank", "Name", "Map", "Level", "Kills", "Gold", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %-5s  %s\n", "----", "----", "---", "-----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8s  %-5d  %-5d  %-5d  %s\n",
			i+1, r.PlayerName, r.MapID, r.Level, r.Kills, r.Gold, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
