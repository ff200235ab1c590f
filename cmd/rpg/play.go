package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/platform/tui"
	"github.com/vovakirdan/tui-rpg/internal/registry"
	"github.com/vovakirdan/tui-rpg/internal/storage"
)

var (
	flagContinue bool
	flagSlot     string
	flagMapFile  string
)

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Play a scenario",
	Long: `Start playing. Without a scenario the main menu opens.

Controls:
  WASD/Arrows      - Move (hold Shift to dash)
  Space            - Attack (melee or ranged, depending on the weapon in hand)
  E/Enter          - Use: portals, signs, NPCs, pick up items
  H                - Drink the first consumable
  F                - Equip the armour in hand
  I/Tab            - Inventory (E picks an item, E again swaps)
  Esc/P            - Save and return to the menu
  Q/Ctrl+C         - Save and quit

Difficulty options:
  easy   - Enemies start at base strength
  normal - Enemies start at 30% of the difficulty scaling
  hard   - Enemies start at 70% of the difficulty scaling
  fixed  - No scaling

Examples:
  rpg play
  rpg play vale
  rpg play arena --difficulty hard
  rpg play --continue
  rpg play vale --seed 42 --log-level debug
  rpg play --map ./maps/cave.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Continue the saved game in the slot")
	playCmd.Flags().StringVar(&flagSlot, "slot", tui.DefaultSlot, "Save slot")
	playCmd.Flags().StringVar(&flagMapFile, "map", "", "Play a map document from disk")
}

func runPlay(cmd *cobra.Command, args []string) {
	opts := tui.SessionOptions{
		Slot:     flagSlot,
		Seed:     flagSeed,
		Continue: flagContinue,
	}
	if flagMapFile != "" {
		id, err := registerMapFile(flagMapFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Scenario = id
	}
	if len(args) == 1 {
		opts.Scenario = args[0]
		if !registry.Exists(opts.Scenario) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", opts.Scenario)
			fmt.Fprintln(os.Stderr, "Run 'rpg list' to see available scenarios.")
			os.Exit(1)
		}
	}

	// The terminal belongs to the game; logs go to a file or nowhere.
	logger := newLogger(io.Discard, "rpg")
	if logFile, err := openLogFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
	} else {
		logger = newLogger(logFile, "rpg")
		defer logFile.Close()
	}

	ctx, err := newGameContext(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := ctx.Settings.Video.Resolution[0], ctx.Settings.Video.Resolution[1]
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(ctx.Settings),
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open saves database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(ctx, store, cfg, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
