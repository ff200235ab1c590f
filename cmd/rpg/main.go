// rpg is a real-time action RPG played in the terminal.
//
// Usage:
//
//	rpg list                 - List available scenarios
//	rpg play [scenario]      - Play a scenario, or open the menu
//	rpg serve                - Start SSH server for remote play
//	rpg runs [scenario]      - Show the best recorded runs
//	rpg saves                - List or delete save slots
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: from settings, 60)
//	--seed <value>      - Set RNG seed for reproducible spawns
//	--db <path>         - Set database path (default: ~/.rpg/rpg.db)
//	--config <path>     - Settings YAML
//	--difficulty <name> - easy, normal, hard, fixed
//	--log-level <lvl>   - debug, info, warn, error
//	--items <path>      - Item table YAML (default: embedded)
//	--sprites <path>    - Sprite catalogue YAML (default: embedded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenarios to register them
	_ "github.com/vovakirdan/tui-rpg/internal/scenarios"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagItems      string
	flagSprites    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rpg",
	Short: "TUI RPG - a real-time action RPG in your terminal",
	Long: `TUI RPG is a top-down action RPG rendered in the terminal.
Explore the map, fight skeletons, level up and defeat the bosses.

Available commands:
  list     - Show all scenarios
  play     - Play a scenario (or open the menu)
  serve    - Start SSH server for remote play
  runs     - View the hall of runs
  saves    - Manage save slots

Examples:
  rpg play
  rpg play vale --difficulty hard
  rpg play --continue
  rpg serve --ssh :2222
  rpg runs vale`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = settings value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rpg/rpg.db", "Path to saves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagItems, "items", "", "Path to custom item table YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite catalogue YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(savesCmd)
}
