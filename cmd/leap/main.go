// leap is a TUI endless vertical jumper played in the terminal.
//
// Usage:
//
//	leap list              - List available game modes
//	leap play <mode>       - Play a mode
//	leap menu              - Start menu to pick modes interactively
//	leap serve             - Start SSH server for remote play
//	leap scores <mode>     - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.leap/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game to register its variants
	_ "github.com/vovakirdan/tui-leap/internal/games/ascent"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leap",
	Short: "Leap - Endless vertical jumping in your terminal",
	Long: `Leap is a terminal game about bouncing ever higher on procedurally
generated platforms while dodging drifters and gravitational singularities.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs

Examples:
  leap list
  leap play ascent
  leap menu
  leap serve --ssh :2222
  leap scores ascent`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.leap/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
