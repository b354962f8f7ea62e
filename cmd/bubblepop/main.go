// bubblepop is a terminal bubble shooter with a level-based campaign.
//
// Usage:
//
//	bubblepop list              - List available modes
//	bubblepop play <mode>       - Play a mode
//	bubblepop menu              - Start menu to pick modes interactively
//	bubblepop serve             - Start SSH server for remote play
//	bubblepop scores <mode>     - Show best runs for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bubblepop/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/bubblepop/internal/game/bubble"
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
	Use:   "bubblepop",
	Short: "Bubble Pop - A bubble shooter in your terminal",
	Long: `Bubble Pop is a terminal bubble shooter: aim, fire, and pop
groups of three or more same-colored bubbles before your shots run out.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  bubblepop list
  bubblepop play bubblepop
  bubblepop menu
  bubblepop serve --ssh :2222
  bubblepop scores bubblepop_endless`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bubblepop/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
