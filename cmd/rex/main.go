// rex is an endless runner played in the terminal: jump over the
// obstacles, survive as long as possible.
//
// Usage:
//
//	rex                 - Play (same as "rex play")
//	rex play            - Play
//	rex config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--backend <name>    - Terminal driver: tea (default) or tcell
//	--seed <value>      - Set RNG seed for reproducible obstacle spacing
//	--config <path>     - Custom runner config YAML
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--debug             - Log every key press
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagBackend string
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rex",
	Short: "Rex Runner - jump over obstacles in your terminal",
	Long: `Rex Runner is a side-scrolling obstacle-dodge game for the terminal.

Controls:
  Space/Up   - Jump
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Examples:
  rex
  rex play --backend tcell
  rex play --seed 42 --log-file rex.log
  rex config --config ./my-runner.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendTea, "Terminal driver: tea or tcell")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
