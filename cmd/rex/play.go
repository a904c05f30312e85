package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rex-runner/internal/config"
	"github.com/vovakirdan/rex-runner/internal/core"
	"github.com/vovakirdan/rex-runner/internal/games/dino"
	tcelldriver "github.com/vovakirdan/rex-runner/internal/platform/term"
	"github.com/vovakirdan/rex-runner/internal/platform/tui"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var errNotTerminal = errors.New("stdout is not a terminal")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run. The game ends when the character touches an obstacle
while standing on the ground; press R to start over.

Examples:
  rex play
  rex play --backend tcell
  rex play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := validateBackend(flagBackend); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
		if w < cfg.Screen.Width || h < cfg.Screen.Height {
			logger.Warn("terminal smaller than the play field",
				"terminal", fmt.Sprintf("%dx%d", w, h),
				"grid", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height))
		}
	}

	rc := runtimeConfig(cfg, flagSeed, time.Now())
	game := dino.New(cfg, dino.NewRand(rc.Seed))

	logger.Info("session start", "backend", flagBackend, "seed", rc.Seed,
		"grid", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH))

	runErr := runBackend(flagBackend, game, logger)

	logger.Info("session end", "score", game.State().Score, "error", runErr)
	return runErr
}

// runtimeConfig resolves the grid and seed for this session.
// A zero seed picks one from the clock.
func runtimeConfig(cfg config.RunnerConfig, seed int64, now time.Time) core.RuntimeConfig {
	if seed == 0 {
		seed = now.UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW: cfg.Screen.Width,
		ScreenH: cfg.Screen.Height,
		Seed:    seed,
	}
}

func validateBackend(name string) error {
	switch name {
	case backendTea, backendTcell:
		return nil
	}
	return fmt.Errorf("unknown backend %q (expected %s or %s)", name, backendTea, backendTcell)
}

func runBackend(name string, game *dino.Game, logger *log.Logger) error {
	if name == backendTcell {
		return tcelldriver.Run(game, logger)
	}
	return tui.Run(game, logger)
}
