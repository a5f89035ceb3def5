package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/learning-adventure/internal/activities/spelling"
	"github.com/vovakirdan/learning-adventure/internal/config"
	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/ledger"
	"github.com/vovakirdan/learning-adventure/internal/logging"
	"github.com/vovakirdan/learning-adventure/internal/navigator"
	"github.com/vovakirdan/learning-adventure/internal/platform/tui"
	"github.com/vovakirdan/learning-adventure/internal/screen"
	"github.com/vovakirdan/learning-adventure/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start Learning Adventure.

Controls:
  Mouse      - Click buttons
  1-9        - Choose a player or an activity
  Enter      - Start / submit an answer
  Backspace  - Delete a letter
  Esc        - Back (quits from the player screen)
  Ctrl+C     - Quit

Examples:
  adventure play
  adventure play --seed 42
  adventure play --config ./my-adventure.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog := openLogger(cfg.Log)
	defer closeLog()

	spelling.SetPoolPath(cfg.Spelling.PoolPath)

	rc := runtimeConfig(cfg)
	logger.Info("starting", "width", rc.ScreenW, "height", rc.ScreenH, "fps", rc.TickRate, "seed", rc.Seed)

	deps := screen.Deps{
		Logger:  logger,
		Clock:   core.SystemClock{},
		Ledgers: ledger.NewStore(cfg.Storage.SaveDir, core.SystemClock{}),
		Rand:    rand.New(rand.NewPCG(uint64(rc.Seed), uint64(rc.Seed)>>1)),
		Config:  rc,
	}

	// Open session history
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("history database unavailable", "path", cfg.Storage.DBPath, "error", err)
		// Continue without history - the game still works
	} else {
		deps.History = store
		defer store.Close()
	}

	nav := navigator.New(deps)
	if err := tui.Run(nav, rc); err != nil {
		logger.Error("game stopped with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("stopped")
	return nil
}

// openLogger builds the file logger. Failures fall back to a discarding
// logger so the game still starts.
func openLogger(cfg config.LogConfig) (*log.Logger, func()) {
	logger, closer, err := logging.New(logging.Options{
		File:   cfg.File,
		Level:  cfg.Level,
		Format: cfg.Format,
		Prefix: "adventure",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logger, func() { _ = closer.Close() }
}

// runtimeConfig derives the core runtime config from the app config and
// the terminal size.
func runtimeConfig(cfg config.AppConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if cfg.Display.Width > 0 {
		rc.ScreenW = cfg.Display.Width
	}
	if cfg.Display.Height > 0 {
		rc.ScreenH = cfg.Display.Height
	}
	if cfg.Display.FPS > 0 {
		rc.TickRate = cfg.Display.FPS
	}

	// Use time-based seed if not specified
	rc.Seed = cfg.Display.Seed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	if cfg.Gameplay.FeedbackMS > 0 {
		rc.Feedback = cfg.Gameplay.FeedbackDuration()
	}
	if cfg.Gameplay.FaultLimit > 0 {
		rc.FaultLimit = cfg.Gameplay.FaultLimit
	}
	return rc
}
