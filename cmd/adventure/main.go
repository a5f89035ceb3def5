// adventure is a terminal learning game for Ellie and Vivi.
//
// Usage:
//
//	adventure                         - Start the game (same as play)
//	adventure play                    - Start the game
//	adventure scores <player> [act]   - Show a player's scores
//	adventure list                    - List players and activities
//
// Global flags:
//
//	--config <path>     - Custom app config YAML
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible challenges
//	--save-dir <path>   - Directory for score files (default: ~/.adventure/saves)
//	--db <path>         - Session history database (default: ~/.adventure/history.db)
//	--log-file <path>   - Diagnostic log file (default: ~/.adventure/logs/game.log)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/learning-adventure/internal/config"

	// Import activities to register them
	_ "github.com/vovakirdan/learning-adventure/internal/activities/placeholder"
	_ "github.com/vovakirdan/learning-adventure/internal/activities/spelling"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagSaveDir  string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "adventure",
	Short: "Learning Adventure - spelling, math and science games for Ellie and Vivi",
	Long: `Learning Adventure is a terminal game for two young players.
Pick a player, pick an activity and earn points. Scores are kept per day.

Available commands:
  play     - Start the game (default)
  scores   - Show a player's scores
  list     - Show players and activities

Examples:
  adventure
  adventure play --fps 30
  adventure scores ellie
  adventure scores vivi spelling --plain`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom app config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSaveDir, "save-dir", "~/.adventure/saves", "Directory for score files")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.adventure/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.adventure/logs/game.log", "Path to diagnostic log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
}

// loadConfig reads the app config and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.AppConfig, error) {
	cfg, err := config.LoadApp(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Display.Seed = flagSeed
	}
	if flags.Changed("save-dir") {
		cfg.Storage.SaveDir = flagSaveDir
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}
