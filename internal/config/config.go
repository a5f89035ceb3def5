// Package config provides YAML-based application configuration and the
// spelling challenge pools, with embedded defaults and environment overrides.
package config

import "time"

// AppConfig contains all configuration for the game.
type AppConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Spelling SpellingConfig `yaml:"spelling"`
}

// DisplayConfig defines the surface size and tick rate.
type DisplayConfig struct {
	Width  int   `yaml:"width" env:"ADVENTURE_WIDTH"`   // 0 = terminal width
	Height int   `yaml:"height" env:"ADVENTURE_HEIGHT"` // 0 = terminal height
	FPS    int   `yaml:"fps" env:"ADVENTURE_FPS"`
	Seed   int64 `yaml:"seed" env:"ADVENTURE_SEED"` // 0 = time based
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	SaveDir string `yaml:"save_dir" env:"ADVENTURE_SAVE_DIR"` // Ledger JSON files
	DBPath  string `yaml:"db_path" env:"ADVENTURE_DB"`        // Session history database
}

// LogConfig defines the diagnostic log sink.
type LogConfig struct {
	Level  string `yaml:"level" env:"ADVENTURE_LOG_LEVEL"`   // debug, info, warn, error
	File   string `yaml:"file" env:"ADVENTURE_LOG_FILE"`     // Empty disables logging
	Format string `yaml:"format" env:"ADVENTURE_LOG_FORMAT"` // text, json, logfmt
}

// GameplayConfig defines timing and recovery parameters.
type GameplayConfig struct {
	FeedbackMS int `yaml:"feedback_ms" env:"ADVENTURE_FEEDBACK_MS"`
	FaultLimit int `yaml:"fault_limit" env:"ADVENTURE_FAULT_LIMIT"`
}

// FeedbackDuration returns FeedbackMS as a duration.
func (g GameplayConfig) FeedbackDuration() time.Duration {
	return time.Duration(g.FeedbackMS) * time.Millisecond
}

// SpellingConfig points at an optional custom challenge pool file.
type SpellingConfig struct {
	PoolPath string `yaml:"pool_path" env:"ADVENTURE_SPELLING_POOL"`
}

// Challenge is one fill-in-the-blank sentence and its missing word.
type Challenge struct {
	Sentence string `yaml:"sentence"`
	Word     string `yaml:"word"`
}

// SpellingPools maps a player id (e.g. "ELLIE") to its challenge pool.
type SpellingPools struct {
	Pools map[string][]Challenge `yaml:"pools"`
}
