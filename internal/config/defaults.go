package config

import (
	_ "embed"
)

//go:embed defaults/app.yaml
var defaultAppYAML []byte

//go:embed defaults/spelling.yaml
var defaultSpellingYAML []byte

// DefaultAppConfig returns the built-in configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Display: DisplayConfig{
			FPS: 60,
		},
		Storage: StorageConfig{
			SaveDir: "~/.adventure/saves",
			DBPath:  "~/.adventure/history.db",
		},
		Log: LogConfig{
			Level:  "info",
			File:   "~/.adventure/logs/game.log",
			Format: "text",
		},
		Gameplay: GameplayConfig{
			FeedbackMS: 2000,
			FaultLimit: 3,
		},
	}
}

// DefaultSpellingPools returns the built-in challenge pools.
func DefaultSpellingPools() SpellingPools {
	return SpellingPools{
		Pools: map[string][]Challenge{
			"ELLIE": {
				{Sentence: "The _______ was listening to classical music.", Word: "orchestra"},
				{Sentence: "Scientists made an important _______ about climate change.", Word: "discovery"},
				{Sentence: "The brave _______ climbed the tallest mountain.", Word: "adventurer"},
				{Sentence: "Many animals face _______ as their habitats disappear.", Word: "extinction"},
				{Sentence: "The _______ experiment taught us about chemical reactions.", Word: "fascinating"},
			},
			"VIVI": {
				{Sentence: "The happy _______ jumped over the fence.", Word: "rabbit"},
				{Sentence: "I like to eat _______ and jelly sandwiches.", Word: "peanut"},
				{Sentence: "The _______ is shining brightly today.", Word: "sun"},
				{Sentence: "My favorite _______ is purple.", Word: "color"},
				{Sentence: "The _______ cat played with the yarn.", Word: "little"},
			},
		},
	}
}
