package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadApp loads the application configuration.
// Search order: customPath -> ~/.adventure/configs/app.yaml -> ./configs/app.yaml -> embedded default.
// Environment variables (ADVENTURE_*) override whatever file was used.
func LoadApp(customPath string) (AppConfig, error) {
	cfg, err := loadAppFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadAppFile(customPath string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("app.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultAppConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/app.yaml"); err == nil {
		candidate := DefaultAppConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	candidate := DefaultAppConfig()
	if err := yaml.Unmarshal(defaultAppYAML, &candidate); err != nil {
		return DefaultAppConfig(), nil // Fallback to hardcoded if embed fails
	}
	return candidate, nil
}

// ApplyEnv overrides cfg from a .env file in the working directory (if any)
// and from ADVENTURE_* environment variables.
func ApplyEnv(cfg *AppConfig) error {
	_ = godotenv.Load()
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSpelling loads the spelling challenge pools.
// Search order: customPath -> ~/.adventure/configs/spelling.yaml -> ./configs/spelling.yaml -> embedded default.
func LoadSpelling(customPath string) (SpellingPools, error) {
	if customPath != "" {
		pools, err := readSpelling(customPath)
		if err != nil {
			return SpellingPools{}, err
		}
		return pools, nil
	}

	if userCfgPath := userConfigPath("spelling.yaml"); userCfgPath != "" {
		if pools, err := readSpelling(userCfgPath); err == nil {
			return pools, nil
		}
	}

	if pools, err := readSpelling("configs/spelling.yaml"); err == nil {
		return pools, nil
	}

	pools, err := parseSpelling(defaultSpellingYAML)
	if err != nil {
		return DefaultSpellingPools(), nil
	}
	return pools, nil
}

func readSpelling(path string) (SpellingPools, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SpellingPools{}, fmt.Errorf("failed to read spelling pools %s: %w", path, err)
	}
	pools, err := parseSpelling(data)
	if err != nil {
		return SpellingPools{}, fmt.Errorf("failed to parse spelling pools %s: %w", path, err)
	}
	return pools, nil
}

func parseSpelling(data []byte) (SpellingPools, error) {
	var pools SpellingPools
	if err := yaml.Unmarshal(data, &pools); err != nil {
		return SpellingPools{}, err
	}
	if err := pools.Validate(); err != nil {
		return SpellingPools{}, err
	}
	return pools, nil
}

// Validate checks that every pool is non-empty and every challenge has a
// blank in its sentence and a word made of letters.
func (s SpellingPools) Validate() error {
	if len(s.Pools) == 0 {
		return errors.New("no pools defined")
	}
	for id, pool := range s.Pools {
		if len(pool) == 0 {
			return fmt.Errorf("pool %s is empty", id)
		}
		for i, c := range pool {
			if !strings.Contains(c.Sentence, "_") {
				return fmt.Errorf("pool %s challenge %d: sentence has no blank", id, i)
			}
			if strings.TrimSpace(c.Word) == "" {
				return fmt.Errorf("pool %s challenge %d: empty word", id, i)
			}
		}
	}
	return nil
}

// Pool returns the challenges for a player id, or nil.
func (s SpellingPools) Pool(playerID string) []Challenge {
	return s.Pools[playerID]
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".adventure", "configs", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
