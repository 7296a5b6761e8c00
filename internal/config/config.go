// Package config loads the optional config.yaml from the app directory. File
// values override the built-in defaults; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/diogochaves123/app-ecogrow/internal/health"
	"github.com/diogochaves123/app-ecogrow/internal/schedule"
)

type Config struct {
	Schedule ScheduleConfig    `yaml:"schedule"`
	Health   health.Thresholds `yaml:"health"`
	Reward   RewardConfig      `yaml:"reward"`
}

type ScheduleConfig struct {
	// LookaheadDays is the window before a due time in which an occurrence
	// shows up as upcoming.
	LookaheadDays int `yaml:"lookahead_days"`
}

type RewardConfig struct {
	// MaxAttempts bounds retries when a reward write hits a transient
	// storage conflict.
	MaxAttempts int `yaml:"max_attempts"`
}

func Default() Config {
	return Config{
		Schedule: ScheduleConfig{LookaheadDays: schedule.DefaultLookaheadDays},
		Health:   health.DefaultThresholds(),
		Reward:   RewardConfig{MaxAttempts: 3},
	}
}

// Load reads path over the defaults. An absent file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Schedule.LookaheadDays < 0 {
		return fmt.Errorf("schedule.lookahead_days must be >= 0, got %d", c.Schedule.LookaheadDays)
	}
	if c.Reward.MaxAttempts < 1 {
		return fmt.Errorf("reward.max_attempts must be >= 1, got %d", c.Reward.MaxAttempts)
	}
	if err := c.Health.Validate(); err != nil {
		return err
	}
	return nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
