package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/diogochaves123/app-ecogrow/internal/config"
)

// Per-database setting keys. Values stored here override the config file so
// a single install can tune one database without touching config.yaml.
const (
	SettingLookaheadDays     = "schedule.lookahead_days"
	SettingGoodAfterDays     = "health.good_after_days"
	SettingFairAfterDays     = "health.fair_after_days"
	SettingPoorAfterDays     = "health.poor_after_days"
	SettingCriticalAfterDays = "health.critical_after_days"
	SettingRewardMaxAttempts = "reward.max_attempts"
)

var knownSettings = map[string]bool{
	SettingLookaheadDays:     true,
	SettingGoodAfterDays:     true,
	SettingFairAfterDays:     true,
	SettingPoorAfterDays:     true,
	SettingCriticalAfterDays: true,
	SettingRewardMaxAttempts: true,
}

func SetSetting(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if !knownSettings[key] {
		return fmt.Errorf("unknown setting %q", key)
	}
	if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("setting %q expects an integer, got %q", key, value)
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

func GetSetting(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("setting key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, true, nil
}

func ListSettings(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settings: %w", err)
	}
	return out, nil
}

// ResolveConfig overlays per-database settings onto the file/default config
// and validates the result.
func ResolveConfig(db *sql.DB, base config.Config) (config.Config, error) {
	settings, err := ListSettings(db)
	if err != nil {
		return base, err
	}
	overlay := func(key string, dst *int) error {
		raw, ok := settings[key]
		if !ok {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("setting %q holds non-integer %q", key, raw)
		}
		*dst = v
		return nil
	}

	if err := overlay(SettingLookaheadDays, &base.Schedule.LookaheadDays); err != nil {
		return base, err
	}
	if err := overlay(SettingGoodAfterDays, &base.Health.GoodAfterDays); err != nil {
		return base, err
	}
	if err := overlay(SettingFairAfterDays, &base.Health.FairAfterDays); err != nil {
		return base, err
	}
	if err := overlay(SettingPoorAfterDays, &base.Health.PoorAfterDays); err != nil {
		return base, err
	}
	if err := overlay(SettingCriticalAfterDays, &base.Health.CriticalAfterDays); err != nil {
		return base, err
	}
	if err := overlay(SettingRewardMaxAttempts, &base.Reward.MaxAttempts); err != nil {
		return base, err
	}

	if err := base.Validate(); err != nil {
		return base, fmt.Errorf("resolve config: %w", err)
	}
	return base, nil
}
