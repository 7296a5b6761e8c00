package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func newID() string {
	return uuid.NewString()
}

func validateNonNegativeInt(name string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s must be >= 0, got %d", name, v)
	}
	return nil
}

func validatePositiveInt(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be > 0, got %d", name, v)
	}
	return nil
}

func requireText(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return value, nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func parseTime(name, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", name, raw, err)
	}
	return t, nil
}

func parseNullableTime(name string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := parseTime(name, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
