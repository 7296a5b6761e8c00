// Package health derives a plant's health status from how overdue its care
// is. The status is a cached, recomputed field: it is never edited directly.
package health

import (
	"fmt"

	"github.com/diogochaves123/app-ecogrow/internal/model"
)

// Thresholds are the overdue-day boundaries at which health degrades. They
// are deployment-tunable via config, not compile-time policy.
type Thresholds struct {
	GoodAfterDays     int `yaml:"good_after_days"`
	FairAfterDays     int `yaml:"fair_after_days"`
	PoorAfterDays     int `yaml:"poor_after_days"`
	CriticalAfterDays int `yaml:"critical_after_days"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		GoodAfterDays:     1,
		FairAfterDays:     3,
		PoorAfterDays:     7,
		CriticalAfterDays: 14,
	}
}

func (t Thresholds) Validate() error {
	if t.GoodAfterDays < 1 {
		return fmt.Errorf("good_after_days must be >= 1, got %d", t.GoodAfterDays)
	}
	if t.FairAfterDays <= t.GoodAfterDays {
		return fmt.Errorf("fair_after_days (%d) must be > good_after_days (%d)", t.FairAfterDays, t.GoodAfterDays)
	}
	if t.PoorAfterDays <= t.FairAfterDays {
		return fmt.Errorf("poor_after_days (%d) must be > fair_after_days (%d)", t.PoorAfterDays, t.FairAfterDays)
	}
	if t.CriticalAfterDays <= t.PoorAfterDays {
		return fmt.Errorf("critical_after_days (%d) must be > poor_after_days (%d)", t.CriticalAfterDays, t.PoorAfterDays)
	}
	return nil
}

// Evaluate maps the worst overdue magnitude across a plant's open tasks to a
// health status. With nothing overdue the plant is excellent only when it has
// at least one completion inside the last cadence window, otherwise good.
func Evaluate(maxOverdueDays int, recentCompletion bool, th Thresholds) model.HealthStatus {
	switch {
	case maxOverdueDays >= th.CriticalAfterDays:
		return model.HealthCritical
	case maxOverdueDays >= th.PoorAfterDays:
		return model.HealthPoor
	case maxOverdueDays >= th.FairAfterDays:
		return model.HealthFair
	case maxOverdueDays >= th.GoodAfterDays:
		return model.HealthGood
	}
	if recentCompletion {
		return model.HealthExcellent
	}
	return model.HealthGood
}

// Healthy reports whether a status counts toward the green-thumb streak.
func Healthy(s model.HealthStatus) bool {
	return s == model.HealthExcellent || s == model.HealthGood
}
