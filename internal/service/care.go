package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/catalog"
	"github.com/diogochaves123/app-ecogrow/internal/config"
	"github.com/diogochaves123/app-ecogrow/internal/health"
	"github.com/diogochaves123/app-ecogrow/internal/model"
	"github.com/diogochaves123/app-ecogrow/internal/schedule"
)

// PlantCareStatus is the dashboard view for one plant: derived plan
// occurrences, persisted open tasks, and the recomputed health status.
type PlantCareStatus struct {
	Plant          model.Plant
	Plan           model.CarePlan
	Occurrences    []schedule.Occurrence
	OpenTasks      []model.CareTask
	MaxOverdueDays int
	Health         model.HealthStatus
}

// CareStatus derives the plant's due/upcoming occurrences at asOf and
// recomputes its health status from the worst overdue magnitude across plan
// occurrences and persisted open tasks. The recomputed status is written back
// to the plant row, with healthy_since bookkeeping for the green-thumb
// streak.
func CareStatus(db *sql.DB, plantID string, asOf time.Time, cfg config.Config) (*PlantCareStatus, error) {
	plant, err := GetPlant(db, plantID)
	if err != nil {
		return nil, err
	}
	plan, err := catalog.Lookup(plant.Type)
	if err != nil {
		return nil, err
	}
	history, err := TaskHistory(db, plant.ID)
	if err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	status := &PlantCareStatus{Plant: *plant, Plan: plan}
	status.Occurrences = schedule.DueTasks(*plant, plan, history, asOf, schedule.Options{
		LookaheadDays: cfg.Schedule.LookaheadDays,
	})

	for _, t := range history {
		if !t.Completed {
			status.OpenTasks = append(status.OpenTasks, t)
			if overdue := schedule.OverdueDays(asOf, t.DueDate); overdue > status.MaxOverdueDays {
				status.MaxOverdueDays = overdue
			}
		}
	}
	for _, occ := range status.Occurrences {
		if occ.OverdueDays > status.MaxOverdueDays {
			status.MaxOverdueDays = occ.OverdueDays
		}
	}

	status.Health = health.Evaluate(status.MaxOverdueDays, recentCompletion(history, plan, asOf), cfg.Health)
	if err := storeHealth(db, plant, status.Health, asOf); err != nil {
		return nil, err
	}
	status.Plant.HealthStatus = status.Health
	return status, nil
}

// CareOverview computes the care status of every plant the user owns.
func CareOverview(db *sql.DB, userID string, asOf time.Time, cfg config.Config) ([]PlantCareStatus, error) {
	plants, err := ListPlants(db, userID)
	if err != nil {
		return nil, err
	}
	out := make([]PlantCareStatus, 0, len(plants))
	for _, p := range plants {
		status, err := CareStatus(db, p.ID, asOf, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, *status)
	}
	return out, nil
}

// recentCompletion reports whether any care action was completed within the
// plant's shortest cadence window before asOf. The watering cadence is the
// shortest one a plan defines.
func recentCompletion(history []model.CareTask, plan model.CarePlan, asOf time.Time) bool {
	window := plan.WateringFrequency
	if window <= 0 {
		return false
	}
	cutoff := asOf.AddDate(0, 0, -window)
	for _, t := range history {
		if t.Completed && t.CompletedAt != nil && !t.CompletedAt.Before(cutoff) && !t.CompletedAt.After(asOf) {
			return true
		}
	}
	return false
}

// storeHealth persists a recomputed health status. healthy_since marks the
// start of the current continuous good-or-better stretch and resets whenever
// health drops below good.
func storeHealth(db *sql.DB, plant *model.Plant, status model.HealthStatus, asOf time.Time) error {
	var healthySince *string
	switch {
	case health.Healthy(status) && plant.HealthySince != nil && health.Healthy(plant.HealthStatus):
		s := formatTime(*plant.HealthySince)
		healthySince = &s
	case health.Healthy(status):
		s := formatTime(asOf)
		healthySince = &s
	}

	if status == plant.HealthStatus &&
		((healthySince == nil) == (plant.HealthySince == nil)) {
		return nil
	}

	_, err := db.Exec(`
UPDATE plants
SET health_status = ?, healthy_since = ?, updated_at = ?
WHERE id = ?
`, string(status), healthySince, formatTime(asOf), plant.ID)
	if err != nil {
		return fmt.Errorf("store health for plant %s: %w", plant.ID, err)
	}
	return nil
}
