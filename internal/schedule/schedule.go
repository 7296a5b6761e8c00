// Package schedule derives due and upcoming care occurrences from a plant,
// its care plan, and its completed-task history. It is pure: callers supply
// snapshots and a reference time, nothing here touches storage.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/catalog"
	"github.com/diogochaves123/app-ecogrow/internal/model"
)

type Status string

const (
	// StatusDue means the occurrence is actionable now (asOf >= due time).
	StatusDue Status = "due"
	// StatusUpcoming means the occurrence falls inside the look-ahead window.
	StatusUpcoming Status = "upcoming"
)

const DefaultLookaheadDays = 3

type Options struct {
	// LookaheadDays is how many days before the due time an occurrence
	// becomes visible as upcoming. Zero means DefaultLookaheadDays.
	LookaheadDays int
}

// Occurrence is one derived plan-driven care action for a plant.
type Occurrence struct {
	PlantID     string
	TaskType    model.TaskType
	Title       string
	Description string
	DueAt       time.Time
	Status      Status
	OverdueDays int
}

type dimension struct {
	taskType      model.TaskType
	frequencyDays int
}

// dimensions lists the plan cadences that generate occurrences. Pruning only
// applies when the plan defines a pruning frequency.
func dimensions(plan model.CarePlan) []dimension {
	dims := []dimension{
		{taskType: model.TaskWatering, frequencyDays: plan.WateringFrequency},
		{taskType: model.TaskFertilizing, frequencyDays: plan.FertilizingFrequency},
	}
	if plan.PruningFrequency > 0 {
		dims = append(dims, dimension{taskType: model.TaskPruning, frequencyDays: plan.PruningFrequency})
	}
	return dims
}

// DueTasks returns the plant's due and upcoming occurrences at asOf, ordered
// by due time ascending and then by task-type rank. The baseline for a
// dimension with no completed history is the plant's creation time.
func DueTasks(plant model.Plant, plan model.CarePlan, history []model.CareTask, asOf time.Time, opts Options) []Occurrence {
	lookahead := opts.LookaheadDays
	if lookahead <= 0 {
		lookahead = DefaultLookaheadDays
	}

	out := make([]Occurrence, 0, 3)
	for _, dim := range dimensions(plan) {
		if dim.frequencyDays <= 0 {
			continue
		}
		baseline := plant.CreatedAt
		if last := lastCompletion(history, plant.ID, dim.taskType); last != nil {
			baseline = *last
		}
		dueAt := baseline.AddDate(0, 0, dim.frequencyDays)

		occ := Occurrence{
			PlantID:     plant.ID,
			TaskType:    dim.taskType,
			Title:       catalog.TaskTitle(dim.taskType),
			Description: fmt.Sprintf("A cada %d dias", dim.frequencyDays),
			DueAt:       dueAt,
			OverdueDays: OverdueDays(asOf, dueAt),
		}
		switch {
		case !asOf.Before(dueAt):
			occ.Status = StatusDue
		case !asOf.Before(dueAt.AddDate(0, 0, -lookahead)):
			occ.Status = StatusUpcoming
		default:
			continue
		}
		out = append(out, occ)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DueAt.Equal(out[j].DueAt) {
			return out[i].DueAt.Before(out[j].DueAt)
		}
		return catalog.TaskTypeRank(out[i].TaskType) < catalog.TaskTypeRank(out[j].TaskType)
	})
	return out
}

// OverdueDays returns whole days elapsed past dueAt, clamped at zero for
// anything not yet due.
func OverdueDays(asOf, dueAt time.Time) int {
	if asOf.Before(dueAt) {
		return 0
	}
	return int(asOf.Sub(dueAt).Hours() / 24)
}

// NextOccurrence computes when a recurring task comes due again after a
// completion. The cadence restarts from the completion time, not from the
// missed due date, so late completions do not pile up immediate repeats.
func NextOccurrence(completedAt time.Time, frequencyDays int) time.Time {
	return completedAt.AddDate(0, 0, frequencyDays)
}

// lastCompletion finds the most recent completion time of the given task type
// for the plant, or nil when none exists.
func lastCompletion(history []model.CareTask, plantID string, taskType model.TaskType) *time.Time {
	var last *time.Time
	for i := range history {
		t := &history[i]
		if t.PlantID != plantID || t.TaskType != taskType || !t.Completed || t.CompletedAt == nil {
			continue
		}
		if last == nil || t.CompletedAt.After(*last) {
			last = t.CompletedAt
		}
	}
	return last
}
