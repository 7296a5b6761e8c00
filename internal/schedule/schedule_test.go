package schedule_test

import (
	"testing"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/model"
	"github.com/diogochaves123/app-ecogrow/internal/schedule"
)

func testPlant(created time.Time) model.Plant {
	return model.Plant{
		ID:        "plant-1",
		UserID:    "user-1",
		Name:      "Tomate Cereja",
		Type:      model.PlantTypeHortalica,
		CreatedAt: created,
	}
}

func completedTask(plantID string, taskType model.TaskType, at time.Time) model.CareTask {
	return model.CareTask{
		ID:          "task-" + string(taskType),
		PlantID:     plantID,
		TaskType:    taskType,
		Completed:   true,
		CompletedAt: &at,
	}
}

func TestDueTasksNewPlantScenario(t *testing.T) {
	t.Parallel()
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	plan := model.CarePlan{WateringFrequency: 2, FertilizingFrequency: 14}
	asOf := created.AddDate(0, 0, 3)

	occs := schedule.DueTasks(testPlant(created), plan, nil, asOf, schedule.Options{})
	if len(occs) != 1 {
		t.Fatalf("expected only the watering occurrence, got %d: %+v", len(occs), occs)
	}
	water := occs[0]
	if water.TaskType != model.TaskWatering {
		t.Fatalf("expected watering, got %s", water.TaskType)
	}
	if water.Status != schedule.StatusDue {
		t.Fatalf("expected watering due, got %s", water.Status)
	}
	if water.OverdueDays != 1 {
		t.Fatalf("expected 1 day overdue, got %d", water.OverdueDays)
	}
}

func TestDueTasksUpcomingWindow(t *testing.T) {
	t.Parallel()
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	plan := model.CarePlan{WateringFrequency: 2, FertilizingFrequency: 14}

	// Day 12: fertilizing is due on day 14, inside the default 3-day window.
	asOf := created.AddDate(0, 0, 12)
	history := []model.CareTask{
		completedTask("plant-1", model.TaskWatering, created.AddDate(0, 0, 11)),
	}
	occs := schedule.DueTasks(testPlant(created), plan, history, asOf, schedule.Options{})

	var sawFertilizing bool
	for _, occ := range occs {
		if occ.TaskType == model.TaskFertilizing {
			sawFertilizing = true
			if occ.Status != schedule.StatusUpcoming {
				t.Fatalf("expected fertilizing upcoming, got %s", occ.Status)
			}
			if occ.OverdueDays != 0 {
				t.Fatalf("expected 0 overdue days for upcoming task, got %d", occ.OverdueDays)
			}
		}
	}
	if !sawFertilizing {
		t.Fatal("expected fertilizing in the look-ahead window")
	}
}

func TestDueTasksCompletionResetsBaseline(t *testing.T) {
	t.Parallel()
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	plan := model.CarePlan{WateringFrequency: 2, FertilizingFrequency: 30}
	wateredAt := created.AddDate(0, 0, 5)
	history := []model.CareTask{
		completedTask("plant-1", model.TaskWatering, wateredAt),
	}

	asOf := wateredAt.AddDate(0, 0, 1)
	occs := schedule.DueTasks(testPlant(created), plan, history, asOf, schedule.Options{})
	for _, occ := range occs {
		if occ.TaskType == model.TaskWatering && occ.Status == schedule.StatusDue {
			t.Fatalf("watering should not be due one day after completion: %+v", occ)
		}
	}

	asOf = wateredAt.AddDate(0, 0, 2)
	occs = schedule.DueTasks(testPlant(created), plan, history, asOf, schedule.Options{})
	var due bool
	for _, occ := range occs {
		if occ.TaskType == model.TaskWatering && occ.Status == schedule.StatusDue {
			due = true
		}
	}
	if !due {
		t.Fatal("watering should be due two days after completion")
	}
}

func TestDueTasksSkipsPruningWithoutCadence(t *testing.T) {
	t.Parallel()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	plan := model.CarePlan{WateringFrequency: 2, FertilizingFrequency: 21}

	// Far in the future everything with a cadence is long overdue.
	asOf := created.AddDate(1, 0, 0)
	occs := schedule.DueTasks(testPlant(created), plan, nil, asOf, schedule.Options{})
	for _, occ := range occs {
		if occ.TaskType == model.TaskPruning {
			t.Fatalf("plan without pruning cadence generated a pruning occurrence: %+v", occ)
		}
	}
	if len(occs) != 2 {
		t.Fatalf("expected watering and fertilizing, got %d", len(occs))
	}
}

func TestDueTasksOrderingTieBreak(t *testing.T) {
	t.Parallel()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// Same cadence means identical due times; ordering must fall back to the
	// task-type rank.
	plan := model.CarePlan{WateringFrequency: 7, FertilizingFrequency: 7, PruningFrequency: 7}
	asOf := created.AddDate(0, 0, 10)

	occs := schedule.DueTasks(testPlant(created), plan, nil, asOf, schedule.Options{})
	if len(occs) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(occs))
	}
	want := []model.TaskType{model.TaskWatering, model.TaskFertilizing, model.TaskPruning}
	for i, occ := range occs {
		if occ.TaskType != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], occ.TaskType)
		}
	}
}

func TestOverdueDaysClampsAtZero(t *testing.T) {
	t.Parallel()
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	if got := schedule.OverdueDays(due.AddDate(0, 0, -2), due); got != 0 {
		t.Fatalf("expected 0 for not-yet-due, got %d", got)
	}
	if got := schedule.OverdueDays(due.AddDate(0, 0, 10), due); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}

func TestNextOccurrenceFromCompletionTime(t *testing.T) {
	t.Parallel()
	completed := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
	next := schedule.NextOccurrence(completed, 14)
	if want := completed.AddDate(0, 0, 14); !next.Equal(want) {
		t.Fatalf("expected %s, got %s", want, next)
	}
}
