package service_test

import (
	"testing"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/model"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

func TestCreateTaskRejectsRecurringWithoutFrequency(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Flor", model.PlantTypeFlor, time.Now())

	_, err := service.CreateTask(sqldb, service.CreateTaskInput{
		PlantID:   plant.ID,
		TaskType:  model.TaskPestControl,
		DueDate:   time.Now(),
		Recurring: true,
	})
	if err == nil {
		t.Fatal("recurring task without frequency must be rejected at creation")
	}

	_, err = service.CreateTask(sqldb, service.CreateTaskInput{
		PlantID:       plant.ID,
		TaskType:      model.TaskPestControl,
		DueDate:       time.Now(),
		Recurring:     false,
		FrequencyDays: 5,
	})
	if err == nil {
		t.Fatal("frequency on a non-recurring task must be rejected")
	}
}

func TestCreateTaskInvalidType(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Flor", model.PlantTypeFlor, time.Now())

	_, err := service.CreateTask(sqldb, service.CreateTaskInput{
		PlantID:  plant.ID,
		TaskType: model.TaskType("dancing"),
		DueDate:  time.Now(),
	})
	if err == nil {
		t.Fatal("expected invalid task type error")
	}
}

func TestCompleteTaskIsIdempotent(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Flor", model.PlantTypeFlor, time.Now())

	task, err := service.CreateTask(sqldb, service.CreateTaskInput{
		PlantID:  plant.ID,
		TaskType: model.TaskCleaning,
		DueDate:  time.Now(),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	completedAt := time.Now()
	if _, err := service.CompleteTask(sqldb, task.ID, completedAt); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	historyAfterFirst, err := service.TaskHistory(sqldb, plant.ID)
	if err != nil {
		t.Fatalf("task history: %v", err)
	}

	// Second completion is a safe no-op, not an error.
	next, err := service.CompleteTask(sqldb, task.ID, completedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("second completion: %v", err)
	}
	if next != nil {
		t.Fatalf("second completion must not create an occurrence, got %+v", next)
	}

	historyAfterSecond, err := service.TaskHistory(sqldb, plant.ID)
	if err != nil {
		t.Fatalf("task history: %v", err)
	}
	if len(historyAfterFirst) != len(historyAfterSecond) {
		t.Fatalf("history changed on duplicate completion: %d -> %d", len(historyAfterFirst), len(historyAfterSecond))
	}

	got, err := service.GetTask(sqldb, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completedAt.Truncate(time.Second)) {
		t.Fatalf("completion time overwritten by duplicate: %v", got.CompletedAt)
	}
}

func TestCompleteRecurringTaskRollsOver(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Fruta", model.PlantTypeFruta, time.Now())

	due := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	task, err := service.CreateTask(sqldb, service.CreateTaskInput{
		PlantID:       plant.ID,
		TaskType:      model.TaskPestControl,
		DueDate:       due,
		Recurring:     true,
		FrequencyDays: 10,
	})
	if err != nil {
		t.Fatalf("create recurring task: %v", err)
	}

	// Completed 3 days late: the cadence restarts from the completion time.
	completedAt := due.AddDate(0, 0, 3)
	next, err := service.CompleteTask(sqldb, task.ID, completedAt)
	if err != nil {
		t.Fatalf("complete recurring task: %v", err)
	}
	if next == nil {
		t.Fatal("recurring completion must produce the next occurrence")
	}
	if want := completedAt.AddDate(0, 0, 10); !next.DueDate.Equal(want) {
		t.Fatalf("next occurrence due %s, want %s", next.DueDate, want)
	}
	if !next.Recurring || next.FrequencyDays != 10 {
		t.Fatalf("next occurrence must keep the cadence, got %+v", next)
	}
	if next.Completed {
		t.Fatal("next occurrence starts open")
	}
}

func TestDeleteTaskRefusesRecurring(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Fruta", model.PlantTypeFruta, time.Now())

	recurring, err := service.CreateTask(sqldb, service.CreateTaskInput{
		PlantID:       plant.ID,
		TaskType:      model.TaskPruning,
		DueDate:       time.Now(),
		Recurring:     true,
		FrequencyDays: 30,
	})
	if err != nil {
		t.Fatalf("create recurring task: %v", err)
	}
	if err := service.DeleteTask(sqldb, recurring.ID); err == nil {
		t.Fatal("recurring tasks must not be hard-deleted")
	}

	oneOff, err := service.CreateTask(sqldb, service.CreateTaskInput{
		PlantID:  plant.ID,
		TaskType: model.TaskCleaning,
		DueDate:  time.Now(),
	})
	if err != nil {
		t.Fatalf("create one-off task: %v", err)
	}
	if err := service.DeleteTask(sqldb, oneOff.ID); err != nil {
		t.Fatalf("delete one-off task: %v", err)
	}
}

func TestListTasksOrdersByDueDate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Erva", model.PlantTypeErva, time.Now())

	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	later, err := service.CreateTask(sqldb, service.CreateTaskInput{
		PlantID: plant.ID, TaskType: model.TaskHarvesting, DueDate: base.AddDate(0, 0, 5),
	})
	if err != nil {
		t.Fatalf("create later task: %v", err)
	}
	sooner, err := service.CreateTask(sqldb, service.CreateTaskInput{
		PlantID: plant.ID, TaskType: model.TaskCleaning, DueDate: base,
	})
	if err != nil {
		t.Fatalf("create sooner task: %v", err)
	}

	tasks, err := service.ListTasks(sqldb, service.TaskFilter{PlantID: plant.ID})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 open tasks, got %d", len(tasks))
	}
	if tasks[0].ID != sooner.ID || tasks[1].ID != later.ID {
		t.Fatalf("tasks out of due-date order: %s, %s", tasks[0].ID, tasks[1].ID)
	}
}
