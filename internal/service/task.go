package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/catalog"
	"github.com/diogochaves123/app-ecogrow/internal/model"
	"github.com/diogochaves123/app-ecogrow/internal/schedule"
)

type CreateTaskInput struct {
	PlantID       string
	TaskType      model.TaskType
	Title         string
	Description   string
	DueDate       time.Time
	Recurring     bool
	FrequencyDays int
}

// CreateTask records a user-created care task. A recurring task without a
// positive frequency is a data-integrity error and is rejected here, not at
// generation time.
func CreateTask(db *sql.DB, in CreateTaskInput) (*model.CareTask, error) {
	if !catalog.ValidTaskType(in.TaskType) {
		return nil, fmt.Errorf("invalid task type %q", string(in.TaskType))
	}
	if in.Recurring {
		if err := validatePositiveInt("frequency days", in.FrequencyDays); err != nil {
			return nil, err
		}
	} else if in.FrequencyDays != 0 {
		return nil, fmt.Errorf("frequency days only applies to recurring tasks")
	}
	if in.DueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}
	plant, err := GetPlant(db, in.PlantID)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = catalog.TaskTitle(in.TaskType)
	}

	id := newID()
	now := time.Now()
	_, err = db.Exec(`
INSERT INTO care_tasks(id, plant_id, user_id, task_type, title, description, due_date, completed, recurring, frequency_days, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?)
`, id, plant.ID, plant.UserID, string(in.TaskType), title, strings.TrimSpace(in.Description),
		formatTime(in.DueDate), boolToInt(in.Recurring), in.FrequencyDays, formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return GetTask(db, id)
}

// LogCare records an already-completed care action, feeding the generator's
// history for the plan-driven cadences.
func LogCare(db *sql.DB, plantID string, taskType model.TaskType, completedAt time.Time) (*model.CareTask, error) {
	if !catalog.ValidTaskType(taskType) {
		return nil, fmt.Errorf("invalid task type %q", string(taskType))
	}
	plant, err := GetPlant(db, plantID)
	if err != nil {
		return nil, err
	}
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	id := newID()
	_, err = db.Exec(`
INSERT INTO care_tasks(id, plant_id, user_id, task_type, title, due_date, completed, completed_at, recurring, frequency_days, created_at)
VALUES(?, ?, ?, ?, ?, ?, 1, ?, 0, 0, ?)
`, id, plant.ID, plant.UserID, string(taskType), catalog.TaskTitle(taskType),
		formatTime(completedAt), formatTime(completedAt), formatTime(completedAt))
	if err != nil {
		return nil, fmt.Errorf("log care: %w", err)
	}
	return GetTask(db, id)
}

// CompleteTask marks a task done. Completing an already-completed task is a
// no-op, so duplicate submissions from concurrent clients are safe. For a
// recurring task the next occurrence is inserted in the same transaction,
// due frequency_days after the completion time.
func CompleteTask(db *sql.DB, taskID string, completedAt time.Time) (*model.CareTask, error) {
	task, err := GetTask(db, taskID)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		return nil, nil
	}
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin completion tx: %w", err)
	}

	res, err := tx.Exec(`
UPDATE care_tasks
SET completed = 1, completed_at = ?
WHERE id = ? AND completed = 0
`, formatTime(completedAt), taskID)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("complete task %s: %w", taskID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("read rows affected for task %s: %w", taskID, err)
	}
	if affected == 0 {
		// Lost the race to another completion; treat as the no-op case.
		_ = tx.Rollback()
		return nil, nil
	}

	var next *model.CareTask
	if task.Recurring {
		nextID := newID()
		nextDue := schedule.NextOccurrence(completedAt, task.FrequencyDays)
		if _, err := tx.Exec(`
INSERT INTO care_tasks(id, plant_id, user_id, task_type, title, description, due_date, completed, recurring, frequency_days, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?, 0, 1, ?, ?)
`, nextID, task.PlantID, task.UserID, string(task.TaskType), task.Title, task.Description,
			formatTime(nextDue), task.FrequencyDays, formatTime(completedAt)); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("insert next occurrence for task %s: %w", taskID, err)
		}
		next = &model.CareTask{ID: nextID}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit completion for task %s: %w", taskID, err)
	}

	if next == nil {
		return nil, nil
	}
	return GetTask(db, next.ID)
}

func GetTask(db *sql.DB, id string) (*model.CareTask, error) {
	row := db.QueryRow(taskSelect+` WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load task %s: %w", id, err)
	}
	return t, nil
}

type TaskFilter struct {
	PlantID          string
	UserID           string
	IncludeCompleted bool
	Limit            int
}

// ListTasks returns tasks ordered by due date ascending. By default only open
// tasks are included.
func ListTasks(db *sql.DB, f TaskFilter) ([]model.CareTask, error) {
	query := taskSelect + ` WHERE 1=1`
	args := make([]any, 0, 3)
	if f.PlantID != "" {
		query += ` AND plant_id = ?`
		args = append(args, f.PlantID)
	}
	if f.UserID != "" {
		query += ` AND user_id = ?`
		args = append(args, f.UserID)
	}
	if !f.IncludeCompleted {
		query += ` AND completed = 0`
	}
	query += ` ORDER BY due_date ASC`
	if f.Limit <= 0 {
		f.Limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, f.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.CareTask, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// TaskHistory returns every task row for a plant, completed and open. It is
// the snapshot the schedule engine consumes.
func TaskHistory(db *sql.DB, plantID string) ([]model.CareTask, error) {
	rows, err := db.Query(taskSelect+` WHERE plant_id = ? ORDER BY due_date ASC`, plantID)
	if err != nil {
		return nil, fmt.Errorf("load task history: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.CareTask, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task history: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task history: %w", err)
	}
	return tasks, nil
}

// DeleteTask removes a non-recurring task. Recurring tasks are never hard
// deleted; their chain is superseded by the next occurrence on completion.
func DeleteTask(db *sql.DB, id string) error {
	task, err := GetTask(db, id)
	if err != nil {
		return err
	}
	if task.Recurring {
		return fmt.Errorf("task %s is recurring and cannot be deleted; complete it instead", id)
	}
	if _, err := db.Exec(`DELETE FROM care_tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}

const taskSelect = `
SELECT id, plant_id, user_id, task_type, title, description, due_date, completed, completed_at, recurring, frequency_days, created_at
FROM care_tasks`

func scanTask(row rowScanner) (*model.CareTask, error) {
	var (
		t           model.CareTask
		dueDate     string
		completed   int
		completedAt sql.NullString
		recurring   int
		createdAt   string
	)
	err := row.Scan(&t.ID, &t.PlantID, &t.UserID, (*string)(&t.TaskType), &t.Title, &t.Description,
		&dueDate, &completed, &completedAt, &recurring, &t.FrequencyDays, &createdAt)
	if err != nil {
		return nil, err
	}
	t.Completed = completed != 0
	t.Recurring = recurring != 0
	if t.DueDate, err = parseTime("task due_date", dueDate); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		at, err := parseTime("task completed_at", completedAt.String)
		if err != nil {
			return nil, err
		}
		t.CompletedAt = &at
	}
	if t.CreatedAt, err = parseTime("task created_at", createdAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
