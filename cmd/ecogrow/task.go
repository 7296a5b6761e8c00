package ecogrow

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogochaves123/app-ecogrow/internal/config"
	"github.com/diogochaves123/app-ecogrow/internal/model"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage care tasks",
}

var (
	taskPlantRef  string
	taskType      string
	taskTitle     string
	taskDesc      string
	taskDue       string
	taskRecurring bool
	taskFrequency int
)

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a care task for a plant",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plant, err := service.FindPlant(sqldb, taskPlantRef)
			if err != nil {
				return err
			}
			due, err := parseDateOrNow(taskDue)
			if err != nil {
				return err
			}
			task, err := service.CreateTask(sqldb, service.CreateTaskInput{
				PlantID:       plant.ID,
				TaskType:      model.TaskType(strings.TrimSpace(taskType)),
				Title:         taskTitle,
				Description:   taskDesc,
				DueDate:       due,
				Recurring:     taskRecurring,
				FrequencyDays: taskFrequency,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s for %s, due %s (%s)\n", task.Title, plant.Name, formatDay(task.DueDate), task.ID)
			return nil
		})
	},
}

var taskListPlant string

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open tasks ordered by due date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.EnsureProfile(sqldb)
			if err != nil {
				return err
			}
			filter := service.TaskFilter{UserID: profile.ID}
			if taskListPlant != "" {
				plant, err := service.FindPlant(sqldb, taskListPlant)
				if err != nil {
					return err
				}
				filter.PlantID = plant.ID
			}
			tasks, err := service.ListTasks(sqldb, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DUE\tTYPE\tTITLE\tRECURRING\tID")
			for _, t := range tasks {
				recurring := "-"
				if t.Recurring {
					recurring = fmt.Sprintf("every %dd", t.FrequencyDays)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", formatDay(t.DueDate), t.TaskType, t.Title, recurring, t.ID)
			}
			return nil
		})
	},
}

var taskDoneDate string

var taskDoneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Complete a task",
	Long:  "Marks a task completed. Completing an already-completed task is a no-op. Recurring tasks roll over to their next occurrence.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			task, err := service.GetTask(sqldb, args[0])
			if err != nil {
				return err
			}
			completedAt, err := parseDateOrNow(taskDoneDate)
			if err != nil {
				return err
			}

			next, err := service.CompleteTask(sqldb, task.ID, completedAt)
			if err != nil {
				return err
			}
			if task.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s was already completed\n", task.Title)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", task.Title)
			if next != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Next occurrence due %s (%s)\n", formatDay(next.DueDate), next.ID)
			}

			return withConfig(sqldb, func(cfg config.Config) error {
				// Completion can change both plant health and streak-based
				// achievements.
				if _, err := service.CareStatus(sqldb, task.PlantID, time.Now(), cfg); err != nil {
					return err
				}
				unlocks, err := service.CheckAndUnlock(sqldb, task.UserID, time.Now(), cfg.Reward.MaxAttempts)
				if err != nil {
					return err
				}
				printUnlocks(cmd, unlocks)
				return nil
			})
		})
	},
}

var taskRemoveCmd = &cobra.Command{
	Use:   "remove <task-id>",
	Short: "Delete a non-recurring task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteTask(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskDoneCmd, taskRemoveCmd)

	taskAddCmd.Flags().StringVar(&taskPlantRef, "plant", "", "Plant name or id")
	taskAddCmd.Flags().StringVar(&taskType, "type", "", "Task type (watering, fertilizing, pruning, pest_control, harvesting, repotting, cleaning)")
	taskAddCmd.Flags().StringVar(&taskTitle, "title", "", "Task title (defaults to the type's display name)")
	taskAddCmd.Flags().StringVar(&taskDesc, "description", "", "Task description")
	taskAddCmd.Flags().StringVar(&taskDue, "date", "", "Due date YYYY-MM-DD (default today)")
	taskAddCmd.Flags().BoolVar(&taskRecurring, "recurring", false, "Repeat the task on a fixed cadence")
	taskAddCmd.Flags().IntVar(&taskFrequency, "every", 0, "Cadence in days (required with --recurring)")
	_ = taskAddCmd.MarkFlagRequired("plant")
	_ = taskAddCmd.MarkFlagRequired("type")

	taskListCmd.Flags().StringVar(&taskListPlant, "plant", "", "Filter by plant name or id")

	taskDoneCmd.Flags().StringVar(&taskDoneDate, "date", "", "Completion date YYYY-MM-DD (default now)")
}
