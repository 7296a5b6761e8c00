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

var careCmd = &cobra.Command{
	Use:   "care",
	Short: "Record care actions",
}

var (
	carePlantRef string
	careType     string
	careDate     string
)

var careLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a completed care action for a plant",
	Long:  "Records a completed care action (for example a watering) directly into the plant's history. The scheduler uses this history to compute the next due time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plant, err := service.FindPlant(sqldb, carePlantRef)
			if err != nil {
				return err
			}
			completedAt, err := parseDateOrNow(careDate)
			if err != nil {
				return err
			}

			task, err := service.LogCare(sqldb, plant.ID, model.TaskType(strings.TrimSpace(careType)), completedAt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s for %s on %s\n", task.Title, plant.Name, formatDay(completedAt))

			return withConfig(sqldb, func(cfg config.Config) error {
				status, err := service.CareStatus(sqldb, plant.ID, time.Now(), cfg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", plant.Name, status.Health)

				unlocks, err := service.CheckAndUnlock(sqldb, plant.UserID, time.Now(), cfg.Reward.MaxAttempts)
				if err != nil {
					return err
				}
				printUnlocks(cmd, unlocks)
				return nil
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(careCmd)
	careCmd.AddCommand(careLogCmd)

	careLogCmd.Flags().StringVar(&carePlantRef, "plant", "", "Plant name or id")
	careLogCmd.Flags().StringVar(&careType, "type", "", "Care type (watering, fertilizing, pruning, ...)")
	careLogCmd.Flags().StringVar(&careDate, "date", "", "Completion date YYYY-MM-DD (default now)")
	_ = careLogCmd.MarkFlagRequired("plant")
	_ = careLogCmd.MarkFlagRequired("type")
}
