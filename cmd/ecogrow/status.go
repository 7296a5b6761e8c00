package ecogrow

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogochaves123/app-ecogrow/internal/config"
	"github.com/diogochaves123/app-ecogrow/internal/schedule"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

var statusDate string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show due and upcoming care across all plants",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.EnsureProfile(sqldb)
			if err != nil {
				return err
			}
			asOf, err := parseDateOrNow(statusDate)
			if err != nil {
				return err
			}

			return withConfig(sqldb, func(cfg config.Config) error {
				overview, err := service.CareOverview(sqldb, profile.ID, asOf, cfg)
				if err != nil {
					return err
				}
				streak, err := service.StreakDays(sqldb, profile.ID, asOf)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Coins: %d  Points: %d  Streak: %d day(s)\n\n", profile.Coins, profile.Points, streak)

				if len(overview) == 0 {
					fmt.Fprintln(out, "No plants yet. Add one with: ecogrow plant add")
					return nil
				}

				for _, status := range overview {
					fmt.Fprintf(out, "%s (%s) — %s\n", status.Plant.Name, status.Plant.Type, status.Health)
					for _, occ := range status.Occurrences {
						switch occ.Status {
						case schedule.StatusDue:
							if occ.OverdueDays > 0 {
								fmt.Fprintf(out, "  DUE %s — %d day(s) overdue\n", occ.Title, occ.OverdueDays)
							} else {
								fmt.Fprintf(out, "  DUE %s\n", occ.Title)
							}
						case schedule.StatusUpcoming:
							fmt.Fprintf(out, "  upcoming %s on %s\n", occ.Title, formatDay(occ.DueAt))
						}
					}
					for _, t := range status.OpenTasks {
						overdue := schedule.OverdueDays(asOf, t.DueDate)
						if overdue > 0 {
							fmt.Fprintf(out, "  task %s — %d day(s) overdue (%s)\n", t.Title, overdue, t.ID)
						} else {
							fmt.Fprintf(out, "  task %s due %s (%s)\n", t.Title, formatDay(t.DueDate), t.ID)
						}
					}
				}

				unlocks, err := service.CheckAndUnlock(sqldb, profile.ID, time.Now(), cfg.Reward.MaxAttempts)
				if err != nil {
					return err
				}
				if len(unlocks) > 0 {
					fmt.Fprintln(out)
					printUnlocks(cmd, unlocks)
				}
				return nil
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVar(&statusDate, "date", "", "Evaluate as of date YYYY-MM-DD (default now)")
}
