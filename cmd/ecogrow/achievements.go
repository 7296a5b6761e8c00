package ecogrow

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogochaves123/app-ecogrow/internal/catalog"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked and locked achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.EnsureProfile(sqldb)
			if err != nil {
				return err
			}
			unlocked, err := service.ListAchievements(sqldb, profile.ID)
			if err != nil {
				return err
			}

			have := make(map[string]bool, len(unlocked))
			out := cmd.OutOrStdout()
			for _, a := range unlocked {
				have[a.AchievementType] = true
				fmt.Fprintf(out, "[x] %s — %s (unlocked %s, +%d coins, +%d points)\n",
					a.Title, a.Description, formatDay(a.UnlockedAt), a.CoinsReward, a.PointsReward)
			}
			for _, spec := range catalog.Achievements() {
				if have[spec.Type] {
					continue
				}
				fmt.Fprintf(out, "[ ] %s — %s (+%d coins, +%d points)\n", spec.Title, spec.Description, spec.Coins, spec.Points)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
