package ecogrow

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogochaves123/app-ecogrow/internal/app"
	"github.com/diogochaves123/app-ecogrow/internal/db"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local ecogrow database and profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}
		profile, err := service.EnsureProfile(sqldb)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized ecogrow database at %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Profile: %s\n", profile.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
