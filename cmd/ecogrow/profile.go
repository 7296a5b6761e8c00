package ecogrow

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogochaves123/app-ecogrow/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the local profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.EnsureProfile(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profile: %s\n", profile.ID)
			if profile.FullName != "" {
				fmt.Fprintf(out, "Name: %s\n", profile.FullName)
			}
			if profile.ExperienceLevel != "" {
				fmt.Fprintf(out, "Experience: %s\n", profile.ExperienceLevel)
			}
			fmt.Fprintf(out, "Quiz completed: %v\n", profile.QuizCompleted)
			fmt.Fprintf(out, "Coins: %d\nPoints: %d\n", profile.Coins, profile.Points)
			return nil
		})
	},
}

var (
	profileName       string
	profileExperience string
	profileQuizDone   bool
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.EnsureProfile(sqldb)
			if err != nil {
				return err
			}
			in := service.UpdateProfileInput{}
			if cmd.Flags().Changed("name") {
				in.FullName = &profileName
			}
			if cmd.Flags().Changed("experience") {
				in.ExperienceLevel = &profileExperience
			}
			if cmd.Flags().Changed("quiz-completed") {
				in.QuizCompleted = &profileQuizDone
			}
			if err := service.UpdateProfile(sqldb, profile.ID, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Full name")
	profileSetCmd.Flags().StringVar(&profileExperience, "experience", "", "Experience level (beginner, intermediate, advanced, expert)")
	profileSetCmd.Flags().BoolVar(&profileQuizDone, "quiz-completed", false, "Mark the onboarding quiz as completed")
}
