package ecogrow

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogochaves123/app-ecogrow/internal/catalog"
	"github.com/diogochaves123/app-ecogrow/internal/config"
	"github.com/diogochaves123/app-ecogrow/internal/model"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

var plantCmd = &cobra.Command{
	Use:   "plant",
	Short: "Manage your plants",
}

var (
	plantName       string
	plantScientific string
	plantType       string
	plantCategory   string
	plantLocation   string
	plantLight      string
	plantNotes      string
	plantPreset     string
)

var plantAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a plant",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.EnsureProfile(sqldb)
			if err != nil {
				return err
			}

			in := service.CreatePlantInput{
				UserID:         profile.ID,
				Name:           plantName,
				ScientificName: plantScientific,
				Type:           model.PlantType(strings.TrimSpace(plantType)),
				Category:       model.PlantCategory(strings.TrimSpace(plantCategory)),
				Location:       plantLocation,
				LightLevel:     model.LightLevel(strings.TrimSpace(plantLight)),
				Notes:          plantNotes,
			}
			if plantPreset != "" {
				preset, ok := catalog.PresetByKey(strings.TrimSpace(strings.ToLower(plantPreset)))
				if !ok {
					return fmt.Errorf("unknown preset %q (see ecogrow plant presets)", plantPreset)
				}
				if in.Name == "" {
					in.Name = preset.Name
				}
				in.Type = preset.Type
				in.Category = preset.Category
			}

			plant, err := service.CreatePlant(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added plant %s (%s)\n", plant.Name, plant.ID)

			return withConfig(sqldb, func(cfg config.Config) error {
				unlocks, err := service.CheckAndUnlock(sqldb, profile.ID, time.Now(), cfg.Reward.MaxAttempts)
				if err != nil {
					return err
				}
				printUnlocks(cmd, unlocks)
				return nil
			})
		})
	},
}

var plantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your plants",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.EnsureProfile(sqldb)
			if err != nil {
				return err
			}
			plants, err := service.ListPlants(sqldb, profile.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tTYPE\tHEALTH\tLOCATION\tID")
			for _, p := range plants {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", p.Name, p.Type, p.HealthStatus, p.Location, p.ID)
			}
			return nil
		})
	},
}

var plantShowCmd = &cobra.Command{
	Use:   "show <plant>",
	Short: "Show a plant and its care plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plant, err := service.FindPlant(sqldb, args[0])
			if err != nil {
				return err
			}
			plan, err := catalog.Lookup(plant.Type)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", plant.Name)
			if plant.ScientificName != "" {
				fmt.Fprintf(out, "Scientific name: %s\n", plant.ScientificName)
			}
			fmt.Fprintf(out, "Type: %s\nCategory: %s\nHealth: %s\nLocation: %s\n", plant.Type, plant.Category, plant.HealthStatus, plant.Location)
			if plant.LightLevel != "" {
				fmt.Fprintf(out, "Light: %s\n", plant.LightLevel)
			}
			if plant.Notes != "" {
				fmt.Fprintf(out, "Notes: %s\n", plant.Notes)
			}
			fmt.Fprintf(out, "Added: %s\n", formatDay(plant.CreatedAt))

			fmt.Fprintln(out, "\nCare plan:")
			fmt.Fprintf(out, "  Watering: every %d day(s)\n", plan.WateringFrequency)
			fmt.Fprintf(out, "  Fertilizing: every %d day(s)\n", plan.FertilizingFrequency)
			if plan.PruningFrequency > 0 {
				fmt.Fprintf(out, "  Pruning: every %d day(s)\n", plan.PruningFrequency)
			}
			fmt.Fprintf(out, "  Light: %s\n  Temperature: %s\n  Humidity: %s\n", plan.LightRequirement, plan.TemperatureRange, plan.HumidityLevel)
			for _, tip := range plan.SpecialCare {
				fmt.Fprintf(out, "  - %s\n", tip)
			}
			return nil
		})
	},
}

var plantRemoveCmd = &cobra.Command{
	Use:   "remove <plant>",
	Short: "Remove a plant and its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plant, err := service.FindPlant(sqldb, args[0])
			if err != nil {
				return err
			}
			if err := service.DeletePlant(sqldb, plant.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed plant %s\n", plant.Name)
			return nil
		})
	},
}

var (
	plantSetLocation string
	plantSetLight    string
	plantSetNotes    string
)

var plantSetCmd = &cobra.Command{
	Use:   "set <plant>",
	Short: "Update a plant's location, light level, or notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plant, err := service.FindPlant(sqldb, args[0])
			if err != nil {
				return err
			}
			in := service.UpdatePlantInput{ID: plant.ID}
			if cmd.Flags().Changed("location") {
				in.Location = &plantSetLocation
			}
			if cmd.Flags().Changed("light") {
				light := model.LightLevel(strings.TrimSpace(plantSetLight))
				in.LightLevel = &light
			}
			if cmd.Flags().Changed("notes") {
				in.Notes = &plantSetNotes
			}
			if err := service.UpdatePlant(sqldb, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated plant %s\n", plant.Name)
			return nil
		})
	},
}

var plantTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List plant types and their care cadences",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "TYPE\tWATER\tFERTILIZE\tPRUNE\tLIGHT")
		for _, t := range catalog.PlantTypes() {
			plan, err := catalog.Lookup(t)
			if err != nil {
				return err
			}
			prune := "-"
			if plan.PruningFrequency > 0 {
				prune = fmt.Sprintf("%dd", plan.PruningFrequency)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%dd\t%dd\t%s\t%s\n",
				t, plan.WateringFrequency, plan.FertilizingFrequency, prune, plan.LightRequirement)
		}
		return nil
	},
}

var plantPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List popular-plant quick-add presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "PRESET\tNAME\tTYPE\tCATEGORY")
		for _, p := range catalog.Presets() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", p.Key, p.Name, p.Type, p.Category)
		}
		return nil
	},
}

func printUnlocks(cmd *cobra.Command, unlocks []model.Achievement) {
	for _, a := range unlocks {
		fmt.Fprintf(cmd.OutOrStdout(), "Achievement unlocked: %s (+%d coins, +%d points)\n", a.Title, a.CoinsReward, a.PointsReward)
	}
}

func init() {
	rootCmd.AddCommand(plantCmd)
	plantCmd.AddCommand(plantAddCmd, plantListCmd, plantShowCmd, plantSetCmd, plantRemoveCmd, plantTypesCmd, plantPresetsCmd)

	plantAddCmd.Flags().StringVar(&plantName, "name", "", "Plant name")
	plantAddCmd.Flags().StringVar(&plantScientific, "scientific-name", "", "Scientific name")
	plantAddCmd.Flags().StringVar(&plantType, "type", "", "Plant type (see ecogrow plant types)")
	plantAddCmd.Flags().StringVar(&plantCategory, "category", "", "Plant category")
	plantAddCmd.Flags().StringVar(&plantLocation, "location", "", "Where the plant lives (default Casa)")
	plantAddCmd.Flags().StringVar(&plantLight, "light", "", "Light level at the location")
	plantAddCmd.Flags().StringVar(&plantNotes, "notes", "", "Free-form notes")
	plantAddCmd.Flags().StringVar(&plantPreset, "preset", "", "Quick-add preset (see ecogrow plant presets)")

	plantSetCmd.Flags().StringVar(&plantSetLocation, "location", "", "Where the plant lives")
	plantSetCmd.Flags().StringVar(&plantSetLight, "light", "", "Light level at the location")
	plantSetCmd.Flags().StringVar(&plantSetNotes, "notes", "", "Free-form notes")
}
