// Package achievement decides which milestones a user has newly reached. It
// evaluates a snapshot of user aggregates against the closed achievement
// table; persistence and reward payout belong to the service layer.
package achievement

import (
	"github.com/diogochaves123/app-ecogrow/internal/catalog"
)

// UserState aggregates everything the unlock rules look at. Unlocked holds
// the achievement types already granted, so re-evaluation never emits a type
// twice.
type UserState struct {
	PlantCount        int
	PreviousPlants    int
	StreakDays        int
	HealthyStreakDays int
	BestPostLikes     int
	Unlocked          map[string]bool
}

// Unlock is one newly earned achievement with its payout.
type Unlock struct {
	Spec catalog.AchievementSpec
}

const (
	weekStreakDays     = 7
	collectorPlants    = 10
	greenThumbDays     = 30
	communityStarLikes = 50
)

// CheckUnlocks returns the achievements newly earned by state, in catalog
// order. Types already present in state.Unlocked are never re-emitted.
func CheckUnlocks(state UserState) []Unlock {
	var out []Unlock
	for _, spec := range catalog.Achievements() {
		if state.Unlocked[spec.Type] {
			continue
		}
		if reached(spec.Type, state) {
			out = append(out, Unlock{Spec: spec})
		}
	}
	return out
}

func reached(achievementType string, state UserState) bool {
	switch achievementType {
	case catalog.AchievementFirstPlant:
		return state.PreviousPlants == 0 && state.PlantCount >= 1
	case catalog.AchievementWeekStreak:
		return state.StreakDays >= weekStreakDays
	case catalog.AchievementPlantCollector:
		return state.PlantCount >= collectorPlants
	case catalog.AchievementGreenThumb:
		return state.HealthyStreakDays >= greenThumbDays
	case catalog.AchievementCommunityStar:
		return state.BestPostLikes >= communityStarLikes
	}
	return false
}
