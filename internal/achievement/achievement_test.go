package achievement_test

import (
	"testing"

	"github.com/diogochaves123/app-ecogrow/internal/achievement"
	"github.com/diogochaves123/app-ecogrow/internal/catalog"
)

func unlockedTypes(unlocks []achievement.Unlock) map[string]bool {
	out := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		out[u.Spec.Type] = true
	}
	return out
}

func TestFirstPlantTransition(t *testing.T) {
	t.Parallel()
	state := achievement.UserState{
		PlantCount:     1,
		PreviousPlants: 0,
		Unlocked:       map[string]bool{},
	}
	got := unlockedTypes(achievement.CheckUnlocks(state))
	if !got[catalog.AchievementFirstPlant] {
		t.Fatal("expected first_plant unlock on 0 -> 1 transition")
	}

	state.PreviousPlants = 1
	state.PlantCount = 2
	got = unlockedTypes(achievement.CheckUnlocks(state))
	if got[catalog.AchievementFirstPlant] {
		t.Fatal("first_plant must not trigger past the first plant")
	}
}

func TestUnlockThresholds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		state achievement.UserState
		want  string
	}{
		{"week streak at 7", achievement.UserState{StreakDays: 7, PreviousPlants: 1, PlantCount: 1}, catalog.AchievementWeekStreak},
		{"collector at 10", achievement.UserState{PlantCount: 10, PreviousPlants: 9}, catalog.AchievementPlantCollector},
		{"green thumb at 30 days", achievement.UserState{HealthyStreakDays: 30, PreviousPlants: 1, PlantCount: 1}, catalog.AchievementGreenThumb},
		{"community star at 50 likes", achievement.UserState{BestPostLikes: 50, PreviousPlants: 1, PlantCount: 1}, catalog.AchievementCommunityStar},
	}
	for _, tc := range cases {
		tc.state.Unlocked = map[string]bool{}
		got := unlockedTypes(achievement.CheckUnlocks(tc.state))
		if !got[tc.want] {
			t.Errorf("%s: expected %s unlock, got %v", tc.name, tc.want, got)
		}
	}
}

func TestBelowThresholdNoUnlock(t *testing.T) {
	t.Parallel()
	state := achievement.UserState{
		PlantCount:        9,
		PreviousPlants:    8,
		StreakDays:        6,
		HealthyStreakDays: 29,
		BestPostLikes:     49,
		Unlocked:          map[string]bool{},
	}
	if unlocks := achievement.CheckUnlocks(state); len(unlocks) != 0 {
		t.Fatalf("expected no unlocks below thresholds, got %+v", unlocks)
	}
}

func TestAtMostOncePerType(t *testing.T) {
	t.Parallel()
	state := achievement.UserState{
		PlantCount:     10,
		PreviousPlants: 0,
		StreakDays:     9,
		BestPostLikes:  80,
		Unlocked:       map[string]bool{},
	}
	first := achievement.CheckUnlocks(state)
	if len(first) == 0 {
		t.Fatal("expected unlocks on first evaluation")
	}
	for _, u := range first {
		state.Unlocked[u.Spec.Type] = true
	}

	second := achievement.CheckUnlocks(state)
	if len(second) != 0 {
		t.Fatalf("repeated evaluation re-emitted unlocks: %+v", second)
	}
}

func TestCheckUnlocksCatalogOrder(t *testing.T) {
	t.Parallel()
	state := achievement.UserState{
		PlantCount:     10,
		PreviousPlants: 0,
		StreakDays:     7,
		Unlocked:       map[string]bool{},
	}
	unlocks := achievement.CheckUnlocks(state)
	if len(unlocks) != 3 {
		t.Fatalf("expected 3 unlocks, got %d", len(unlocks))
	}
	want := []string{catalog.AchievementFirstPlant, catalog.AchievementWeekStreak, catalog.AchievementPlantCollector}
	for i, u := range unlocks {
		if u.Spec.Type != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], u.Spec.Type)
		}
	}
}
