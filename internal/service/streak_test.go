package service_test

import (
	"testing"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/model"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

func TestStreakDaysCountsConsecutiveDays(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Alecrim", model.PlantTypeErva, time.Now().AddDate(0, 0, -5))

	asOf := time.Now()
	for _, offset := range []int{0, -1, -2} {
		if _, err := service.LogCare(sqldb, plant.ID, model.TaskWatering, asOf.AddDate(0, 0, offset)); err != nil {
			t.Fatalf("log care: %v", err)
		}
	}
	// Two completions on the same day count once.
	if _, err := service.LogCare(sqldb, plant.ID, model.TaskCleaning, asOf); err != nil {
		t.Fatalf("log care: %v", err)
	}

	streak, err := service.StreakDays(sqldb, profile.ID, asOf)
	if err != nil {
		t.Fatalf("streak days: %v", err)
	}
	if streak != 3 {
		t.Fatalf("expected streak of 3, got %d", streak)
	}
}

func TestStreakDaysBreaksOnGap(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Alecrim", model.PlantTypeErva, time.Now().AddDate(0, 0, -10))

	asOf := time.Now()
	for _, offset := range []int{0, -1, -3, -4} {
		if _, err := service.LogCare(sqldb, plant.ID, model.TaskWatering, asOf.AddDate(0, 0, offset)); err != nil {
			t.Fatalf("log care: %v", err)
		}
	}

	streak, err := service.StreakDays(sqldb, profile.ID, asOf)
	if err != nil {
		t.Fatalf("streak days: %v", err)
	}
	if streak != 2 {
		t.Fatalf("gap at day -2 must cap the streak at 2, got %d", streak)
	}
}

func TestStreakDaysZeroWhenStale(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Alecrim", model.PlantTypeErva, time.Now().AddDate(0, 0, -10))

	asOf := time.Now()
	if _, err := service.LogCare(sqldb, plant.ID, model.TaskWatering, asOf.AddDate(0, 0, -3)); err != nil {
		t.Fatalf("log care: %v", err)
	}

	streak, err := service.StreakDays(sqldb, profile.ID, asOf)
	if err != nil {
		t.Fatalf("streak days: %v", err)
	}
	if streak != 0 {
		t.Fatalf("a streak ending 3 days ago is dead, got %d", streak)
	}
}

func TestStreakDaysAliveViaYesterday(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Alecrim", model.PlantTypeErva, time.Now().AddDate(0, 0, -5))

	asOf := time.Now()
	if _, err := service.LogCare(sqldb, plant.ID, model.TaskWatering, asOf.AddDate(0, 0, -1)); err != nil {
		t.Fatalf("log care: %v", err)
	}

	streak, err := service.StreakDays(sqldb, profile.ID, asOf)
	if err != nil {
		t.Fatalf("streak days: %v", err)
	}
	if streak != 1 {
		t.Fatalf("yesterday's completion keeps the streak alive, got %d", streak)
	}
}

func TestStreakDaysEmptyHistory(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)

	streak, err := service.StreakDays(sqldb, profile.ID, time.Now())
	if err != nil {
		t.Fatalf("streak days: %v", err)
	}
	if streak != 0 {
		t.Fatalf("expected 0 for empty history, got %d", streak)
	}
}
