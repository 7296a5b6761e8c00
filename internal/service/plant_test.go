package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/catalog"
	"github.com/diogochaves123/app-ecogrow/internal/model"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

func TestCreatePlantDefaults(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)

	plant, err := service.CreatePlant(sqldb, service.CreatePlantInput{
		UserID:   profile.ID,
		Name:     "Manjericão",
		Type:     model.PlantTypeErva,
		Category: model.CategoryHerb,
	})
	if err != nil {
		t.Fatalf("create plant: %v", err)
	}
	if plant.HealthStatus != model.HealthGood {
		t.Errorf("new plants start at good, got %s", plant.HealthStatus)
	}
	if plant.Location != "Casa" {
		t.Errorf("expected default location Casa, got %q", plant.Location)
	}
	if plant.ID == "" {
		t.Error("expected generated plant id")
	}
}

func TestCreatePlantUnknownTypeFails(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)

	_, err := service.CreatePlant(sqldb, service.CreatePlantInput{
		UserID:   profile.ID,
		Name:     "Mystery",
		Type:     model.PlantType("alienigena"),
		Category: model.CategoryIndoor,
	})
	if !errors.Is(err, catalog.ErrUnknownPlantType) {
		t.Fatalf("expected ErrUnknownPlantType, got %v", err)
	}
}

func TestFindPlantByNameAndID(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Lavanda", model.PlantTypeMedicinal, time.Now())

	byID, err := service.FindPlant(sqldb, plant.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byID.ID != plant.ID {
		t.Fatalf("expected %s, got %s", plant.ID, byID.ID)
	}

	byName, err := service.FindPlant(sqldb, "lavanda")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if byName.ID != plant.ID {
		t.Fatalf("expected %s, got %s", plant.ID, byName.ID)
	}

	_, err = service.FindPlant(sqldb, "samambaia")
	if !service.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFindPlantAmbiguousName(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	addPlant(t, sqldb, profile.ID, "Suculenta", model.PlantTypeOrnamental, time.Now())
	addPlant(t, sqldb, profile.ID, "Suculenta", model.PlantTypeOrnamental, time.Now())

	if _, err := service.FindPlant(sqldb, "Suculenta"); err == nil {
		t.Fatal("expected ambiguity error for duplicate names")
	}
}

func TestDeletePlantCascadesTasks(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	profile := newTestProfile(t, sqldb)
	plant := addPlant(t, sqldb, profile.ID, "Tomate", model.PlantTypeHortalica, time.Now())

	if _, err := service.LogCare(sqldb, plant.ID, model.TaskWatering, time.Now()); err != nil {
		t.Fatalf("log care: %v", err)
	}
	if err := service.DeletePlant(sqldb, plant.ID); err != nil {
		t.Fatalf("delete plant: %v", err)
	}

	history, err := service.TaskHistory(sqldb, plant.ID)
	if err != nil {
		t.Fatalf("task history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected tasks removed with plant, found %d", len(history))
	}

	if err := service.DeletePlant(sqldb, plant.ID); !service.IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
