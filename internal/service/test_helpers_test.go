package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/config"
	"github.com/diogochaves123/app-ecogrow/internal/db"
	"github.com/diogochaves123/app-ecogrow/internal/model"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ecogrow.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}

func newTestProfile(t *testing.T, sqldb *sql.DB) *model.Profile {
	t.Helper()
	profile, err := service.EnsureProfile(sqldb)
	if err != nil {
		t.Fatalf("ensure profile: %v", err)
	}
	return profile
}

func addPlant(t *testing.T, sqldb *sql.DB, userID, name string, plantType model.PlantType, createdAt time.Time) *model.Plant {
	t.Helper()
	plant, err := service.CreatePlant(sqldb, service.CreatePlantInput{
		UserID:    userID,
		Name:      name,
		Type:      plantType,
		Category:  model.CategoryVegetable,
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("create plant %s: %v", name, err)
	}
	return plant
}

func testConfig() config.Config {
	return config.Default()
}
