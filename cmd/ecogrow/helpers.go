package ecogrow

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/diogochaves123/app-ecogrow/internal/app"
	"github.com/diogochaves123/app-ecogrow/internal/config"
	"github.com/diogochaves123/app-ecogrow/internal/db"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

func withDB(run func(*sql.DB) error) error {
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
	logger.Debug("database ready", zap.String("path", path))
	return run(sqldb)
}

// withConfig runs with the effective runtime config: built-in defaults,
// overlaid by config.yaml, overlaid by per-database settings.
func withConfig(sqldb *sql.DB, run func(config.Config) error) error {
	path := configPath
	if path == "" {
		var err error
		path, err = app.DefaultConfigPath()
		if err != nil {
			return err
		}
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg, err := service.ResolveConfig(sqldb, fileCfg)
	if err != nil {
		return err
	}
	return run(cfg)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func parseDateOrNow(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func formatDay(t time.Time) string {
	return t.Format("2006-01-02")
}
