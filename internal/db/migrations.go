package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS profiles (
  id TEXT PRIMARY KEY,
  full_name TEXT NOT NULL DEFAULT '',
  experience_level TEXT NOT NULL DEFAULT '',
  quiz_completed INTEGER NOT NULL DEFAULT 0,
  coins INTEGER NOT NULL DEFAULT 0 CHECK(coins >= 0),
  points INTEGER NOT NULL DEFAULT 0 CHECK(points >= 0),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS plants (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  scientific_name TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL,
  category TEXT NOT NULL,
  health_status TEXT NOT NULL DEFAULT 'good'
    CHECK(health_status IN ('excellent', 'good', 'fair', 'poor', 'critical')),
  location TEXT NOT NULL DEFAULT '',
  light_level TEXT NOT NULL DEFAULT '',
  notes TEXT NOT NULL DEFAULT '',
  healthy_since DATETIME,
  created_at DATETIME NOT NULL,
  updated_at DATETIME NOT NULL,
  FOREIGN KEY(user_id) REFERENCES profiles(id)
);

CREATE INDEX IF NOT EXISTS idx_plants_user_id ON plants(user_id);

CREATE TABLE IF NOT EXISTS care_tasks (
  id TEXT PRIMARY KEY,
  plant_id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  task_type TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  due_date DATETIME NOT NULL,
  completed INTEGER NOT NULL DEFAULT 0,
  completed_at DATETIME,
  recurring INTEGER NOT NULL DEFAULT 0,
  frequency_days INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL,
  CHECK(recurring = 0 OR frequency_days > 0),
  FOREIGN KEY(plant_id) REFERENCES plants(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_care_tasks_plant_id ON care_tasks(plant_id);
CREATE INDEX IF NOT EXISTS idx_care_tasks_due_date ON care_tasks(due_date);
CREATE INDEX IF NOT EXISTS idx_care_tasks_completed_at ON care_tasks(completed_at);

CREATE TABLE IF NOT EXISTS achievements (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  achievement_type TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  coins_reward INTEGER NOT NULL CHECK(coins_reward >= 0),
  points_reward INTEGER NOT NULL CHECK(points_reward >= 0),
  unlocked_at DATETIME NOT NULL,
  UNIQUE(user_id, achievement_type),
  FOREIGN KEY(user_id) REFERENCES profiles(id)
);

CREATE TABLE IF NOT EXISTS community_posts (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  plant_id TEXT,
  title TEXT NOT NULL,
  content TEXT NOT NULL DEFAULT '',
  likes INTEGER NOT NULL DEFAULT 0 CHECK(likes >= 0),
  created_at DATETIME NOT NULL,
  FOREIGN KEY(user_id) REFERENCES profiles(id)
);

CREATE INDEX IF NOT EXISTS idx_community_posts_user_id ON community_posts(user_id);
`,
	},
	{
		version: 2,
		name:    "app_config",
		sql: `
CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return nil
}
