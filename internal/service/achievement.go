package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/achievement"
	"github.com/diogochaves123/app-ecogrow/internal/model"
	"github.com/diogochaves123/app-ecogrow/internal/schedule"
)

// CheckAndUnlock evaluates the user's aggregates against the achievement
// table and persists any new unlocks with their reward payouts. Each unlock
// insert and its profile increment commit in one transaction; the unique
// (user_id, achievement_type) index makes re-evaluation idempotent. Transient
// storage conflicts are retried up to maxAttempts before surfacing.
func CheckAndUnlock(db *sql.DB, userID string, asOf time.Time, maxAttempts int) ([]model.Achievement, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	state, err := buildUserState(db, userID, asOf)
	if err != nil {
		return nil, err
	}

	unlocked := make([]model.Achievement, 0)
	for _, unlock := range achievement.CheckUnlocks(state) {
		granted, err := persistUnlock(db, userID, unlock, asOf, maxAttempts)
		if err != nil {
			return unlocked, err
		}
		if granted != nil {
			unlocked = append(unlocked, *granted)
		}
	}
	return unlocked, nil
}

func buildUserState(db *sql.DB, userID string, asOf time.Time) (achievement.UserState, error) {
	state := achievement.UserState{Unlocked: make(map[string]bool)}

	count, err := CountPlants(db, userID)
	if err != nil {
		return state, err
	}
	state.PlantCount = count

	streak, err := StreakDays(db, userID, asOf)
	if err != nil {
		return state, err
	}
	state.StreakDays = streak

	healthyDays, err := longestHealthyStretch(db, userID, asOf)
	if err != nil {
		return state, err
	}
	state.HealthyStreakDays = healthyDays

	likes, err := bestPostLikes(db, userID)
	if err != nil {
		return state, err
	}
	state.BestPostLikes = likes

	rows, err := db.Query(`SELECT achievement_type FROM achievements WHERE user_id = ?`, userID)
	if err != nil {
		return state, fmt.Errorf("load unlocked achievements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var achievementType string
		if err := rows.Scan(&achievementType); err != nil {
			return state, fmt.Errorf("scan unlocked achievement: %w", err)
		}
		state.Unlocked[achievementType] = true
	}
	if err := rows.Err(); err != nil {
		return state, fmt.Errorf("iterate unlocked achievements: %w", err)
	}
	return state, nil
}

// longestHealthyStretch returns the longest current continuous good-or-better
// run, in whole days, across the user's plants.
func longestHealthyStretch(db *sql.DB, userID string, asOf time.Time) (int, error) {
	rows, err := db.Query(`
SELECT healthy_since
FROM plants
WHERE user_id = ? AND healthy_since IS NOT NULL AND health_status IN ('excellent', 'good')
`, userID)
	if err != nil {
		return 0, fmt.Errorf("query healthy stretches: %w", err)
	}
	defer rows.Close()

	best := 0
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return 0, fmt.Errorf("scan healthy_since: %w", err)
		}
		since, err := parseTime("plant healthy_since", raw)
		if err != nil {
			return 0, err
		}
		if days := schedule.OverdueDays(asOf, since); days > best {
			best = days
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate healthy stretches: %w", err)
	}
	return best, nil
}

func bestPostLikes(db *sql.DB, userID string) (int, error) {
	var likes sql.NullInt64
	err := db.QueryRow(`SELECT MAX(likes) FROM community_posts WHERE user_id = ?`, userID).Scan(&likes)
	if err != nil {
		return 0, fmt.Errorf("query best post likes: %w", err)
	}
	if !likes.Valid {
		return 0, nil
	}
	return int(likes.Int64), nil
}

// persistUnlock grants one achievement. The insert-or-ignore guards against a
// concurrent grant of the same type: the reward is applied only when this
// call actually inserted the row, so a payout can neither be lost nor
// double-applied.
func persistUnlock(db *sql.DB, userID string, unlock achievement.Unlock, asOf time.Time, maxAttempts int) (*model.Achievement, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		granted, err := tryPersistUnlock(db, userID, unlock, asOf)
		if err == nil {
			return granted, nil
		}
		if !IsTransient(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("unlock %s for %s: retries exhausted: %w", unlock.Spec.Type, userID, lastErr)
}

func tryPersistUnlock(db *sql.DB, userID string, unlock achievement.Unlock, asOf time.Time) (*model.Achievement, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin unlock tx: %w", err)
	}

	id := newID()
	spec := unlock.Spec
	res, err := tx.Exec(`
INSERT OR IGNORE INTO achievements(id, user_id, achievement_type, title, description, coins_reward, points_reward, unlocked_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, id, userID, spec.Type, spec.Title, spec.Description, spec.Coins, spec.Points, formatTime(asOf))
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("insert achievement %s: %w", spec.Type, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("read rows affected for achievement %s: %w", spec.Type, err)
	}
	if affected == 0 {
		// Already unlocked by an earlier or concurrent evaluation.
		_ = tx.Rollback()
		return nil, nil
	}

	if err := applyReward(tx, userID, spec.Coins, spec.Points, asOf); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit unlock %s: %w", spec.Type, err)
	}

	return &model.Achievement{
		ID:              id,
		UserID:          userID,
		AchievementType: spec.Type,
		Title:           spec.Title,
		Description:     spec.Description,
		CoinsReward:     spec.Coins,
		PointsReward:    spec.Points,
		UnlockedAt:      asOf,
	}, nil
}

func ListAchievements(db *sql.DB, userID string) ([]model.Achievement, error) {
	rows, err := db.Query(`
SELECT id, user_id, achievement_type, title, description, coins_reward, points_reward, unlocked_at
FROM achievements
WHERE user_id = ?
ORDER BY unlocked_at ASC
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	out := make([]model.Achievement, 0)
	for rows.Next() {
		var (
			a          model.Achievement
			unlockedAt string
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.AchievementType, &a.Title, &a.Description,
			&a.CoinsReward, &a.PointsReward, &unlockedAt); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		if a.UnlockedAt, err = parseTime("achievement unlocked_at", unlockedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}
	return out, nil
}
