package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/model"
)

var experienceLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
	"expert":       true,
}

// EnsureProfile returns the local profile, creating it on first use. The CLI
// is single-user: there is exactly one profile row per database.
func EnsureProfile(db *sql.DB) (*model.Profile, error) {
	p, err := CurrentProfile(db)
	if err != nil && !IsNotFound(err) {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	id := newID()
	now := time.Now()
	_, err = db.Exec(`
INSERT INTO profiles(id, created_at, updated_at)
VALUES(?, ?, ?)
`, id, formatTime(now), formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return CurrentProfile(db)
}

// CurrentProfile loads the local profile or ErrNotFound before init.
func CurrentProfile(db *sql.DB) (*model.Profile, error) {
	var (
		p         model.Profile
		quiz      int
		createdAt string
		updatedAt string
	)
	err := db.QueryRow(`
SELECT id, full_name, experience_level, quiz_completed, coins, points, created_at, updated_at
FROM profiles
ORDER BY created_at ASC
LIMIT 1
`).Scan(&p.ID, &p.FullName, &p.ExperienceLevel, &quiz, &p.Coins, &p.Points, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p.QuizCompleted = quiz != 0
	if p.CreatedAt, err = parseTime("profile created_at", createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime("profile updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

type UpdateProfileInput struct {
	FullName        *string
	ExperienceLevel *string
	QuizCompleted   *bool
}

func UpdateProfile(db *sql.DB, userID string, in UpdateProfileInput) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if in.FullName != nil {
		sets = append(sets, "full_name = ?")
		args = append(args, strings.TrimSpace(*in.FullName))
	}
	if in.ExperienceLevel != nil {
		level := strings.TrimSpace(strings.ToLower(*in.ExperienceLevel))
		if !experienceLevels[level] {
			return fmt.Errorf("invalid experience level %q (expected beginner, intermediate, advanced or expert)", *in.ExperienceLevel)
		}
		sets = append(sets, "experience_level = ?")
		args = append(args, level)
	}
	if in.QuizCompleted != nil {
		quiz := 0
		if *in.QuizCompleted {
			quiz = 1
		}
		sets = append(sets, "quiz_completed = ?")
		args = append(args, quiz)
	}
	if len(sets) == 0 {
		return fmt.Errorf("nothing to update")
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, formatTime(time.Now()), userID)

	res, err := db.Exec(`UPDATE profiles SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for profile: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	return nil
}

// applyReward increments the user's coin and point balances. The increment is
// a single atomic UPDATE, so two unlocks in flight for the same user cannot
// lose each other's payout.
func applyReward(tx *sql.Tx, userID string, coins, points int, at time.Time) error {
	if err := validateNonNegativeInt("coins", coins); err != nil {
		return err
	}
	if err := validateNonNegativeInt("points", points); err != nil {
		return err
	}
	res, err := tx.Exec(`
UPDATE profiles
SET coins = coins + ?, points = points + ?, updated_at = ?
WHERE id = ?
`, coins, points, formatTime(at), userID)
	if err != nil {
		return fmt.Errorf("apply reward for %s: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for reward: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	return nil
}
