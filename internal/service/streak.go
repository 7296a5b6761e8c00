package service

import (
	"database/sql"
	"fmt"
	"time"
)

// StreakDays counts the consecutive days with at least one completed care
// task, ending at asOf. The streak is still alive when the latest completion
// day is asOf's day or the day before it.
func StreakDays(db *sql.DB, userID string, asOf time.Time) (int, error) {
	rows, err := db.Query(`
SELECT DISTINCT substr(completed_at, 1, 10) AS day
FROM care_tasks
WHERE user_id = ? AND completed = 1 AND completed_at IS NOT NULL
ORDER BY day DESC
`, userID)
	if err != nil {
		return 0, fmt.Errorf("query completion days: %w", err)
	}
	defer rows.Close()

	days := make([]string, 0)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return 0, fmt.Errorf("scan completion day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate completion days: %w", err)
	}
	if len(days) == 0 {
		return 0, nil
	}

	today := asOf.Format("2006-01-02")
	yesterday := asOf.AddDate(0, 0, -1).Format("2006-01-02")
	if days[0] != today && days[0] != yesterday {
		return 0, nil
	}

	streak := 1
	prev, err := time.Parse("2006-01-02", days[0])
	if err != nil {
		return 0, fmt.Errorf("parse completion day %q: %w", days[0], err)
	}
	for _, day := range days[1:] {
		cur, err := time.Parse("2006-01-02", day)
		if err != nil {
			return 0, fmt.Errorf("parse completion day %q: %w", day, err)
		}
		if !cur.AddDate(0, 0, 1).Equal(prev) {
			break
		}
		streak++
		prev = cur
	}
	return streak, nil
}
