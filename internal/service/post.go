package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/model"
)

type CreatePostInput struct {
	UserID  string
	PlantID string
	Title   string
	Content string
}

func CreatePost(db *sql.DB, in CreatePostInput) (*model.CommunityPost, error) {
	title, err := requireText("post title", in.Title)
	if err != nil {
		return nil, err
	}
	if in.PlantID != "" {
		if _, err := GetPlant(db, in.PlantID); err != nil {
			return nil, err
		}
	}

	id := newID()
	now := time.Now()
	var plantID any
	if in.PlantID != "" {
		plantID = in.PlantID
	}
	_, err = db.Exec(`
INSERT INTO community_posts(id, user_id, plant_id, title, content, likes, created_at)
VALUES(?, ?, ?, ?, ?, 0, ?)
`, id, in.UserID, plantID, title, strings.TrimSpace(in.Content), formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return GetPost(db, id)
}

// LikePost increments the like counter atomically and returns the new total.
func LikePost(db *sql.DB, id string) (int, error) {
	res, err := db.Exec(`UPDATE community_posts SET likes = likes + 1 WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("like post %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected for post %s: %w", id, err)
	}
	if affected == 0 {
		return 0, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}

	var likes int
	if err := db.QueryRow(`SELECT likes FROM community_posts WHERE id = ?`, id).Scan(&likes); err != nil {
		return 0, fmt.Errorf("load post likes %s: %w", id, err)
	}
	return likes, nil
}

func GetPost(db *sql.DB, id string) (*model.CommunityPost, error) {
	row := db.QueryRow(postSelect+` WHERE id = ?`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load post %s: %w", id, err)
	}
	return p, nil
}

func ListPosts(db *sql.DB, userID string) ([]model.CommunityPost, error) {
	rows, err := db.Query(postSelect+` WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.CommunityPost, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

const postSelect = `
SELECT id, user_id, plant_id, title, content, likes, created_at
FROM community_posts`

func scanPost(row rowScanner) (*model.CommunityPost, error) {
	var (
		p         model.CommunityPost
		plantID   sql.NullString
		createdAt string
	)
	err := row.Scan(&p.ID, &p.UserID, &plantID, &p.Title, &p.Content, &p.Likes, &createdAt)
	if err != nil {
		return nil, err
	}
	if plantID.Valid {
		p.PlantID = plantID.String
	}
	if p.CreatedAt, err = parseTime("post created_at", createdAt); err != nil {
		return nil, err
	}
	return &p, nil
}
