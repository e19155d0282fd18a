package models

import (
	"database/sql"
	"time"
)

type SavedVideo struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	VideoURL    string     `json:"video_url"`
	Title       string     `json:"title"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Description string     `json:"description,omitempty"`
	IsWatched   bool       `json:"is_watched"`
	WatchedAt   *time.Time `json:"watched_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SavedVideoModel struct {
	DB *sql.DB
}

func NewSavedVideoModel(db *sql.DB) *SavedVideoModel {
	return &SavedVideoModel{DB: db}
}

func (m *SavedVideoModel) Create(userID int, videoURL, title, thumbnail, description string) (*SavedVideo, error) {
	video := &SavedVideo{}
	query := `
		INSERT INTO saved_videos (user_id, video_url, title, thumbnail, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, video_url, title, thumbnail, description, is_watched, watched_at, created_at
	`
	err := m.DB.QueryRow(query, userID, videoURL, title, thumbnail, description).Scan(
		&video.ID, &video.UserID, &video.VideoURL, &video.Title, &video.Thumbnail,
		&video.Description, &video.IsWatched, &video.WatchedAt, &video.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return video, nil
}

func (m *SavedVideoModel) GetByUser(userID int) ([]SavedVideo, error) {
	query := `
		SELECT id, user_id, video_url, title, thumbnail, description, is_watched, watched_at, created_at
		FROM saved_videos WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []SavedVideo{}
	for rows.Next() {
		var v SavedVideo
		if err := rows.Scan(&v.ID, &v.UserID, &v.VideoURL, &v.Title, &v.Thumbnail,
			&v.Description, &v.IsWatched, &v.WatchedAt, &v.CreatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// MarkWatched flips the watched flag and stamps the watch time.
func (m *SavedVideoModel) MarkWatched(id, userID int) error {
	result, err := m.DB.Exec(
		`UPDATE saved_videos SET is_watched = TRUE, watched_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (m *SavedVideoModel) Delete(id, userID int) error {
	result, err := m.DB.Exec(`DELETE FROM saved_videos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (m *SavedVideoModel) Count() (int, error) {
	var count int
	err := m.DB.QueryRow(`SELECT COUNT(*) FROM saved_videos`).Scan(&count)
	return count, err
}
