package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Score struct {
	ScoreID        string    `json:"score_id"`
	UserID         int       `json:"user_id"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	WrongAnswers   int       `json:"wrong_answers"`
	CreatedAt      time.Time `json:"created_at"`
}

type ScoreModel struct {
	DB *sql.DB
}

func NewScoreModel(db *sql.DB) *ScoreModel {
	return &ScoreModel{DB: db}
}

// NewScoreID builds an ID in the month_year_serial format used by the
// quiz pages.
func NewScoreID(now time.Time) string {
	serial := uuid.New().ID() % 1000
	return fmt.Sprintf("%d_%d_%d", int(now.Month()), now.Year(), serial)
}

func (m *ScoreModel) Create(userID, totalQuestions, correctAnswers, wrongAnswers int) (*Score, error) {
	score := &Score{}
	query := `
		INSERT INTO scores (score_id, user_id, total_questions, correct_answers, wrong_answers)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING score_id, user_id, total_questions, correct_answers, wrong_answers, created_at
	`
	err := m.DB.QueryRow(query, NewScoreID(time.Now()), userID, totalQuestions, correctAnswers, wrongAnswers).Scan(
		&score.ScoreID, &score.UserID, &score.TotalQuestions, &score.CorrectAnswers, &score.WrongAnswers, &score.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return score, nil
}

func (m *ScoreModel) GetAll() ([]Score, error) {
	return m.query(`SELECT score_id, user_id, total_questions, correct_answers, wrong_answers, created_at FROM scores ORDER BY created_at DESC`)
}

func (m *ScoreModel) GetByUser(userID int) ([]Score, error) {
	return m.query(`SELECT score_id, user_id, total_questions, correct_answers, wrong_answers, created_at FROM scores WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// Update modifies a score owned by userID. Scores belonging to other
// users are invisible here and report sql.ErrNoRows.
func (m *ScoreModel) Update(scoreID string, userID, totalQuestions, correctAnswers, wrongAnswers int) error {
	result, err := m.DB.Exec(
		`UPDATE scores SET total_questions = $1, correct_answers = $2, wrong_answers = $3 WHERE score_id = $4 AND user_id = $5`,
		totalQuestions, correctAnswers, wrongAnswers, scoreID, userID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes a score owned by userID, with the same visibility rule
// as Update.
func (m *ScoreModel) Delete(scoreID string, userID int) error {
	result, err := m.DB.Exec(`DELETE FROM scores WHERE score_id = $1 AND user_id = $2`, scoreID, userID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (m *ScoreModel) Count() (int, error) {
	var count int
	err := m.DB.QueryRow(`SELECT COUNT(*) FROM scores`).Scan(&count)
	return count, err
}

func (m *ScoreModel) query(query string, args ...interface{}) ([]Score, error) {
	rows, err := m.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := []Score{}
	for rows.Next() {
		var s Score
		if err := rows.Scan(&s.ScoreID, &s.UserID, &s.TotalQuestions, &s.CorrectAnswers, &s.WrongAnswers, &s.CreatedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
