package models

import (
	"database/sql"
	"time"
)

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Don't include password in JSON
	Picture   string    `json:"picture,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRecord struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

type UserModel struct {
	DB *sql.DB
}

func NewUserModel(db *sql.DB) *UserModel {
	return &UserModel{DB: db}
}

func (m *UserModel) Create(username, email, password string) (*User, error) {
	user := &User{}
	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, picture, is_admin, created_at
	`
	err := m.DB.QueryRow(query, username, email, password).Scan(
		&user.ID, &user.Username, &user.Email, &user.Picture, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (m *UserModel) GetByEmail(email string) (*User, error) {
	user := &User{}
	query := `
		SELECT id, username, email, password, picture, is_admin, created_at
		FROM users WHERE email = $1
	`
	err := m.DB.QueryRow(query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Picture, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (m *UserModel) GetByID(id int) (*User, error) {
	user := &User{}
	query := `
		SELECT id, username, email, picture, is_admin, created_at
		FROM users WHERE id = $1
	`
	err := m.DB.QueryRow(query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Picture, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (m *UserModel) GetAll() ([]User, error) {
	query := `
		SELECT id, username, email, picture, is_admin, created_at
		FROM users ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Picture, &user.IsAdmin, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (m *UserModel) UpdateProfile(id int, username, picture string) error {
	query := `UPDATE users SET username = $1, picture = $2 WHERE id = $3`
	_, err := m.DB.Exec(query, username, picture, id)
	return err
}

func (m *UserModel) Delete(id int) error {
	_, err := m.DB.Exec(`DELETE FROM users WHERE id = $1`, id)
	return err
}

func (m *UserModel) Count() (int, error) {
	var count int
	err := m.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// AddLoginRecord appends a login entry, keeping only the last 10 per user.
func (m *UserModel) AddLoginRecord(userID int, ipAddress, userAgent string) error {
	_, err := m.DB.Exec(
		`INSERT INTO login_history (user_id, ip_address, user_agent) VALUES ($1, $2, $3)`,
		userID, ipAddress, userAgent,
	)
	if err != nil {
		return err
	}

	_, err = m.DB.Exec(`
		DELETE FROM login_history
		WHERE user_id = $1 AND id NOT IN (
			SELECT id FROM login_history WHERE user_id = $1 ORDER BY created_at DESC LIMIT 10
		)`, userID)
	return err
}

func (m *UserModel) GetLoginHistory(userID int) ([]LoginRecord, error) {
	rows, err := m.DB.Query(`
		SELECT id, user_id, ip_address, user_agent, created_at
		FROM login_history WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []LoginRecord{}
	for rows.Next() {
		var r LoginRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.IPAddress, &r.UserAgent, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
