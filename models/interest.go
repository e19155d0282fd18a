package models

import (
	"database/sql"
)

type Interest struct {
	InterestID int    `json:"interest_id"`
	Name       string `json:"name"`
}

type InterestModel struct {
	DB *sql.DB
}

func NewInterestModel(db *sql.DB) *InterestModel {
	return &InterestModel{DB: db}
}

func (m *InterestModel) Create(name string) (*Interest, error) {
	interest := &Interest{}
	err := m.DB.QueryRow(
		`INSERT INTO interests (name) VALUES ($1) RETURNING interest_id, name`,
		name,
	).Scan(&interest.InterestID, &interest.Name)
	if err != nil {
		return nil, err
	}
	return interest, nil
}

func (m *InterestModel) GetAll() ([]Interest, error) {
	rows, err := m.DB.Query(`SELECT interest_id, name FROM interests ORDER BY interest_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interests := []Interest{}
	for rows.Next() {
		var i Interest
		if err := rows.Scan(&i.InterestID, &i.Name); err != nil {
			return nil, err
		}
		interests = append(interests, i)
	}
	return interests, rows.Err()
}

func (m *InterestModel) GetByID(id int) (*Interest, error) {
	interest := &Interest{}
	err := m.DB.QueryRow(`SELECT interest_id, name FROM interests WHERE interest_id = $1`, id).
		Scan(&interest.InterestID, &interest.Name)
	if err != nil {
		return nil, err
	}
	return interest, nil
}

func (m *InterestModel) Update(id int, name string) error {
	result, err := m.DB.Exec(`UPDATE interests SET name = $1 WHERE interest_id = $2`, name, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (m *InterestModel) Delete(id int) error {
	result, err := m.DB.Exec(`DELETE FROM interests WHERE interest_id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}
