package models

import (
	"database/sql"
	"time"
)

type Job struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	CompanyType    string    `json:"company_type"`
	Description    string    `json:"description"`
	RequiredSkills string    `json:"required_skills"`
	SalaryRange    string    `json:"salary_range"`
	CareerGrowth   string    `json:"career_growth"`
	Industry       string    `json:"industry"`
	CreatedAt      time.Time `json:"created_at"`
}

type JobModel struct {
	DB *sql.DB
}

func NewJobModel(db *sql.DB) *JobModel {
	return &JobModel{DB: db}
}

func (m *JobModel) Create(job *Job) (*Job, error) {
	created := &Job{}
	query := `
		INSERT INTO jobs (title, company_type, description, required_skills, salary_range, career_growth, industry)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, company_type, description, required_skills, salary_range, career_growth, industry, created_at
	`
	err := m.DB.QueryRow(query,
		job.Title, job.CompanyType, job.Description, job.RequiredSkills,
		job.SalaryRange, job.CareerGrowth, job.Industry,
	).Scan(
		&created.ID, &created.Title, &created.CompanyType, &created.Description,
		&created.RequiredSkills, &created.SalaryRange, &created.CareerGrowth,
		&created.Industry, &created.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (m *JobModel) GetAll() ([]Job, error) {
	query := `
		SELECT id, title, company_type, description, required_skills, salary_range, career_growth, industry, created_at
		FROM jobs ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Title, &j.CompanyType, &j.Description,
			&j.RequiredSkills, &j.SalaryRange, &j.CareerGrowth, &j.Industry, &j.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (m *JobModel) GetByID(id int) (*Job, error) {
	job := &Job{}
	query := `
		SELECT id, title, company_type, description, required_skills, salary_range, career_growth, industry, created_at
		FROM jobs WHERE id = $1
	`
	err := m.DB.QueryRow(query, id).Scan(
		&job.ID, &job.Title, &job.CompanyType, &job.Description,
		&job.RequiredSkills, &job.SalaryRange, &job.CareerGrowth, &job.Industry, &job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (m *JobModel) Delete(id int) error {
	result, err := m.DB.Exec(`DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (m *JobModel) Count() (int, error) {
	var count int
	err := m.DB.QueryRow(`SELECT COUNT(*) FROM jobs`).Scan(&count)
	return count, err
}
