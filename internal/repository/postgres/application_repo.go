package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	now := time.Now()
	app.Status = domain.ApplicationStatusPending
	app.CreatedAt = now
	app.UpdatedAt = now

	query := `INSERT INTO applications (job_id, candidate_id, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, query, app.JobID, app.CandidateID, app.Status, app.CreatedAt, app.UpdatedAt).Scan(&app.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT id, job_id, candidate_id, status, created_at, updated_at
              FROM applications WHERE id = $1`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.ApplicationWithJob, error) {
	query := `SELECT a.id, a.job_id, a.candidate_id, a.status, a.created_at, a.updated_at,
                     j.id, j.title, j.company, j.location, j.salary_amount, j.salary_text, j.employment_type
              FROM applications a
              JOIN jobs j ON a.job_id = j.id
              WHERE a.candidate_id = $1
              ORDER BY a.created_at DESC, a.id`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.ApplicationWithJob{}
	for rows.Next() {
		var a domain.ApplicationWithJob
		var location string
		err := rows.Scan(
			&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.Job.ID, &a.Job.Title, &a.Job.Company, &location, &a.Job.SalaryAmount, &a.Job.SalaryText, &a.Job.EmploymentType,
		)
		if err != nil {
			return nil, err
		}
		a.Job.Location = location
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

const applicationWithCandidateColumns = `
	a.id, a.job_id, a.candidate_id, a.status, a.created_at, a.updated_at,
	u.id, u.name, u.email, u.phone, u.location, u.bio, u.cv_url`

func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.ApplicationWithCandidate, error) {
	query := `SELECT ` + applicationWithCandidateColumns + `
              FROM applications a
              JOIN users u ON a.candidate_id = u.id
              WHERE a.job_id = $1
              ORDER BY a.created_at DESC, a.id`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.ApplicationWithCandidate{}
	for rows.Next() {
		var a domain.ApplicationWithCandidate
		err := rows.Scan(
			&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.Candidate.ID, &a.Candidate.Name, &a.Candidate.Email,
			&a.Candidate.Phone, &a.Candidate.Location, &a.Candidate.Bio, &a.Candidate.CvURL,
		)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachCandidateSkills(ctx, apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepo) ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.ApplicationWithCandidate, error) {
	query := `SELECT ` + applicationWithCandidateColumns + `,
                     j.id, j.title, j.company, j.location, j.salary_amount, j.salary_text, j.employment_type
              FROM applications a
              JOIN users u ON a.candidate_id = u.id
              JOIN jobs j ON a.job_id = j.id
              WHERE j.recruiter_id = $1
              ORDER BY a.created_at DESC, a.id`
	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.ApplicationWithCandidate{}
	for rows.Next() {
		var a domain.ApplicationWithCandidate
		var job domain.JobSummary
		err := rows.Scan(
			&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.Candidate.ID, &a.Candidate.Name, &a.Candidate.Email,
			&a.Candidate.Phone, &a.Candidate.Location, &a.Candidate.Bio, &a.Candidate.CvURL,
			&job.ID, &job.Title, &job.Company, &job.Location, &job.SalaryAmount, &job.SalaryText, &job.EmploymentType,
		)
		if err != nil {
			return nil, err
		}
		a.Job = &job
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachCandidateSkills(ctx, apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// attachCandidateSkills loads each candidate's skills in one query.
func (r *applicationRepo) attachCandidateSkills(ctx context.Context, apps []domain.ApplicationWithCandidate) error {
	if len(apps) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(apps))
	seen := make(map[int64]bool, len(apps))
	for i := range apps {
		apps[i].Candidate.Skills = []domain.Skill{}
		if !seen[apps[i].CandidateID] {
			seen[apps[i].CandidateID] = true
			ids = append(ids, apps[i].CandidateID)
		}
	}

	query := `SELECT us.user_id, s.id, s.name, s.created_at
              FROM user_skills us
              JOIN skills s ON us.skill_id = s.id
              WHERE us.user_id = ANY($1::bigint[])
              ORDER BY s.name`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byUser := map[int64][]domain.Skill{}
	for rows.Next() {
		var userID int64
		var s domain.Skill
		if err := rows.Scan(&userID, &s.ID, &s.Name, &s.CreatedAt); err != nil {
			return err
		}
		byUser[userID] = append(byUser[userID], s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range apps {
		if skills, ok := byUser[apps[i].CandidateID]; ok {
			apps[i].Candidate.Skills = skills
		}
	}
	return nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
