package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobWithRecruiterColumns = `
	j.id, j.title, j.description, j.company, j.location,
	j.salary_amount, j.salary_currency, j.salary_text, j.employment_type,
	j.recruiter_id, j.is_active, j.created_at, j.updated_at,
	u.id, u.name, u.email`

func scanJobWithRecruiter(rows pgx.Rows) (*domain.JobWithDetails, error) {
	var job domain.JobWithDetails
	err := rows.Scan(
		&job.ID, &job.Title, &job.Description, &job.Company, &job.Location,
		&job.SalaryAmount, &job.SalaryCurrency, &job.SalaryText, &job.EmploymentType,
		&job.RecruiterID, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
		&job.Recruiter.ID, &job.Recruiter.Name, &job.Recruiter.Email,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// predicateBuilder collects WHERE conditions with positional args. No
// condition for a field means no constraint on it.
type predicateBuilder struct {
	conds []string
	args  []any
}

func (b *predicateBuilder) add(cond string, vals ...any) {
	placeholders := make([]any, len(vals))
	for i, v := range vals {
		b.args = append(b.args, v)
		placeholders[i] = fmt.Sprintf("$%d", len(b.args))
	}
	b.conds = append(b.conds, fmt.Sprintf(cond, placeholders...))
}

func (b *predicateBuilder) where() string {
	return strings.Join(b.conds, " AND ")
}

// buildJobPredicates translates the optional filter fields into a conjunction
// of SQL predicates. Listing is always restricted to active jobs; a non-nil
// candidateSkillIDs additionally requires overlap with the candidate's skills.
func buildJobPredicates(filter domain.JobFilter, candidateSkillIDs []int64) *predicateBuilder {
	b := &predicateBuilder{}
	b.conds = append(b.conds, "j.is_active = TRUE")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		b.add("(j.title LIKE %[1]s OR j.description LIKE %[1]s OR j.company LIKE %[1]s)", pattern)
	}
	if filter.Location != "" {
		b.add("j.location LIKE %s", "%"+filter.Location+"%")
	}
	if filter.Company != "" {
		b.add("j.company LIKE %s", "%"+filter.Company+"%")
	}
	if filter.EmploymentType != "" {
		b.add("j.employment_type = %s", filter.EmploymentType)
	}
	// A NULL salary_amount fails both comparisons, so unparseable salaries
	// drop out exactly when a bound is requested.
	if filter.MinSalary != nil {
		b.add("j.salary_amount >= %s", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		b.add("j.salary_amount <= %s", *filter.MaxSalary)
	}
	if len(filter.SkillIDs) > 0 {
		b.add("EXISTS (SELECT 1 FROM job_skills js WHERE js.job_id = j.id AND js.skill_id = ANY(%s::bigint[]))", filter.SkillIDs)
	}
	if candidateSkillIDs != nil {
		b.add("EXISTS (SELECT 1 FROM job_skills js2 WHERE js2.job_id = j.id AND js2.skill_id = ANY(%s::bigint[]))", candidateSkillIDs)
	}

	return b
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	job.IsActive = true

	query := `INSERT INTO jobs (title, description, company, location, salary_amount, salary_currency, salary_text, employment_type, recruiter_id, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err = tx.QueryRow(ctx, query,
		job.Title, job.Description, job.Company, job.Location,
		job.SalaryAmount, job.SalaryCurrency, job.SalaryText, job.EmploymentType,
		job.RecruiterID, job.IsActive, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	if err != nil {
		return err
	}

	if len(skillIDs) > 0 {
		insert := `INSERT INTO job_skills (job_id, skill_id, created_at)
                   SELECT $1, unnest($2::bigint[]), $3
                   ON CONFLICT (job_id, skill_id) DO NOTHING`
		if _, err := tx.Exec(ctx, insert, job.ID, skillIDs, now); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, title, description, company, location, salary_amount, salary_currency, salary_text, employment_type, recruiter_id, is_active, created_at, updated_at
              FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.Company, &job.Location,
		&job.SalaryAmount, &job.SalaryCurrency, &job.SalaryText, &job.EmploymentType,
		&job.RecruiterID, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetActiveDetails(ctx context.Context, id int64) (*domain.JobWithDetails, error) {
	query := `SELECT ` + jobWithRecruiterColumns + `
              FROM jobs j
              JOIN users u ON j.recruiter_id = u.id
              WHERE j.id = $1 AND j.is_active = TRUE`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}
	job, err := scanJobWithRecruiter(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	if err := r.attachSkills(ctx, []*domain.JobWithDetails{job}); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) FetchActive(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithDetails, error) {
	return r.fetch(ctx, filter, nil)
}

func (r *jobRepo) FetchActiveMatching(ctx context.Context, filter domain.JobFilter, candidateSkillIDs []int64) ([]domain.JobWithDetails, error) {
	if len(candidateSkillIDs) == 0 {
		return nil, nil
	}
	return r.fetch(ctx, filter, candidateSkillIDs)
}

func (r *jobRepo) fetch(ctx context.Context, filter domain.JobFilter, candidateSkillIDs []int64) ([]domain.JobWithDetails, error) {
	b := buildJobPredicates(filter, candidateSkillIDs)
	query := `SELECT ` + jobWithRecruiterColumns + `
              FROM jobs j
              JOIN users u ON j.recruiter_id = u.id
              WHERE ` + b.where() + `
              ORDER BY j.created_at DESC, j.id`

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithDetails
	for rows.Next() {
		job, err := scanJobWithRecruiter(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.JobWithDetails, len(jobs))
	for i := range jobs {
		refs[i] = &jobs[i]
	}
	if err := r.attachSkills(ctx, refs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// attachSkills loads the skill lists for all given jobs in one query.
func (r *jobRepo) attachSkills(ctx context.Context, jobs []*domain.JobWithDetails) error {
	if len(jobs) == 0 {
		return nil
	}

	ids := make([]int64, len(jobs))
	byID := make(map[int64]*domain.JobWithDetails, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
		byID[job.ID] = job
		job.Skills = []domain.Skill{}
	}

	query := `SELECT js.job_id, s.id, s.name, s.created_at
              FROM job_skills js
              JOIN skills s ON js.skill_id = s.id
              WHERE js.job_id = ANY($1::bigint[])
              ORDER BY s.name`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var jobID int64
		var s domain.Skill
		if err := rows.Scan(&jobID, &s.ID, &s.Name, &s.CreatedAt); err != nil {
			return err
		}
		if job, ok := byID[jobID]; ok {
			job.Skills = append(job.Skills, s)
		}
	}
	return rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, id int64, upd domain.JobUpdate) error {
	set := []string{}
	args := []any{id}
	assign := func(column string, val any) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		assign("title", *upd.Title)
	}
	if upd.Description != nil {
		assign("description", *upd.Description)
	}
	if upd.Company != nil {
		assign("company", *upd.Company)
	}
	if upd.Location != nil {
		assign("location", *upd.Location)
	}
	if upd.ClearSalary {
		set = append(set, "salary_amount = NULL")
		if upd.SalaryText == nil {
			set = append(set, "salary_text = NULL")
		}
	} else if upd.SalaryAmount != nil {
		assign("salary_amount", *upd.SalaryAmount)
	}
	if upd.SalaryText != nil {
		assign("salary_text", *upd.SalaryText)
	}
	if upd.SalaryCurrency != nil {
		assign("salary_currency", *upd.SalaryCurrency)
	}
	if upd.EmploymentType != nil {
		assign("employment_type", *upd.EmploymentType)
	}
	if upd.IsActive != nil {
		assign("is_active", *upd.IsActive)
	}
	assign("updated_at", time.Now())

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $1`, strings.Join(set, ", "))
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) ReplaceJobSkills(ctx context.Context, jobID int64, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	if len(skillIDs) > 0 {
		query := `INSERT INTO job_skills (job_id, skill_id, created_at)
                  SELECT $1, unnest($2::bigint[]), $3
                  ON CONFLICT (job_id, skill_id) DO NOTHING`
		if _, err := tx.Exec(ctx, query, jobID, skillIDs, time.Now()); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes the job; job_skills and applications go with it via
// ON DELETE CASCADE.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
