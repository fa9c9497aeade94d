package domain

import (
	"context"
	"time"
)

type Job struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	// SalaryAmount is the normalized numeric salary used for bound filters.
	// Nil when the posting carries no parseable figure; such jobs are
	// excluded whenever a salary bound is requested.
	SalaryAmount   *int64    `json:"salary_amount,omitempty"`
	SalaryCurrency string    `json:"salary_currency,omitempty"`
	SalaryText     *string   `json:"salary_text,omitempty"`
	EmploymentType *string   `json:"employment_type,omitempty"`
	RecruiterID    int64     `json:"recruiter_id"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JobWithDetails extends Job with the recruiter reference and skill list
// returned by listing and detail endpoints. MatchCount is only populated by
// the relevance ranking; it is omitted elsewhere.
type JobWithDetails struct {
	Job
	Recruiter  UserRef `json:"recruiter"`
	Skills     []Skill `json:"skills"`
	MatchCount int     `json:"match_count,omitempty"`
}

// JobFilter is the optional-field query translated into a conjunction of
// storage predicates. The zero value means "no constraint"; listing always
// applies is_active = true on top of it.
type JobFilter struct {
	Search         string
	Location       string
	Company        string
	EmploymentType string
	MinSalary      *int64
	MaxSalary      *int64
	// SkillIDs qualifies a job when it has at least one of the given skills
	// (OR within this filter, AND against the rest).
	SkillIDs []int64
}

// JobUpdate carries the mutable job fields; nil means "leave as is".
// SkillIDs non-nil replaces the full association set; an empty non-nil slice
// clears it.
type JobUpdate struct {
	Title          *string
	Description    *string
	Company        *string
	Location       *string
	SalaryAmount   *int64
	SalaryCurrency *string
	SalaryText     *string
	ClearSalary    bool
	EmploymentType *string
	IsActive       *bool
	SkillIDs       []int64
	SkillsProvided bool
}

type JobRepository interface {
	Create(ctx context.Context, job *Job, skillIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// GetActiveDetails returns an active job with recruiter and skills, or
	// ErrNotFound for missing/inactive jobs.
	GetActiveDetails(ctx context.Context, id int64) (*JobWithDetails, error)
	// FetchActive returns active jobs satisfying every supplied predicate,
	// newest first, with recruiter and skills populated.
	FetchActive(ctx context.Context, filter JobFilter) ([]JobWithDetails, error)
	// FetchActiveMatching is FetchActive further restricted to jobs whose
	// skill set intersects candidateSkillIDs.
	FetchActiveMatching(ctx context.Context, filter JobFilter, candidateSkillIDs []int64) ([]JobWithDetails, error)
	Update(ctx context.Context, id int64, upd JobUpdate) error
	ReplaceJobSkills(ctx context.Context, jobID int64, skillIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, recruiterID int64, job *Job, skillIDs []int64) (*JobWithDetails, error)
	GetJobDetails(ctx context.Context, id int64) (*JobWithDetails, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]JobWithDetails, error)
	// ListRelevantJobs ranks active jobs by overlap with the candidate's
	// declared skills. A candidate with no skills gets an empty result.
	ListRelevantJobs(ctx context.Context, candidateID int64, filter JobFilter) ([]JobWithDetails, error)
	UpdateJob(ctx context.Context, recruiterID, jobID int64, upd JobUpdate) (*JobWithDetails, error)
	DeleteJob(ctx context.Context, recruiterID, jobID int64) error
}
