package domain

import (
	"context"
	"time"
)

// Application status constants. pending is the initial state; accepted and
// rejected are set by the job's recruiter. Updates are total overwrites and
// re-applying the current status is a no-op write.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatus reports whether s is a known status value.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	CandidateID int64     `json:"candidate_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobSummary is the compact job shape embedded in application listings.
type JobSummary struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Company        string  `json:"company"`
	Location       string  `json:"location,omitempty"`
	SalaryAmount   *int64  `json:"salary_amount,omitempty"`
	SalaryText     *string `json:"salary_text,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
}

// CandidateSummary is the candidate shape recruiters see on an application,
// including the candidate's declared skills.
type CandidateSummary struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	CvURL    *string `json:"cv_url,omitempty"`
	Skills   []Skill `json:"skills"`
}

// ApplicationWithJob is the candidate-facing view of their own application.
type ApplicationWithJob struct {
	Application
	Job JobSummary `json:"job"`
}

// ApplicationWithCandidate is the recruiter-facing view. Job is only
// populated on cross-job listings.
type ApplicationWithCandidate struct {
	Application
	Job       *JobSummary      `json:"job,omitempty"`
	Candidate CandidateSummary `json:"candidate"`
}

type ApplicationRepository interface {
	// Create inserts the application. A second application for the same
	// (job, candidate) pair violates the unique constraint and returns
	// ErrDuplicate.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]ApplicationWithJob, error)
	ListByJob(ctx context.Context, jobID int64) ([]ApplicationWithCandidate, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]ApplicationWithCandidate, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, candidateID, jobID int64) (*Application, error)
	GetMyApplications(ctx context.Context, candidateID int64) ([]ApplicationWithJob, error)
	ListByJob(ctx context.Context, recruiterID, jobID int64) ([]ApplicationWithCandidate, error)
	ListForRecruiter(ctx context.Context, recruiterID int64) ([]ApplicationWithCandidate, error)
	UpdateStatus(ctx context.Context, recruiterID, applicationID int64, status string) (*Application, error)
}
