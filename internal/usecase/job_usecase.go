package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// msgJobNotFound is returned both when the job does not exist and when the
// caller does not own it, so probing cannot distinguish the two.
const msgJobNotFound = "Job not found or you do not have permission"

type jobUsecase struct {
	jobRepo   domain.JobRepository
	skillRepo domain.SkillRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, skillRepo domain.SkillRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, skillRepo: skillRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, recruiterID int64, job *domain.Job, skillIDs []int64) (*domain.JobWithDetails, error) {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	if job.Title == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return nil, apperror.BadRequest("Description is required")
	}
	if job.Company == "" {
		return nil, apperror.BadRequest("Company is required")
	}
	job.RecruiterID = recruiterID

	// The numeric amount drives salary filters; the original text stays for
	// display.
	if job.SalaryText != nil {
		job.SalaryAmount = domain.ParseSalaryAmount(*job.SalaryText)
	}

	if err := u.jobRepo.Create(ctx, job, skillIDs); err != nil {
		return nil, apperror.Internal(err)
	}

	details, err := u.jobRepo.GetActiveDetails(ctx, job.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return details, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobWithDetails, error) {
	job, err := u.jobRepo.GetActiveDetails(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithDetails, error) {
	jobs, err := u.jobRepo.FetchActive(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if jobs == nil {
		jobs = []domain.JobWithDetails{}
	}
	return jobs, nil
}

func (u *jobUsecase) ListRelevantJobs(ctx context.Context, candidateID int64, filter domain.JobFilter) ([]domain.JobWithDetails, error) {
	skillIDs, err := u.skillRepo.ListIDsByUserID(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(skillIDs) == 0 {
		return []domain.JobWithDetails{}, nil
	}

	jobs, err := u.jobRepo.FetchActiveMatching(ctx, filter, skillIDs)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	ranked := domain.RankBySkillOverlap(skillIDs, jobs)
	if ranked == nil {
		ranked = []domain.JobWithDetails{}
	}
	return ranked, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, recruiterID, jobID int64, upd domain.JobUpdate) (*domain.JobWithDetails, error) {
	if err := u.authorize(ctx, recruiterID, jobID); err != nil {
		return nil, err
	}

	if upd.SalaryText != nil {
		if *upd.SalaryText == "" {
			// Empty text clears the salary entirely.
			upd.ClearSalary = true
			upd.SalaryText = nil
			upd.SalaryAmount = nil
		} else {
			upd.SalaryAmount = domain.ParseSalaryAmount(*upd.SalaryText)
			// Text without a parseable figure keeps the display string but
			// drops the job out of salary-bound filters.
			upd.ClearSalary = upd.SalaryAmount == nil
		}
	}

	if err := u.jobRepo.Update(ctx, jobID, upd); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgJobNotFound)
		}
		return nil, apperror.Internal(err)
	}

	if upd.SkillsProvided {
		if err := u.jobRepo.ReplaceJobSkills(ctx, jobID, upd.SkillIDs); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	details, err := u.jobRepo.GetActiveDetails(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The update deactivated the job; return the raw row instead.
			job, err := u.jobRepo.GetByID(ctx, jobID)
			if err != nil {
				return nil, apperror.Internal(err)
			}
			return &domain.JobWithDetails{Job: *job, Skills: []domain.Skill{}}, nil
		}
		return nil, apperror.Internal(err)
	}
	return details, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, recruiterID, jobID int64) error {
	if err := u.authorize(ctx, recruiterID, jobID); err != nil {
		return err
	}
	if err := u.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(msgJobNotFound)
		}
		return apperror.Internal(err)
	}
	return nil
}

// authorize re-reads the job and verifies ownership. Missing job and foreign
// job produce the same NotFound.
func (u *jobUsecase) authorize(ctx context.Context, recruiterID, jobID int64) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(msgJobNotFound)
		}
		return apperror.Internal(err)
	}
	if job.RecruiterID != recruiterID {
		return apperror.NotFound(msgJobNotFound)
	}
	return nil
}
