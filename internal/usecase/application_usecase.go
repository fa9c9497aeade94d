package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	appRepo  domain.ApplicationRepository
	jobRepo  domain.JobRepository
	userRepo domain.UserRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository, userRepo domain.UserRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

func (u *applicationUsecase) ApplyToJob(ctx context.Context, candidateID, jobID int64) (*domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsActive {
		return nil, apperror.NotFound("Job not found")
	}

	app := &domain.Application{JobID: jobID, CandidateID: candidateID}
	if err := u.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *applicationUsecase) GetMyApplications(ctx context.Context, candidateID int64) ([]domain.ApplicationWithJob, error) {
	apps, err := u.appRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListByJob(ctx context.Context, recruiterID, jobID int64) ([]domain.ApplicationWithCandidate, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgJobNotFound)
		}
		return nil, apperror.Internal(err)
	}
	if job.RecruiterID != recruiterID {
		return nil, apperror.NotFound(msgJobNotFound)
	}

	apps, err := u.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListForRecruiter(ctx context.Context, recruiterID int64) ([]domain.ApplicationWithCandidate, error) {
	apps, err := u.appRepo.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, recruiterID, applicationID int64, status string) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Status must be pending, accepted or rejected")
	}

	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	// The application belongs to the recruiter through the job.
	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if job.RecruiterID != recruiterID {
		return nil, apperror.NotFound("Application not found")
	}

	// Re-applying the current status is still a write; the state machine has
	// no forbidden transitions beyond unknown values.
	if err := u.appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, apperror.Internal(err)
	}

	app.Status = status
	return app, nil
}
