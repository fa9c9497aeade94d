package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateProfile(ctx context.Context, id int64, upd domain.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateCvURL(ctx context.Context, id int64, cvURL string) (*domain.User, error) {
	args := m.Called(ctx, id, cvURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) ListAll(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) ListByNames(ctx context.Context, names []string) ([]domain.Skill, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) CreateMany(ctx context.Context, names []string) ([]domain.Skill, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) ListIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
func (m *MockSkillRepo) ReplaceUserSkills(ctx context.Context, userID int64, skillIDs []int64) error {
	return m.Called(ctx, userID, skillIDs).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job, skillIDs []int64) error {
	return m.Called(ctx, job, skillIDs).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetActiveDetails(ctx context.Context, id int64) (*domain.JobWithDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithDetails), args.Error(1)
}
func (m *MockJobRepo) FetchActive(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithDetails, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithDetails), args.Error(1)
}
func (m *MockJobRepo) FetchActiveMatching(ctx context.Context, filter domain.JobFilter, candidateSkillIDs []int64) ([]domain.JobWithDetails, error) {
	args := m.Called(ctx, filter, candidateSkillIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithDetails), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, id int64, upd domain.JobUpdate) error {
	return m.Called(ctx, id, upd).Error(0)
}
func (m *MockJobRepo) ReplaceJobSkills(ctx context.Context, jobID int64, skillIDs []int64) error {
	return m.Called(ctx, jobID, skillIDs).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.ApplicationWithJob, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationWithJob), args.Error(1)
}
func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.ApplicationWithCandidate, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationWithCandidate), args.Error(1)
}
func (m *MockApplicationRepo) ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.ApplicationWithCandidate, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationWithCandidate), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *MockMessageRepo) GetThread(ctx context.Context, userID, otherUserID int64) ([]domain.Message, error) {
	args := m.Called(ctx, userID, otherUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}
func (m *MockMessageRepo) MarkRead(ctx context.Context, receiverID, senderID int64) error {
	return m.Called(ctx, receiverID, senderID).Error(0)
}
func (m *MockMessageRepo) ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conversation), args.Error(1)
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %v", err)
	}
	return appErr.Code
}

func testTokens() *token.Service {
	return token.NewService("test-secret", time.Hour)
}

// Auth

func TestRegisterValidation(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, testTokens())
	ctx := context.Background()

	t.Run("Rejects unknown roles", func(t *testing.T) {
		_, _, err := uc.Register(ctx, "Ana", "ana@example.com", "secret1", "admin")
		assert.Error(t, err)
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("Empty role defaults to candidate", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleCandidate
		})).Return(nil).Once()

		user, tok, err := uc.Register(ctx, "Ana", "ana@example.com", "secret1", "")
		assert.NoError(t, err)
		assert.NotEmpty(t, tok)
		assert.Equal(t, domain.RoleCandidate, user.Role)
	})

	t.Run("Rejects short passwords", func(t *testing.T) {
		_, _, err := uc.Register(ctx, "Ana", "ana@example.com", "abc", domain.RoleCandidate)
		assert.Error(t, err)
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("Duplicate email becomes a conflict", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicate).Once()

		_, _, err := uc.Register(ctx, "Ana", "ana@example.com", "secret1", domain.RoleCandidate)
		assert.Error(t, err)
		assert.Equal(t, 409, appErrCode(t, err))
	})

	t.Run("Normalizes email and hashes password", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once().Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			u.ID = 7
			assert.Equal(t, "ana@example.com", u.Email)
			assert.NotEqual(t, "secret1", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
		})

		user, tok, err := uc.Register(ctx, "Ana", "  ANA@example.com ", "secret1", domain.RoleCandidate)
		assert.NoError(t, err)
		assert.NotEmpty(t, tok)
		assert.Equal(t, int64(7), user.ID)
	})
}

func TestLoginUniformFailure(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, testTokens())
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-pass"), bcrypt.MinCost)
	known := &domain.User{ID: 1, Email: "ana@example.com", PasswordHash: string(hash), Role: domain.RoleCandidate}

	t.Run("Unknown email", func(t *testing.T) {
		mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound).Once()

		_, _, err := uc.Login(ctx, "ghost@example.com", "whatever")
		assert.EqualError(t, err, "Invalid email or password")
		assert.Equal(t, 401, appErrCode(t, err))
	})

	t.Run("Wrong password gets the same message", func(t *testing.T) {
		mockRepo.On("GetByEmail", ctx, "ana@example.com").Return(known, nil).Once()

		_, _, err := uc.Login(ctx, "ana@example.com", "wrong")
		assert.EqualError(t, err, "Invalid email or password")
		assert.Equal(t, 401, appErrCode(t, err))
	})

	t.Run("Correct credentials return a token", func(t *testing.T) {
		mockRepo.On("GetByEmail", ctx, "ana@example.com").Return(known, nil).Once()

		user, tok, err := uc.Login(ctx, "ana@example.com", "correct-pass")
		assert.NoError(t, err)
		assert.NotEmpty(t, tok)
		assert.Equal(t, int64(1), user.ID)
	})
}

// Jobs

func TestJobOwnershipUniform404(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockSkills := new(MockSkillRepo)
	uc := usecase.NewJobUsecase(mockJobs, mockSkills)
	ctx := context.Background()

	theirJob := &domain.Job{ID: 10, RecruiterID: 2, IsActive: true}

	t.Run("Updating someone else's job looks like a missing job", func(t *testing.T) {
		mockJobs.On("GetByID", ctx, int64(10)).Return(theirJob, nil).Once()

		_, err := uc.UpdateJob(ctx, 1, 10, domain.JobUpdate{})
		assert.EqualError(t, err, "Job not found or you do not have permission")
		assert.Equal(t, 404, appErrCode(t, err))
	})

	t.Run("Updating a missing job gives the identical error", func(t *testing.T) {
		mockJobs.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound).Once()

		_, err := uc.UpdateJob(ctx, 1, 99, domain.JobUpdate{})
		assert.EqualError(t, err, "Job not found or you do not have permission")
		assert.Equal(t, 404, appErrCode(t, err))
	})

	t.Run("Deleting someone else's job is also indistinguishable", func(t *testing.T) {
		mockJobs.On("GetByID", ctx, int64(10)).Return(theirJob, nil).Once()

		err := uc.DeleteJob(ctx, 1, 10)
		assert.EqualError(t, err, "Job not found or you do not have permission")
	})

	t.Run("Owner can delete", func(t *testing.T) {
		mockJobs.On("GetByID", ctx, int64(10)).Return(theirJob, nil).Once()
		mockJobs.On("Delete", ctx, int64(10)).Return(nil).Once()

		assert.NoError(t, uc.DeleteJob(ctx, 2, 10))
	})
}

func TestCreateJobNormalizesSalary(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockSkills := new(MockSkillRepo)
	uc := usecase.NewJobUsecase(mockJobs, mockSkills)
	ctx := context.Background()

	salary := "₹1,20,000 per month"
	job := &domain.Job{Title: "Backend Engineer", Description: "Go services", Company: "Acme", Location: "Remote", SalaryText: &salary}

	mockJobs.On("Create", ctx, job, []int64{1}).Return(nil).Once().Run(func(args mock.Arguments) {
		j := args.Get(1).(*domain.Job)
		j.ID = 5
		assert.NotNil(t, j.SalaryAmount)
		assert.Equal(t, int64(120000), *j.SalaryAmount)
	})
	mockJobs.On("GetActiveDetails", ctx, int64(5)).Return(&domain.JobWithDetails{Job: *job}, nil).Once()

	_, err := uc.CreateJob(ctx, 2, job, []int64{1})
	assert.NoError(t, err)
	mockJobs.AssertExpectations(t)
}

func TestUpdateJobSkillReplacement(t *testing.T) {
	ctx := context.Background()

	ownJob := &domain.Job{ID: 7, RecruiterID: 2, IsActive: true}
	details := &domain.JobWithDetails{Job: *ownJob}

	t.Run("Empty skill list clears all associations", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewJobUsecase(mockJobs, mockSkills)

		mockJobs.On("GetByID", ctx, int64(7)).Return(ownJob, nil).Once()
		mockJobs.On("Update", ctx, int64(7), mock.AnythingOfType("domain.JobUpdate")).Return(nil).Once()
		mockJobs.On("ReplaceJobSkills", ctx, int64(7), []int64{}).Return(nil).Once()
		mockJobs.On("GetActiveDetails", ctx, int64(7)).Return(details, nil).Once()

		_, err := uc.UpdateJob(ctx, 2, 7, domain.JobUpdate{SkillsProvided: true, SkillIDs: []int64{}})
		assert.NoError(t, err)
		mockJobs.AssertExpectations(t)
	})

	t.Run("Omitted skill list leaves associations alone", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewJobUsecase(mockJobs, mockSkills)

		mockJobs.On("GetByID", ctx, int64(7)).Return(ownJob, nil).Once()
		mockJobs.On("Update", ctx, int64(7), mock.AnythingOfType("domain.JobUpdate")).Return(nil).Once()
		mockJobs.On("GetActiveDetails", ctx, int64(7)).Return(details, nil).Once()

		_, err := uc.UpdateJob(ctx, 2, 7, domain.JobUpdate{})
		assert.NoError(t, err)
		mockJobs.AssertNotCalled(t, "ReplaceJobSkills")
	})
}

func TestListRelevantJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("No declared skills short-circuits to empty", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewJobUsecase(mockJobs, mockSkills)

		mockSkills.On("ListIDsByUserID", ctx, int64(1)).Return([]int64{}, nil).Once()

		jobs, err := uc.ListRelevantJobs(ctx, 1, domain.JobFilter{})
		assert.NoError(t, err)
		assert.Empty(t, jobs)
		mockJobs.AssertNotCalled(t, "FetchActiveMatching")
	})

	t.Run("Ranks fetched jobs by overlap", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewJobUsecase(mockJobs, mockSkills)

		skillIDs := []int64{1, 2}
		now := time.Now()
		fetched := []domain.JobWithDetails{
			{Job: domain.Job{ID: 1, CreatedAt: now}, Skills: []domain.Skill{{ID: 1}}},
			{Job: domain.Job{ID: 2, CreatedAt: now}, Skills: []domain.Skill{{ID: 1}, {ID: 2}}},
		}

		mockSkills.On("ListIDsByUserID", ctx, int64(1)).Return(skillIDs, nil).Once()
		mockJobs.On("FetchActiveMatching", ctx, domain.JobFilter{}, skillIDs).Return(fetched, nil).Once()

		jobs, err := uc.ListRelevantJobs(ctx, 1, domain.JobFilter{})
		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
		assert.Equal(t, int64(2), jobs[0].ID)
		assert.Equal(t, 2, jobs[0].MatchCount)
	})
}

// Skills

func TestCreateSkills(t *testing.T) {
	ctx := context.Background()

	t.Run("Dedupes and trims input names", func(t *testing.T) {
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockSkills)

		mockSkills.On("CreateMany", ctx, []string{"Go", "Rust"}).
			Return([]domain.Skill{{ID: 1, Name: "Go"}, {ID: 2, Name: "Rust"}}, nil).Once()

		added, existing, err := uc.CreateSkills(ctx, []string{" Go ", "Go", "Rust"})
		assert.NoError(t, err)
		assert.Len(t, added, 2)
		assert.Empty(t, existing)
	})

	t.Run("Name uniqueness is case sensitive", func(t *testing.T) {
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockSkills)

		mockSkills.On("CreateMany", ctx, []string{"Go", "go"}).
			Return([]domain.Skill{{ID: 1, Name: "Go"}, {ID: 2, Name: "go"}}, nil).Once()

		added, _, err := uc.CreateSkills(ctx, []string{"Go", "go"})
		assert.NoError(t, err)
		assert.Len(t, added, 2)
	})

	t.Run("All duplicates is an error that still reports them", func(t *testing.T) {
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockSkills)

		mockSkills.On("CreateMany", ctx, []string{"Go"}).Return([]domain.Skill{}, nil).Once()
		mockSkills.On("ListByNames", ctx, []string{"Go"}).Return([]domain.Skill{{ID: 1, Name: "Go"}}, nil).Once()

		added, existing, err := uc.CreateSkills(ctx, []string{"Go"})
		assert.Error(t, err)
		assert.Equal(t, 400, appErrCode(t, err))
		assert.Empty(t, added)
		assert.Len(t, existing, 1)
	})

	t.Run("Only blank names is a bad request", func(t *testing.T) {
		uc := usecase.NewSkillUsecase(new(MockSkillRepo))

		_, _, err := uc.CreateSkills(ctx, []string{"  ", ""})
		assert.Equal(t, 400, appErrCode(t, err))
	})
}

// Applications

func TestApplyToJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Inactive job is not applicable", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockUserRepo))

		mockJobs.On("GetByID", ctx, int64(3)).Return(&domain.Job{ID: 3, IsActive: false}, nil).Once()

		_, err := uc.ApplyToJob(ctx, 1, 3)
		assert.Equal(t, 404, appErrCode(t, err))
		mockApps.AssertNotCalled(t, "Create")
	})

	t.Run("Second application conflicts", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockUserRepo))

		mockJobs.On("GetByID", ctx, int64(3)).Return(&domain.Job{ID: 3, IsActive: true}, nil).Once()
		mockApps.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate).Once()

		_, err := uc.ApplyToJob(ctx, 1, 3)
		assert.EqualError(t, err, "You have already applied to this job")
		assert.Equal(t, 409, appErrCode(t, err))
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	app := &domain.Application{ID: 4, JobID: 3, CandidateID: 1, Status: domain.ApplicationStatusPending}

	t.Run("Rejects unknown status values", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockUserRepo))

		_, err := uc.UpdateStatus(ctx, 2, 4, "archived")
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("Recruiter must own the job", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockUserRepo))

		mockApps.On("GetByID", ctx, int64(4)).Return(app, nil).Once()
		mockJobs.On("GetByID", ctx, int64(3)).Return(&domain.Job{ID: 3, RecruiterID: 9}, nil).Once()

		_, err := uc.UpdateStatus(ctx, 2, 4, domain.ApplicationStatusAccepted)
		assert.Equal(t, 404, appErrCode(t, err))
		mockApps.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Re-applying the same status still writes", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockUserRepo))

		mockApps.On("GetByID", ctx, int64(4)).Return(app, nil).Once()
		mockJobs.On("GetByID", ctx, int64(3)).Return(&domain.Job{ID: 3, RecruiterID: 2}, nil).Once()
		mockApps.On("UpdateStatus", ctx, int64(4), domain.ApplicationStatusPending).Return(nil).Once()

		updated, err := uc.UpdateStatus(ctx, 2, 4, domain.ApplicationStatusPending)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, updated.Status)
		mockApps.AssertExpectations(t)
	})
}

// Messages

func TestSendMessageRoleGuard(t *testing.T) {
	ctx := context.Background()
	candidate := &domain.User{ID: 1, Role: domain.RoleCandidate}
	otherCandidate := &domain.User{ID: 2, Role: domain.RoleCandidate}
	recruiter := &domain.User{ID: 3, Role: domain.RoleRecruiter}

	t.Run("Same-role pairs are rejected", func(t *testing.T) {
		mockMsgs := new(MockMessageRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewMessageUsecase(mockMsgs, mockUsers, new(MockJobRepo))

		mockUsers.On("GetByID", ctx, int64(1)).Return(candidate, nil).Once()
		mockUsers.On("GetByID", ctx, int64(2)).Return(otherCandidate, nil).Once()

		_, err := uc.SendMessage(ctx, 1, 2, "hi", nil)
		assert.Equal(t, 400, appErrCode(t, err))
		mockMsgs.AssertNotCalled(t, "Create")
	})

	t.Run("Blank content is rejected before any lookup", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		uc := usecase.NewMessageUsecase(new(MockMessageRepo), mockUsers, new(MockJobRepo))

		_, err := uc.SendMessage(ctx, 1, 3, "   ", nil)
		assert.Equal(t, 400, appErrCode(t, err))
		mockUsers.AssertNotCalled(t, "GetByID")
	})

	t.Run("Cross-role message is trimmed and stored", func(t *testing.T) {
		mockMsgs := new(MockMessageRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewMessageUsecase(mockMsgs, mockUsers, new(MockJobRepo))

		mockUsers.On("GetByID", ctx, int64(1)).Return(candidate, nil).Once()
		mockUsers.On("GetByID", ctx, int64(3)).Return(recruiter, nil).Once()
		mockMsgs.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil).Once().Run(func(args mock.Arguments) {
			msg := args.Get(1).(*domain.Message)
			assert.Equal(t, "hello there", msg.Content)
		})

		msg, err := uc.SendMessage(ctx, 1, 3, "  hello there  ", nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), msg.ReceiverID)
	})
}

func TestGetThreadMarksRead(t *testing.T) {
	ctx := context.Background()
	mockMsgs := new(MockMessageRepo)
	mockUsers := new(MockUserRepo)
	uc := usecase.NewMessageUsecase(mockMsgs, mockUsers, new(MockJobRepo))

	mockUsers.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, Role: domain.RoleRecruiter}, nil).Once()
	mockMsgs.On("GetThread", ctx, int64(1), int64(3)).Return([]domain.Message{{ID: 9}}, nil).Once()
	mockMsgs.On("MarkRead", ctx, int64(1), int64(3)).Return(nil).Once()

	msgs, err := uc.GetThread(ctx, 1, 3)
	assert.NoError(t, err)
	assert.Len(t, msgs, 1)
	mockMsgs.AssertExpectations(t)
}
