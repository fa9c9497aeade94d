package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"
)

const maxCVSize = 10 << 20 // 10 MB

// contentTypeByExt maps the validated extension to the stored content type.
var contentTypeByExt = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

type userUsecase struct {
	userRepo  domain.UserRepository
	skillRepo domain.SkillRepository
	cvStore   *storage.CVStore
}

func NewUserUsecase(userRepo domain.UserRepository, skillRepo domain.SkillRepository, cvStore *storage.CVStore) domain.UserUsecase {
	return &userUsecase{
		userRepo:  userRepo,
		skillRepo: skillRepo,
		cvStore:   cvStore,
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	skills, err := u.skillRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.Profile{User: *user, Skills: skills}, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.User, error) {
	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if trimmed == "" {
			return nil, apperror.BadRequest("Name cannot be empty")
		}
		upd.Name = &trimmed
	}

	user, err := u.userRepo.UpdateProfile(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *userUsecase) UploadCV(ctx context.Context, userID int64, filename, contentType string, size int64, content []byte) (*domain.User, error) {
	if u.cvStore == nil {
		return nil, apperror.New(503, "CV storage is not configured", nil)
	}
	if size > maxCVSize {
		return nil, apperror.BadRequest("CV file must be 10MB or smaller")
	}

	ext, ok := storage.ValidateCVFile(filename, content, contentType)
	if !ok {
		return nil, apperror.BadRequest("CV must be a PDF, DOC, DOCX or TXT file")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	key := fmt.Sprintf("cv/%d/%d%s", userID, time.Now().UnixNano(), ext)
	url, err := u.cvStore.Upload(ctx, key, contentTypeByExt[ext], bytes.NewReader(content))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Old CV is best-effort cleanup; the new URL is already stored remotely.
	if user.CvURL != nil && *user.CvURL != "" {
		_ = u.cvStore.Delete(ctx, *user.CvURL)
	}

	updated, err := u.userRepo.UpdateCvURL(ctx, userID, url)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

func (u *userUsecase) SetSkills(ctx context.Context, userID int64, skillIDs []int64) ([]domain.Skill, error) {
	if err := u.skillRepo.ReplaceUserSkills(ctx, userID, skillIDs); err != nil {
		return nil, apperror.Internal(err)
	}
	skills, err := u.skillRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}
