package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Service
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Service) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, name, email, password, role string) (*domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return nil, "", apperror.BadRequest("Name, email and password are required")
	}
	if len(password) < 6 {
		return nil, "", apperror.BadRequest("Password must be at least 6 characters")
	}
	if role == "" {
		role = domain.RoleCandidate
	}
	if role != domain.RoleCandidate && role != domain.RoleRecruiter {
		return nil, "", apperror.BadRequest("Role must be candidate or recruiter")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, "", apperror.Conflict("An account with this email already exists")
		}
		return nil, "", apperror.Internal(err)
	}

	tok, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, tok, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message for unknown email and wrong password.
			return nil, "", apperror.Unauthorized("Invalid email or password")
		}
		return nil, "", apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	tok, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, tok, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User no longer exists")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
