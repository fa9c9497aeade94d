package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

// User roles. A role is fixed at registration; there is no role-change
// operation anywhere in the system.
const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CvURL        *string   `json:"cv_url,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRef is the embedded user shape returned inside jobs and messages.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Profile is a user together with their declared skills.
type Profile struct {
	User
	Skills []Skill `json:"skills"`
}

// ProfileUpdate carries the mutable profile fields; nil means "leave as is".
type ProfileUpdate struct {
	Name     *string
	Phone    *string
	Location *string
	Bio      *string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*User, error)
	UpdateCvURL(ctx context.Context, id int64, cvURL string) (*User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, name, email, password, role string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*User, error)
	UploadCV(ctx context.Context, userID int64, filename, contentType string, size int64, content []byte) (*User, error)
	SetSkills(ctx context.Context, userID int64, skillIDs []int64) ([]Skill, error)
}
