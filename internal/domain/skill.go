package domain

import (
	"context"
	"time"
)

// Skill is a uniquely-named label shared by users and jobs through
// association rows. Name uniqueness is enforced by the database.
type Skill struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

type SkillRepository interface {
	ListAll(ctx context.Context) ([]Skill, error)
	ListByNames(ctx context.Context, names []string) ([]Skill, error)
	// CreateMany inserts the given names, skipping ones that already exist,
	// and returns only the newly created skills.
	CreateMany(ctx context.Context, names []string) ([]Skill, error)
	ListByUserID(ctx context.Context, userID int64) ([]Skill, error)
	ListIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
	// ReplaceUserSkills swaps the user's full skill set in one transaction.
	ReplaceUserSkills(ctx context.Context, userID int64, skillIDs []int64) error
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	// CreateSkills returns the skills it added and the ones that already existed.
	CreateSkills(ctx context.Context, names []string) (added, existing []Skill, err error)
}
