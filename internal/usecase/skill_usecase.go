package usecase

import (
	"context"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := u.skillRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

// CreateSkills inserts the given names, skipping ones that already exist.
// It returns the newly created skills and the pre-existing ones separately;
// when nothing new was added the call fails so the client learns all names
// were duplicates.
func (u *skillUsecase) CreateSkills(ctx context.Context, names []string) (added, existing []domain.Skill, err error) {
	cleaned := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		return nil, nil, apperror.BadRequest("At least one skill name is required")
	}

	added, err = u.skillRepo.CreateMany(ctx, cleaned)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}

	if len(added) < len(cleaned) {
		addedNames := make(map[string]bool, len(added))
		for _, s := range added {
			addedNames[s.Name] = true
		}
		remaining := make([]string, 0, len(cleaned)-len(added))
		for _, name := range cleaned {
			if !addedNames[name] {
				remaining = append(remaining, name)
			}
		}
		existing, err = u.skillRepo.ListByNames(ctx, remaining)
		if err != nil {
			return nil, nil, apperror.Internal(err)
		}
	}

	if len(added) == 0 {
		return nil, existing, apperror.BadRequest("All of these skills already exist")
	}
	return added, existing, nil
}
