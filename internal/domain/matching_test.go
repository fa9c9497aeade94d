package domain_test

import (
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func job(id int64, createdAt time.Time, skillIDs ...int64) domain.JobWithDetails {
	skills := make([]domain.Skill, len(skillIDs))
	for i, sid := range skillIDs {
		skills[i] = domain.Skill{ID: sid}
	}
	return domain.JobWithDetails{
		Job:    domain.Job{ID: id, CreatedAt: createdAt},
		Skills: skills,
	}
}

func TestRankBySkillOverlap(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Orders by overlap and drops zero matches", func(t *testing.T) {
		// Candidate knows skills 1 and 2. Job A requires {1,3}, job B
		// requires {1,2}, job C requires {4}.
		jobs := []domain.JobWithDetails{
			job(1, base, 1, 3),
			job(2, base.Add(time.Hour), 1, 2),
			job(3, base, 4),
		}

		ranked := domain.RankBySkillOverlap([]int64{1, 2}, jobs)

		assert.Len(t, ranked, 2)
		assert.Equal(t, int64(2), ranked[0].ID)
		assert.Equal(t, 2, ranked[0].MatchCount)
		assert.Equal(t, int64(1), ranked[1].ID)
		assert.Equal(t, 1, ranked[1].MatchCount)
	})

	t.Run("Empty candidate skill set returns nothing", func(t *testing.T) {
		jobs := []domain.JobWithDetails{job(1, base, 1)}

		assert.Nil(t, domain.RankBySkillOverlap(nil, jobs))
		assert.Nil(t, domain.RankBySkillOverlap([]int64{}, jobs))
	})

	t.Run("Ties break by newest then lowest ID", func(t *testing.T) {
		jobs := []domain.JobWithDetails{
			job(5, base, 1),
			job(3, base.Add(time.Hour), 1),
			job(4, base, 1),
		}

		ranked := domain.RankBySkillOverlap([]int64{1}, jobs)

		assert.Equal(t, []int64{3, 4, 5}, []int64{ranked[0].ID, ranked[1].ID, ranked[2].ID})
	})

	t.Run("Tie-break is independent of input order", func(t *testing.T) {
		a := job(1, base, 1)
		b := job(2, base, 1)

		first := domain.RankBySkillOverlap([]int64{1}, []domain.JobWithDetails{a, b})
		second := domain.RankBySkillOverlap([]int64{1}, []domain.JobWithDetails{b, a})

		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Equal(t, first[1].ID, second[1].ID)
	})

	t.Run("MatchCount counts distinct required skills only", func(t *testing.T) {
		jobs := []domain.JobWithDetails{job(1, base, 1, 2, 3)}

		ranked := domain.RankBySkillOverlap([]int64{1, 2, 9}, jobs)

		assert.Len(t, ranked, 1)
		assert.Equal(t, 2, ranked[0].MatchCount)
	})
}
