package domain

import "sort"

// RankBySkillOverlap orders jobs by how many of the candidate's skills appear
// in each job's required-skill set. Jobs with no overlap are dropped, so every
// returned job has MatchCount >= 1. Ties are broken by newest creation time,
// then ascending ID, which keeps the order deterministic regardless of how
// the storage layer happened to return the rows.
func RankBySkillOverlap(candidateSkillIDs []int64, jobs []JobWithDetails) []JobWithDetails {
	if len(candidateSkillIDs) == 0 {
		return nil
	}

	skillSet := make(map[int64]struct{}, len(candidateSkillIDs))
	for _, id := range candidateSkillIDs {
		skillSet[id] = struct{}{}
	}

	ranked := make([]JobWithDetails, 0, len(jobs))
	for _, job := range jobs {
		count := 0
		for _, s := range job.Skills {
			if _, ok := skillSet[s.ID]; ok {
				count++
			}
		}
		if count == 0 {
			continue
		}
		job.MatchCount = count
		ranked = append(ranked, job)
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.MatchCount != b.MatchCount {
			return a.MatchCount > b.MatchCount
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return ranked
}
