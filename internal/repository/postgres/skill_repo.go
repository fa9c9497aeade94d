package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) ListAll(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, name, created_at FROM skills ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) ListByNames(ctx context.Context, names []string) ([]domain.Skill, error) {
	query := `SELECT id, name, created_at FROM skills WHERE name = ANY($1) ORDER BY name`
	rows, err := r.db.Query(ctx, query, names)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// CreateMany relies on the unique index on skills.name: existing names are
// skipped by ON CONFLICT, so concurrent identical requests cannot double-insert.
func (r *skillRepo) CreateMany(ctx context.Context, names []string) ([]domain.Skill, error) {
	query := `INSERT INTO skills (name, created_at)
              SELECT unnest($1::text[]), $2
              ON CONFLICT (name) DO NOTHING
              RETURNING id, name, created_at`
	rows, err := r.db.Query(ctx, query, names, time.Now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var added []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		added = append(added, s)
	}
	return added, rows.Err()
}

func (r *skillRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Skill, error) {
	query := `SELECT s.id, s.name, s.created_at
              FROM user_skills us
              JOIN skills s ON us.skill_id = s.id
              WHERE us.user_id = $1
              ORDER BY s.name`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) ListIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT skill_id FROM user_skills WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *skillRepo) ReplaceUserSkills(ctx context.Context, userID int64, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if len(skillIDs) > 0 {
		query := `INSERT INTO user_skills (user_id, skill_id, created_at)
                  SELECT $1, unnest($2::bigint[]), $3
                  ON CONFLICT (user_id, skill_id) DO NOTHING`
		if _, err := tx.Exec(ctx, query, userID, skillIDs, time.Now()); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
