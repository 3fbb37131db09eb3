package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yetkin-kariyer/botfleet/internal/domain/objective"
)

// ObjectiveRepository implements objective.Repository.
type ObjectiveRepository struct {
	pool *pgxpool.Pool
}

func NewObjectiveRepository(pool *pgxpool.Pool) *ObjectiveRepository {
	return &ObjectiveRepository{pool: pool}
}

func (r *ObjectiveRepository) GetByID(ctx context.Context, objectiveID uuid.UUID) (*objective.Objective, error) {
	var o objective.Objective
	err := r.pool.QueryRow(ctx, `
		SELECT objective_id, title, application_open, application_close,
		       capacity, min_team_size, max_team_size
		FROM objectives WHERE objective_id=$1
	`, objectiveID).Scan(&o.ObjectiveID, &o.Title, &o.ApplicationOpen, &o.ApplicationClose,
		&o.Capacity, &o.MinTeamSize, &o.MaxTeamSize)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ObjectiveRepository) CountApplications(ctx context.Context, objectiveID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM applications WHERE objective_id=$1
	`, objectiveID).Scan(&n)
	return n, err
}

func (r *ObjectiveRepository) ListAppliedActorIDs(ctx context.Context, objectiveID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT actor_id FROM applications WHERE objective_id=$1
	`, objectiveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ObjectiveRepository) CreateApplication(ctx context.Context, a *objective.Application) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO applications
		(application_id, objective_id, actor_id, team_id, status, motivation, skills, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (objective_id, actor_id) DO NOTHING
	`, a.ApplicationID, a.ObjectiveID, a.ActorID, a.TeamID, string(a.Status), a.Motivation, a.Skills, a.CreatedAt)
	return err
}
