package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yetkin-kariyer/botfleet/internal/domain/team"
)

// TeamRepository implements team.Repository.
type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO teams (team_id, objective_id, name, leader_id, member_ids, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (team_id) DO NOTHING
	`, t.TeamID, t.ObjectiveID, t.Name, t.LeaderID, t.MemberIDs, t.CreatedAt)
	return err
}
