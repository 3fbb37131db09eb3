package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yetkin-kariyer/botfleet/internal/domain/badge"
)

// BadgeRepository implements badge.Checker over the badges and badge_shares
// tables.
type BadgeRepository struct {
	pool *pgxpool.Pool
}

func NewBadgeRepository(pool *pgxpool.Pool) *BadgeRepository {
	return &BadgeRepository{pool: pool}
}

func (r *BadgeRepository) UnsharedBadges(ctx context.Context, actorID uuid.UUID) ([]*badge.Badge, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.badge_id, b.slug, b.name, b.awarded_at
		FROM badges b
		WHERE b.actor_id=$1
		  AND NOT EXISTS (SELECT 1 FROM badge_shares s WHERE s.badge_id=b.badge_id AND s.actor_id=$1)
		ORDER BY b.awarded_at
	`, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var badges []*badge.Badge
	for rows.Next() {
		var b badge.Badge
		if err := rows.Scan(&b.BadgeID, &b.Slug, &b.Name, &b.AwardedAt); err != nil {
			return nil, err
		}
		badges = append(badges, &b)
	}
	return badges, rows.Err()
}

func (r *BadgeRepository) MarkShared(ctx context.Context, actorID, badgeID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO badge_shares (badge_id, actor_id, shared_at)
		VALUES ($1,$2,NOW())
		ON CONFLICT (badge_id, actor_id) DO NOTHING
	`, badgeID, actorID)
	return err
}
