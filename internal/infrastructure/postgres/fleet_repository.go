package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/fleet"
)

// FleetRepository implements fleet.Repository over a single-row table.
type FleetRepository struct {
	pool *pgxpool.Pool
}

func NewFleetRepository(pool *pgxpool.Pool) *FleetRepository {
	return &FleetRepository{pool: pool}
}

func (r *FleetRepository) Get(ctx context.Context) (*fleet.Config, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, schedule_enabled, enabled_kinds, active_hours,
		       max_posts_per_day, max_comments_per_day, max_likes_per_day,
		       max_tests_per_week, max_live_coding_per_week, max_lessons_per_week,
		       updated_at
		FROM fleet_config WHERE id=1
	`)
	var (
		cfg   fleet.Config
		kinds []string
		hours []int32
	)
	err := row.Scan(&cfg.ID, &cfg.ScheduleEnabled, &kinds, &hours,
		&cfg.MaxPostsPerDay, &cfg.MaxCommentsPerDay, &cfg.MaxLikesPerDay,
		&cfg.MaxTestsPerWeek, &cfg.MaxLiveCodingPerWeek, &cfg.MaxLessonsPerWeek,
		&cfg.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for _, k := range kinds {
		cfg.EnabledKinds = append(cfg.EnabledKinds, activity.Kind(k))
	}
	for _, h := range hours {
		cfg.ActiveHours = append(cfg.ActiveHours, int(h))
	}
	return &cfg, nil
}

func (r *FleetRepository) Save(ctx context.Context, cfg *fleet.Config) error {
	kinds := make([]string, 0, len(cfg.EnabledKinds))
	for _, k := range cfg.EnabledKinds {
		kinds = append(kinds, string(k))
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO fleet_config
		(id, schedule_enabled, enabled_kinds, active_hours,
		 max_posts_per_day, max_comments_per_day, max_likes_per_day,
		 max_tests_per_week, max_live_coding_per_week, max_lessons_per_week,
		 updated_at)
		VALUES (1,$1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())
		ON CONFLICT (id) DO UPDATE SET
		 schedule_enabled=EXCLUDED.schedule_enabled,
		 enabled_kinds=EXCLUDED.enabled_kinds,
		 active_hours=EXCLUDED.active_hours,
		 max_posts_per_day=EXCLUDED.max_posts_per_day,
		 max_comments_per_day=EXCLUDED.max_comments_per_day,
		 max_likes_per_day=EXCLUDED.max_likes_per_day,
		 max_tests_per_week=EXCLUDED.max_tests_per_week,
		 max_live_coding_per_week=EXCLUDED.max_live_coding_per_week,
		 max_lessons_per_week=EXCLUDED.max_lessons_per_week,
		 updated_at=NOW()
	`, cfg.ScheduleEnabled, kinds, cfg.ActiveHours,
		cfg.MaxPostsPerDay, cfg.MaxCommentsPerDay, cfg.MaxLikesPerDay,
		cfg.MaxTestsPerWeek, cfg.MaxLiveCodingPerWeek, cfg.MaxLessonsPerWeek)
	return err
}
