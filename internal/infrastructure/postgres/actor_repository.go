package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
)

// ActorRepository implements actor.Repository.
type ActorRepository struct {
	pool *pgxpool.Pool
}

func NewActorRepository(pool *pgxpool.Pool) *ActorRepository {
	return &ActorRepository{pool: pool}
}

const actorColumns = `
	a.id, a.actor_id, a.name, a.created_at,
	c.actor_id, c.is_active, c.schedule_enabled, c.active_hours, c.enabled_kinds,
	c.min_posts_per_day, c.max_posts_per_day,
	c.min_comments_per_day, c.max_comments_per_day,
	c.min_likes_per_day, c.max_likes_per_day,
	c.min_tests_per_week, c.max_tests_per_week,
	c.min_live_coding_per_week, c.max_live_coding_per_week,
	c.min_lessons_per_week, c.max_lessons_per_week,
	c.last_activity_at, c.updated_at,
	ch.persona, ch.tone, ch.expertise`

const actorJoins = `
	FROM actors a
	LEFT JOIN actor_configurations c ON c.actor_id = a.actor_id
	LEFT JOIN actor_characters ch ON ch.actor_id = a.actor_id`

func (r *ActorRepository) GetByID(ctx context.Context, actorID uuid.UUID) (*actor.Actor, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+actorColumns+actorJoins+` WHERE a.actor_id=$1`, actorID)
	return scanActor(row)
}

func (r *ActorRepository) ListByIDs(ctx context.Context, actorIDs []uuid.UUID) ([]*actor.Actor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+actorColumns+actorJoins+` WHERE a.actor_id = ANY($1)`, actorIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectActors(rows)
}

func (r *ActorRepository) ListActive(ctx context.Context) ([]*actor.Actor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+actorColumns+actorJoins+` WHERE c.is_active ORDER BY a.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectActors(rows)
}

func (r *ActorRepository) UpdateConfiguration(ctx context.Context, cfg *actor.Configuration) error {
	kinds := make([]string, 0, len(cfg.EnabledKinds))
	for _, k := range cfg.EnabledKinds {
		kinds = append(kinds, string(k))
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO actor_configurations
		(actor_id, is_active, schedule_enabled, active_hours, enabled_kinds,
		 min_posts_per_day, max_posts_per_day,
		 min_comments_per_day, max_comments_per_day,
		 min_likes_per_day, max_likes_per_day,
		 min_tests_per_week, max_tests_per_week,
		 min_live_coding_per_week, max_live_coding_per_week,
		 min_lessons_per_week, max_lessons_per_week,
		 last_activity_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		ON CONFLICT (actor_id) DO UPDATE SET
		 is_active=EXCLUDED.is_active,
		 schedule_enabled=EXCLUDED.schedule_enabled,
		 active_hours=EXCLUDED.active_hours,
		 enabled_kinds=EXCLUDED.enabled_kinds,
		 min_posts_per_day=EXCLUDED.min_posts_per_day,
		 max_posts_per_day=EXCLUDED.max_posts_per_day,
		 min_comments_per_day=EXCLUDED.min_comments_per_day,
		 max_comments_per_day=EXCLUDED.max_comments_per_day,
		 min_likes_per_day=EXCLUDED.min_likes_per_day,
		 max_likes_per_day=EXCLUDED.max_likes_per_day,
		 min_tests_per_week=EXCLUDED.min_tests_per_week,
		 max_tests_per_week=EXCLUDED.max_tests_per_week,
		 min_live_coding_per_week=EXCLUDED.min_live_coding_per_week,
		 max_live_coding_per_week=EXCLUDED.max_live_coding_per_week,
		 min_lessons_per_week=EXCLUDED.min_lessons_per_week,
		 max_lessons_per_week=EXCLUDED.max_lessons_per_week,
		 last_activity_at=EXCLUDED.last_activity_at,
		 updated_at=EXCLUDED.updated_at
	`, cfg.ActorID, cfg.IsActive, cfg.ScheduleEnabled, cfg.ActiveHours, kinds,
		cfg.MinPostsPerDay, cfg.MaxPostsPerDay,
		cfg.MinCommentsPerDay, cfg.MaxCommentsPerDay,
		cfg.MinLikesPerDay, cfg.MaxLikesPerDay,
		cfg.MinTestsPerWeek, cfg.MaxTestsPerWeek,
		cfg.MinLiveCodingPerWeek, cfg.MaxLiveCodingPerWeek,
		cfg.MinLessonsPerWeek, cfg.MaxLessonsPerWeek,
		cfg.LastActivityAt, cfg.UpdatedAt)
	return err
}

func (r *ActorRepository) TouchLastActivity(ctx context.Context, actorID uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE actor_configurations SET last_activity_at=$1, updated_at=$1 WHERE actor_id=$2
	`, at, actorID)
	return err
}

func scanActor(row pgx.Row) (*actor.Actor, error) {
	a, err := scanActorValues(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func collectActors(rows pgx.Rows) ([]*actor.Actor, error) {
	var actors []*actor.Actor
	for rows.Next() {
		a, err := scanActorValues(rows)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}
	return actors, rows.Err()
}

func scanActorValues(row pgx.Row) (*actor.Actor, error) {
	var (
		a           actor.Actor
		cfgActorID  *uuid.UUID
		isActive    *bool
		schedEn     *bool
		hours       []int32
		kinds       []string
		bounds      [12]*int
		lastAt      *time.Time
		cfgUpdated  *time.Time
		persona     *string
		tone        *string
		expertise   []string
	)
	if err := row.Scan(
		&a.ID, &a.ActorID, &a.Name, &a.CreatedAt,
		&cfgActorID, &isActive, &schedEn, &hours, &kinds,
		&bounds[0], &bounds[1], &bounds[2], &bounds[3], &bounds[4], &bounds[5],
		&bounds[6], &bounds[7], &bounds[8], &bounds[9], &bounds[10], &bounds[11],
		&lastAt, &cfgUpdated,
		&persona, &tone, &expertise,
	); err != nil {
		return nil, err
	}
	if cfgActorID != nil {
		cfg := &actor.Configuration{
			ActorID:         *cfgActorID,
			IsActive:        derefBool(isActive),
			ScheduleEnabled: derefBool(schedEn),
			LastActivityAt:  lastAt,
		}
		if cfgUpdated != nil {
			cfg.UpdatedAt = *cfgUpdated
		}
		for _, h := range hours {
			cfg.ActiveHours = append(cfg.ActiveHours, int(h))
		}
		for _, k := range kinds {
			cfg.EnabledKinds = append(cfg.EnabledKinds, activity.Kind(k))
		}
		cfg.MinPostsPerDay = derefInt(bounds[0])
		cfg.MaxPostsPerDay = derefInt(bounds[1])
		cfg.MinCommentsPerDay = derefInt(bounds[2])
		cfg.MaxCommentsPerDay = derefInt(bounds[3])
		cfg.MinLikesPerDay = derefInt(bounds[4])
		cfg.MaxLikesPerDay = derefInt(bounds[5])
		cfg.MinTestsPerWeek = derefInt(bounds[6])
		cfg.MaxTestsPerWeek = derefInt(bounds[7])
		cfg.MinLiveCodingPerWeek = derefInt(bounds[8])
		cfg.MaxLiveCodingPerWeek = derefInt(bounds[9])
		cfg.MinLessonsPerWeek = derefInt(bounds[10])
		cfg.MaxLessonsPerWeek = derefInt(bounds[11])
		a.Config = cfg
	}
	if persona != nil {
		a.Character = &actor.Character{
			ActorID:   a.ActorID,
			Persona:   *persona,
			Tone:      derefString(tone),
			Expertise: expertise,
		}
	}
	return &a, nil
}

func derefBool(v *bool) bool {
	return v != nil && *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
