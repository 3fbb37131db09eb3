package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/content"
)

// ContentRepository implements content.Store and content.Counter over the
// domain activity tables. Counts are derived, never kept in a counter row.
type ContentRepository struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

// countTarget maps a kind to the table and timestamp column its window
// count is derived from.
func countTarget(kind activity.Kind) (table, column string, ok bool) {
	switch kind {
	case activity.KindPost:
		return "posts", "created_at", true
	case activity.KindComment:
		return "post_comments", "created_at", true
	case activity.KindLike:
		return "post_likes", "created_at", true
	case activity.KindTest:
		return "test_attempts", "completed_at", true
	case activity.KindLiveCoding:
		return "live_coding_attempts", "completed_at", true
	case activity.KindLesson:
		return "lesson_completions", "completed_at", true
	default:
		return "", "", false
	}
}

func (r *ContentRepository) CountInWindow(ctx context.Context, actorID uuid.UUID, kind activity.Kind, from, to time.Time) (int, error) {
	table, column, ok := countTarget(kind)
	if !ok {
		return 0, fmt.Errorf("kind %s has no countable table", kind)
	}
	var n int
	err := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE actor_id=$1 AND %s >= $2 AND %s < $3`, table, column, column),
		actorID, from, to,
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ContentRepository) CreatePost(ctx context.Context, p *content.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (post_id, actor_id, content, created_at) VALUES ($1,$2,$3,$4)
	`, p.PostID, p.ActorID, p.Content, p.CreatedAt)
	return err
}

func (r *ContentRepository) ListLikeablePosts(ctx context.Context, actorID uuid.UUID, limit int) ([]*content.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.post_id, p.actor_id, p.content, p.created_at
		FROM posts p
		WHERE p.actor_id <> $1
		  AND NOT EXISTS (SELECT 1 FROM post_likes l WHERE l.post_id=p.post_id AND l.actor_id=$1)
		ORDER BY p.created_at DESC
		LIMIT $2
	`, actorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *ContentRepository) ListCommentablePosts(ctx context.Context, actorID uuid.UUID, limit int) ([]*content.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.post_id, p.actor_id, p.content, p.created_at
		FROM posts p
		WHERE p.actor_id <> $1
		  AND NOT EXISTS (SELECT 1 FROM post_comments c WHERE c.post_id=p.post_id AND c.actor_id=$1)
		ORDER BY p.created_at DESC
		LIMIT $2
	`, actorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *ContentRepository) CreateComment(ctx context.Context, c *content.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO post_comments (comment_id, post_id, actor_id, content, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, c.CommentID, c.PostID, c.ActorID, c.Content, c.CreatedAt)
	return err
}

func (r *ContentRepository) CreateLike(ctx context.Context, l *content.Like) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO post_likes (like_id, post_id, actor_id, created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (post_id, actor_id) DO NOTHING
	`, l.LikeID, l.PostID, l.ActorID, l.CreatedAt)
	return err
}

func (r *ContentRepository) ListQuizzes(ctx context.Context, qt content.QuizType, limit int) ([]*content.Quiz, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT quiz_id, title, type, questions FROM quizzes WHERE type=$1 LIMIT $2
	`, string(qt), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var quizzes []*content.Quiz
	for rows.Next() {
		var (
			q  content.Quiz
			qs []content.Question
			t  string
		)
		if err := rows.Scan(&q.QuizID, &q.Title, &t, &qs); err != nil {
			return nil, err
		}
		q.Type = content.QuizType(t)
		q.Questions = qs
		quizzes = append(quizzes, &q)
	}
	return quizzes, rows.Err()
}

func (r *ContentRepository) ListAttemptedQuizIDs(ctx context.Context, actorID uuid.UUID, qt content.QuizType, since time.Time) ([]uuid.UUID, error) {
	table := "test_attempts"
	if qt == content.QuizTypeLiveCoding {
		table = "live_coding_attempts"
	}
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT quiz_id FROM %s WHERE actor_id=$1 AND completed_at >= $2`, table),
		actorID, since)
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

func (r *ContentRepository) CreateTestAttempt(ctx context.Context, a *content.TestAttempt) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO test_attempts
		(attempt_id, quiz_id, actor_id, score, correct_count, total_questions, duration_seconds, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, a.AttemptID, a.QuizID, a.ActorID, a.Score, a.CorrectCount, a.TotalQuestions, a.DurationSeconds, a.CompletedAt)
	return err
}

func (r *ContentRepository) CreateLiveCodingAttempt(ctx context.Context, a *content.LiveCodingAttempt) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO live_coding_attempts
		(attempt_id, quiz_id, actor_id, duration_seconds, completed_at)
		VALUES ($1,$2,$3,$4,$5)
	`, a.AttemptID, a.QuizID, a.ActorID, a.DurationSeconds, a.CompletedAt)
	return err
}

func (r *ContentRepository) ListLessons(ctx context.Context, limit int) ([]*content.Lesson, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lesson_slug, course_id, title FROM lessons LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lessons []*content.Lesson
	for rows.Next() {
		var l content.Lesson
		if err := rows.Scan(&l.LessonSlug, &l.CourseID, &l.Title); err != nil {
			return nil, err
		}
		lessons = append(lessons, &l)
	}
	return lessons, rows.Err()
}

func (r *ContentRepository) ListCompletedLessonSlugs(ctx context.Context, actorID uuid.UUID) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lesson_slug FROM lesson_completions WHERE actor_id=$1
	`, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

func (r *ContentRepository) CreateLessonCompletion(ctx context.Context, c *content.LessonCompletion) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO lesson_completions (completion_id, actor_id, lesson_slug, score, completed_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (actor_id, lesson_slug) DO NOTHING
	`, c.CompletionID, c.ActorID, c.LessonSlug, c.Score, c.CompletedAt)
	return err
}

func (r *ContentRepository) ListJoinableCommunities(ctx context.Context, actorID uuid.UUID, limit int) ([]*content.Community, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.community_id, c.slug, c.name
		FROM communities c
		WHERE NOT EXISTS (SELECT 1 FROM community_members m WHERE m.community_id=c.community_id AND m.actor_id=$1)
		LIMIT $2
	`, actorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var communities []*content.Community
	for rows.Next() {
		var c content.Community
		if err := rows.Scan(&c.CommunityID, &c.Slug, &c.Name); err != nil {
			return nil, err
		}
		communities = append(communities, &c)
	}
	return communities, rows.Err()
}

func (r *ContentRepository) CreateMembership(ctx context.Context, m *content.Membership) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO community_members (community_id, actor_id, joined_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (community_id, actor_id) DO NOTHING
	`, m.CommunityID, m.ActorID, m.JoinedAt)
	return err
}

func collectPosts(rows pgx.Rows) ([]*content.Post, error) {
	var posts []*content.Post
	for rows.Next() {
		var p content.Post
		if err := rows.Scan(&p.PostID, &p.ActorID, &p.Content, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}
