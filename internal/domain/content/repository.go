package content

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Counter,Store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
)

// Counter derives rolling-window counts from the domain tables. A failed
// count must be surfaced as an error so the rate limiter can fail closed.
type Counter interface {
	// CountInWindow counts the actor's records of the kind's domain table
	// with a timestamp in [from, to).
	CountInWindow(ctx context.Context, actorID uuid.UUID, kind activity.Kind, from, to time.Time) (int, error)
}

// Store reads and writes the domain activity records the executor touches.
type Store interface {
	CreatePost(ctx context.Context, p *Post) error
	// ListLikeablePosts returns recent posts not authored by the actor and
	// not yet liked by it.
	ListLikeablePosts(ctx context.Context, actorID uuid.UUID, limit int) ([]*Post, error)
	// ListCommentablePosts returns recent posts not authored by the actor
	// and not yet commented on by it.
	ListCommentablePosts(ctx context.Context, actorID uuid.UUID, limit int) ([]*Post, error)
	CreateComment(ctx context.Context, c *Comment) error
	CreateLike(ctx context.Context, l *Like) error

	ListQuizzes(ctx context.Context, qt QuizType, limit int) ([]*Quiz, error)
	// ListAttemptedQuizIDs returns quiz ids the actor has attempted since
	// the given time, so a run never repeats the same quiz.
	ListAttemptedQuizIDs(ctx context.Context, actorID uuid.UUID, qt QuizType, since time.Time) ([]uuid.UUID, error)
	CreateTestAttempt(ctx context.Context, a *TestAttempt) error
	CreateLiveCodingAttempt(ctx context.Context, a *LiveCodingAttempt) error

	ListLessons(ctx context.Context, limit int) ([]*Lesson, error)
	ListCompletedLessonSlugs(ctx context.Context, actorID uuid.UUID) ([]string, error)
	CreateLessonCompletion(ctx context.Context, c *LessonCompletion) error

	// ListJoinableCommunities returns communities the actor is not in yet.
	ListJoinableCommunities(ctx context.Context, actorID uuid.UUID, limit int) ([]*Community, error)
	CreateMembership(ctx context.Context, m *Membership) error
}
