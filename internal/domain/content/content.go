// Package content holds the domain activity records the engine creates and
// counts. There is no separate counter table: rate-limit counts are derived
// by querying these records for a time window.
package content

import (
	"time"

	"github.com/google/uuid"
)

// Post is a feed post authored by an actor.
type Post struct {
	PostID    uuid.UUID `json:"postId"`
	ActorID   uuid.UUID `json:"actorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is an actor's comment on a post.
type Comment struct {
	CommentID uuid.UUID `json:"commentId"`
	PostID    uuid.UUID `json:"postId"`
	ActorID   uuid.UUID `json:"actorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Like is an actor's like on a post.
type Like struct {
	LikeID    uuid.UUID `json:"likeId"`
	PostID    uuid.UUID `json:"postId"`
	ActorID   uuid.UUID `json:"actorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuizType distinguishes answerable tests from live-coding cases.
type QuizType string

const (
	QuizTypeTest       QuizType = "TEST"
	QuizTypeLiveCoding QuizType = "LIVE_CODING"
)

// Question is one multiple-choice question of a quiz.
type Question struct {
	Prompt       string   `json:"prompt"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correctIndex"`
}

// Quiz is a test or live-coding case an actor can attempt.
type Quiz struct {
	QuizID    uuid.UUID  `json:"quizId"`
	Title     string     `json:"title"`
	Type      QuizType   `json:"type"`
	Questions []Question `json:"questions,omitempty"`
}

// TestAttempt records one completed test.
type TestAttempt struct {
	AttemptID       uuid.UUID `json:"attemptId"`
	QuizID          uuid.UUID `json:"quizId"`
	ActorID         uuid.UUID `json:"actorId"`
	Score           int       `json:"score"`
	CorrectCount    int       `json:"correctCount"`
	TotalQuestions  int       `json:"totalQuestions"`
	DurationSeconds int       `json:"durationSeconds"`
	CompletedAt     time.Time `json:"completedAt"`
}

// LiveCodingAttempt records one completed live-coding case.
type LiveCodingAttempt struct {
	AttemptID       uuid.UUID `json:"attemptId"`
	QuizID          uuid.UUID `json:"quizId"`
	ActorID         uuid.UUID `json:"actorId"`
	DurationSeconds int       `json:"durationSeconds"`
	CompletedAt     time.Time `json:"completedAt"`
}

// Lesson is a completable course lesson.
type Lesson struct {
	LessonSlug string    `json:"lessonSlug"`
	CourseID   uuid.UUID `json:"courseId"`
	Title      string    `json:"title"`
}

// LessonCompletion records one completed lesson.
type LessonCompletion struct {
	CompletionID uuid.UUID `json:"completionId"`
	ActorID      uuid.UUID `json:"actorId"`
	LessonSlug   string    `json:"lessonSlug"`
	Score        int       `json:"score"`
	CompletedAt  time.Time `json:"completedAt"`
}

// Community is a joinable group.
type Community struct {
	CommunityID uuid.UUID `json:"communityId"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
}

// Membership records an actor's community membership.
type Membership struct {
	CommunityID uuid.UUID `json:"communityId"`
	ActorID     uuid.UUID `json:"actorId"`
	JoinedAt    time.Time `json:"joinedAt"`
}
