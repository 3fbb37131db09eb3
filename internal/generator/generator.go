// Package generator produces the text the fleet's actors publish. The real
// implementation talks to OpenAI; the mock is rule-based and deterministic
// enough for development and tests.
package generator

import (
	"context"

	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
	"github.com/yetkin-kariyer/botfleet/internal/domain/content"
)

// PostStyles is the number of distinct post styles a generator can be asked
// for. Styles are numbered 1..PostStyles.
const PostStyles = 10

// Application is the generated payload for an objective application.
type Application struct {
	Motivation string   `json:"motivation"`
	Skills     []string `json:"skills"`
}

// Generator produces persona-consistent content for an actor.
type Generator interface {
	// PostContent writes a feed post in the given style (1..PostStyles).
	PostContent(ctx context.Context, ch *actor.Character, style int) (string, error)
	// CommentFor writes a short reply to the given post text.
	CommentFor(ctx context.Context, ch *actor.Character, postText string) (string, error)
	// AnswerQuiz picks a choice index per question. The slice length always
	// matches the question count.
	AnswerQuiz(ctx context.Context, ch *actor.Character, quiz *content.Quiz) ([]int, error)
	// ApplicationData writes a motivation letter and skill list for an
	// objective application.
	ApplicationData(ctx context.Context, ch *actor.Character, objectiveTitle string) (*Application, error)
	// BadgeSharePost writes a celebratory post about an earned badge.
	BadgeSharePost(ctx context.Context, ch *actor.Character, badgeName string) (string, error)
}
