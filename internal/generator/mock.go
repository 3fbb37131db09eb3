package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
	"github.com/yetkin-kariyer/botfleet/internal/domain/content"
)

// MockGenerator produces deterministic content without API calls. Used in
// tests and when no OpenAI key is configured.
type MockGenerator struct{}

// NewMockGenerator creates a generator that needs no network access.
func NewMockGenerator() *MockGenerator { return &MockGenerator{} }

func name(ch *actor.Character) string {
	if ch == nil || ch.Persona == "" {
		return "a community member"
	}
	return ch.Persona
}

func (m *MockGenerator) PostContent(_ context.Context, ch *actor.Character, style int) (string, error) {
	return fmt.Sprintf("Thoughts from %s (style %d): consistency beats intensity. Show up every day.", name(ch), style), nil
}

func (m *MockGenerator) CommentFor(_ context.Context, ch *actor.Character, postText string) (string, error) {
	snippet := postText
	if len(snippet) > 40 {
		snippet = snippet[:40]
	}
	return fmt.Sprintf("Great point about %q, thanks for sharing.", strings.TrimSpace(snippet)), nil
}

func (m *MockGenerator) AnswerQuiz(_ context.Context, _ *actor.Character, quiz *content.Quiz) ([]int, error) {
	// Answer the correct choice for even questions and the first choice
	// otherwise, so scores land mid-range.
	answers := make([]int, len(quiz.Questions))
	for i, q := range quiz.Questions {
		if i%2 == 0 && q.CorrectIndex < len(q.Choices) {
			answers[i] = q.CorrectIndex
		}
	}
	return answers, nil
}

func (m *MockGenerator) ApplicationData(_ context.Context, ch *actor.Character, objectiveTitle string) (*Application, error) {
	app := &Application{
		Motivation: fmt.Sprintf("As %s I want to join %s to build something real and learn from the team.", name(ch), objectiveTitle),
		Skills:     []string{"teamwork", "problem solving", "communication"},
	}
	if ch != nil && len(ch.Expertise) > 0 {
		app.Skills = append(append([]string(nil), ch.Expertise...), "teamwork")
	}
	return app, nil
}

func (m *MockGenerator) BadgeSharePost(_ context.Context, _ *actor.Character, badgeName string) (string, error) {
	return fmt.Sprintf("Just earned the %s badge! Small wins add up.", badgeName), nil
}
