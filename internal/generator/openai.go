package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
	"github.com/yetkin-kariyer/botfleet/internal/domain/content"
)

// OpenAIConfig holds configuration for the OpenAI-backed generator.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	// RequestsPerSecond throttles calls across the whole process. Zero
	// disables throttling.
	RequestsPerSecond float64
}

// DefaultOpenAIConfig returns the defaults used when the environment does not
// override them.
func DefaultOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		Model:             openai.GPT4oMini,
		Temperature:       0.9,
		MaxTokens:         500,
		RequestsPerSecond: 2,
	}
}

// OpenAIGenerator produces content through the OpenAI chat API.
type OpenAIGenerator struct {
	client  *openai.Client
	config  OpenAIConfig
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewOpenAIGenerator creates a generator for the given config.
func NewOpenAIGenerator(config OpenAIConfig, logger zerolog.Logger) *OpenAIGenerator {
	limit := rate.Inf
	if config.RequestsPerSecond > 0 {
		limit = rate.Limit(config.RequestsPerSecond)
	}
	return &OpenAIGenerator{
		client:  openai.NewClient(config.APIKey),
		config:  config,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.With().Str("service", "generator").Logger(),
	}
}

func personaPrompt(ch *actor.Character) string {
	if ch == nil {
		return "You are a friendly member of a professional developer community."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s.", ch.Persona)
	if ch.Tone != "" {
		fmt.Fprintf(&b, " Your tone is %s.", ch.Tone)
	}
	if len(ch.Expertise) > 0 {
		fmt.Fprintf(&b, " Your areas of expertise: %s.", strings.Join(ch.Expertise, ", "))
	}
	return b.String()
}

var styleHints = [PostStyles]string{
	"a short tip from your experience",
	"a question to spark discussion",
	"an opinion on a recent trend in your field",
	"a story about a mistake you learned from",
	"a recommendation of a tool or resource",
	"a milestone or achievement you want to share",
	"a hot take, kept respectful",
	"an observation about your day-to-day work",
	"advice for people starting out in your field",
	"a reaction to something you read recently",
}

func (g *OpenAIGenerator) complete(ctx context.Context, system, user string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Temperature: g.config.Temperature,
		MaxTokens:   g.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		g.logger.Warn().Err(err).Msg("chat completion failed")
		return "", fmt.Errorf("%w: %v", activity.ErrGenerator, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", activity.ErrGenerator)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (g *OpenAIGenerator) PostContent(ctx context.Context, ch *actor.Character, style int) (string, error) {
	if style < 1 || style > PostStyles {
		style = 1
	}
	prompt := fmt.Sprintf(
		"Write a social feed post for a developer community: %s. Keep it under 80 words. Plain text, no hashtags.",
		styleHints[style-1],
	)
	return g.complete(ctx, personaPrompt(ch), prompt)
}

func (g *OpenAIGenerator) CommentFor(ctx context.Context, ch *actor.Character, postText string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short, genuine comment (under 40 words) replying to this post:\n\n%s",
		postText,
	)
	return g.complete(ctx, personaPrompt(ch), prompt)
}

func (g *OpenAIGenerator) AnswerQuiz(ctx context.Context, ch *actor.Character, quiz *content.Quiz) ([]int, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Answer the quiz %q. For each question reply with the index of your chosen option. ", quiz.Title)
	b.WriteString("Respond ONLY with a JSON array of integers, one per question, in order.\n\n")
	for i, q := range quiz.Questions {
		fmt.Fprintf(&b, "Q%d: %s\n", i+1, q.Prompt)
		for j, c := range q.Choices {
			fmt.Fprintf(&b, "  %d) %s\n", j, c)
		}
	}
	raw, err := g.complete(ctx, personaPrompt(ch), b.String())
	if err != nil {
		return nil, err
	}
	var answers []int
	if err := json.Unmarshal([]byte(extractJSON(raw)), &answers); err != nil {
		return nil, fmt.Errorf("%w: unparseable quiz answers: %v", activity.ErrGenerator, err)
	}
	// Clamp to valid choices; missing answers default to the first option.
	out := make([]int, len(quiz.Questions))
	for i := range quiz.Questions {
		if i < len(answers) && answers[i] >= 0 && answers[i] < len(quiz.Questions[i].Choices) {
			out[i] = answers[i]
		}
	}
	return out, nil
}

func (g *OpenAIGenerator) ApplicationData(ctx context.Context, ch *actor.Character, objectiveTitle string) (*Application, error) {
	prompt := fmt.Sprintf(
		"You are applying to %q. Respond ONLY with JSON: {\"motivation\": \"2-3 sentences on why you want to join\", \"skills\": [\"3 to 5 relevant skills\"]}.",
		objectiveTitle,
	)
	raw, err := g.complete(ctx, personaPrompt(ch), prompt)
	if err != nil {
		return nil, err
	}
	var app Application
	if err := json.Unmarshal([]byte(extractJSON(raw)), &app); err != nil {
		return nil, fmt.Errorf("%w: unparseable application: %v", activity.ErrGenerator, err)
	}
	if app.Motivation == "" {
		return nil, fmt.Errorf("%w: empty motivation", activity.ErrGenerator)
	}
	return &app, nil
}

func (g *OpenAIGenerator) BadgeSharePost(ctx context.Context, ch *actor.Character, badgeName string) (string, error) {
	prompt := fmt.Sprintf(
		"You just earned the %q badge. Write a short post (under 50 words) sharing the news. Plain text, no hashtags.",
		badgeName,
	)
	return g.complete(ctx, personaPrompt(ch), prompt)
}

// extractJSON strips markdown code fences the model sometimes wraps JSON in.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
