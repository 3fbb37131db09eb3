package actor

import (
	"time"

	"github.com/google/uuid"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
)

// Actor is an automated account performing platform activities under a
// persona. Config and Character are loaded alongside the actor; an actor
// without them cannot take part in scheduling.
type Actor struct {
	ID        int64          `json:"id"`
	ActorID   uuid.UUID      `json:"actorId"`
	Name      string         `json:"name"`
	Config    *Configuration `json:"config,omitempty"`
	Character *Character     `json:"character,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Configuration holds an actor's scheduling settings. Empty ActiveHours
// means the fleet default governs. Min/max pairs bound the random quantity
// an orchestrator run may attempt for a kind.
type Configuration struct {
	ActorID         uuid.UUID       `json:"actorId"`
	IsActive        bool            `json:"isActive"`
	ScheduleEnabled bool            `json:"scheduleEnabled"`
	ActiveHours     []int           `json:"activeHours"`
	EnabledKinds    []activity.Kind `json:"enabledKinds"`

	MinPostsPerDay       int `json:"minPostsPerDay"`
	MaxPostsPerDay       int `json:"maxPostsPerDay"`
	MinCommentsPerDay    int `json:"minCommentsPerDay"`
	MaxCommentsPerDay    int `json:"maxCommentsPerDay"`
	MinLikesPerDay       int `json:"minLikesPerDay"`
	MaxLikesPerDay       int `json:"maxLikesPerDay"`
	MinTestsPerWeek      int `json:"minTestsPerWeek"`
	MaxTestsPerWeek      int `json:"maxTestsPerWeek"`
	MinLiveCodingPerWeek int `json:"minLiveCodingPerWeek"`
	MaxLiveCodingPerWeek int `json:"maxLiveCodingPerWeek"`
	MinLessonsPerWeek    int `json:"minLessonsPerWeek"`
	MaxLessonsPerWeek    int `json:"maxLessonsPerWeek"`

	LastActivityAt *time.Time `json:"lastActivityAt,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Bounds returns the configured min/max quantity for a kind within its
// window. Kinds without per-actor bounds return (0, 0).
func (c *Configuration) Bounds(kind activity.Kind) (min, max int) {
	switch kind {
	case activity.KindPost:
		return c.MinPostsPerDay, c.MaxPostsPerDay
	case activity.KindComment:
		return c.MinCommentsPerDay, c.MaxCommentsPerDay
	case activity.KindLike:
		return c.MinLikesPerDay, c.MaxLikesPerDay
	case activity.KindTest:
		return c.MinTestsPerWeek, c.MaxTestsPerWeek
	case activity.KindLiveCoding:
		return c.MinLiveCodingPerWeek, c.MaxLiveCodingPerWeek
	case activity.KindLesson:
		return c.MinLessonsPerWeek, c.MaxLessonsPerWeek
	default:
		return 0, 0
	}
}

// Character is the persona an actor writes and answers as. Content
// generation prompts are built from it.
type Character struct {
	ActorID   uuid.UUID `json:"actorId"`
	Persona   string    `json:"persona"`
	Tone      string    `json:"tone"`
	Expertise []string  `json:"expertise"`
}
