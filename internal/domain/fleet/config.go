package fleet

import (
	"errors"
	"fmt"
	"time"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
)

// DefaultActiveHours is the hard-coded fallback window (UTC) used when
// neither the fleet nor the actor configures hours.
var DefaultActiveHours = []int{9, 12, 18, 21}

// Config is the process-wide scheduler configuration. It is a persisted
// singleton: loaded once per invocation, never mutated mid-run, updated
// only through the admin write path.
type Config struct {
	ID              int64           `json:"id"`
	ScheduleEnabled bool            `json:"scheduleEnabled"`
	EnabledKinds    []activity.Kind `json:"enabledKinds"`
	ActiveHours     []int           `json:"activeHours"`

	MaxPostsPerDay       int `json:"maxPostsPerDay"`
	MaxCommentsPerDay    int `json:"maxCommentsPerDay"`
	MaxLikesPerDay       int `json:"maxLikesPerDay"`
	MaxTestsPerWeek      int `json:"maxTestsPerWeek"`
	MaxLiveCodingPerWeek int `json:"maxLiveCodingPerWeek"`
	MaxLessonsPerWeek    int `json:"maxLessonsPerWeek"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// Default returns the configuration created on first read: scheduling off,
// every implemented kind enabled, standard hours and ceilings.
func Default() *Config {
	return &Config{
		ScheduleEnabled:      false,
		EnabledKinds:         activity.ImplementedKinds(),
		ActiveHours:          append([]int(nil), DefaultActiveHours...),
		MaxPostsPerDay:       3,
		MaxCommentsPerDay:    5,
		MaxLikesPerDay:       10,
		MaxTestsPerWeek:      3,
		MaxLiveCodingPerWeek: 2,
		MaxLessonsPerWeek:    5,
	}
}

// Ceiling returns the window ceiling for a kind, 0 for kinds without one.
func (c *Config) Ceiling(kind activity.Kind) int {
	switch kind {
	case activity.KindPost:
		return c.MaxPostsPerDay
	case activity.KindComment:
		return c.MaxCommentsPerDay
	case activity.KindLike:
		return c.MaxLikesPerDay
	case activity.KindTest:
		return c.MaxTestsPerWeek
	case activity.KindLiveCoding:
		return c.MaxLiveCodingPerWeek
	case activity.KindLesson:
		return c.MaxLessonsPerWeek
	default:
		return 0
	}
}

// KindEnabled reports whether the kind is in the enabled set.
func (c *Config) KindEnabled(kind activity.Kind) bool {
	for _, k := range c.EnabledKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Validate checks admin-supplied values before the write path persists them.
func (c *Config) Validate() error {
	for _, h := range c.ActiveHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("active hour %d out of range 0..23", h)
		}
	}
	for _, k := range c.EnabledKinds {
		if !k.Valid() {
			return fmt.Errorf("unknown activity kind %q", k)
		}
	}
	ceilings := []int{
		c.MaxPostsPerDay, c.MaxCommentsPerDay, c.MaxLikesPerDay,
		c.MaxTestsPerWeek, c.MaxLiveCodingPerWeek, c.MaxLessonsPerWeek,
	}
	for _, v := range ceilings {
		if v < 0 {
			return errors.New("ceilings must not be negative")
		}
	}
	return nil
}
