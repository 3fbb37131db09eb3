package badge

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Badge is an award an actor has earned on the platform.
type Badge struct {
	BadgeID   uuid.UUID `json:"badgeId"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	AwardedAt time.Time `json:"awardedAt"`
}

// Checker surfaces recently awarded, not yet shared badges so a batch run can
// have the actor post about them.
type Checker interface {
	// UnsharedBadges returns badges awarded to the actor that have no share
	// post yet.
	UnsharedBadges(ctx context.Context, actorID uuid.UUID) ([]*Badge, error)
	// MarkShared records that a share post was made for the badge.
	MarkShared(ctx context.Context, actorID, badgeID uuid.UUID) error
}

// NopChecker is a Checker that never reports badges. Used when the badge
// tables are not provisioned.
type NopChecker struct{}

func (NopChecker) UnsharedBadges(context.Context, uuid.UUID) ([]*Badge, error) { return nil, nil }

func (NopChecker) MarkShared(context.Context, uuid.UUID, uuid.UUID) error { return nil }
