package actor

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository persists actors and their scheduling configuration. Every
// read returns the actor with Config and Character populated when present.
type Repository interface {
	GetByID(ctx context.Context, actorID uuid.UUID) (*Actor, error)
	ListByIDs(ctx context.Context, actorIDs []uuid.UUID) ([]*Actor, error)
	// ListActive returns actors whose configuration has isActive=true.
	ListActive(ctx context.Context) ([]*Actor, error)
	UpdateConfiguration(ctx context.Context, cfg *Configuration) error
	// TouchLastActivity records that the actor just performed an activity.
	TouchLastActivity(ctx context.Context, actorID uuid.UUID, at time.Time) error
}
