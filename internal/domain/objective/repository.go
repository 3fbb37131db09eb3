package objective

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"

	"github.com/google/uuid"
)

// Repository reads objectives and records applications.
type Repository interface {
	GetByID(ctx context.Context, objectiveID uuid.UUID) (*Objective, error)
	// CountApplications counts all applications to the objective, any status.
	CountApplications(ctx context.Context, objectiveID uuid.UUID) (int, error)
	// ListAppliedActorIDs returns the actor ids that already hold an
	// application to the objective.
	ListAppliedActorIDs(ctx context.Context, objectiveID uuid.UUID) ([]uuid.UUID, error)
	CreateApplication(ctx context.Context, a *Application) error
}
