package team

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import "context"

// Repository persists formed teams.
type Repository interface {
	Create(ctx context.Context, t *Team) error
}
