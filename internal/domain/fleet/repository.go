package fleet

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import "context"

// Repository persists the scheduler config singleton.
type Repository interface {
	// Get returns the stored config, or nil when none has been written yet.
	Get(ctx context.Context) (*Config, error)
	// Save upserts the singleton row.
	Save(ctx context.Context, cfg *Config) error
}
