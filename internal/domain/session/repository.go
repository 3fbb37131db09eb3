package session

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import "context"

// Repository defines persistence for sessions.
type Repository interface {
	Create(ctx context.Context, session *Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	UpdateLastSeen(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) (int, error)
}
