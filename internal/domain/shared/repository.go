package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base interface for all repositories.
// FindByID, Save and Delete return a NOT_FOUND DomainError when id does not resolve.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}
