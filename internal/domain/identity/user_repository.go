package identity

import (
	"context"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
)

// UserRepository stores administrative users
type UserRepository interface {
	shared.Repository[User]

	// FindByUsername returns a NOT_FOUND DomainError when no user matches
	FindByUsername(ctx context.Context, username string) (*User, error)
}
