package persistence

import (
	"errors"
	"strings"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps gorm errors onto the domain taxonomy. Missing rows
// become NOT_FOUND with notFound as message, unique violations become
// ALREADY_EXISTS, anything else is a STORE_FAILURE wrapping the cause.
func translateError(op string, err error, notFound, conflict string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFound(notFound)
	}
	if isUniqueViolation(err) {
		return shared.NewAlreadyExists(conflict)
	}
	return shared.NewStoreFailure(op, err)
}

// isUniqueViolation recognizes duplicate keys. Postgres errors arrive as
// gorm.ErrDuplicatedKey through TranslateError; the SQLite driver only
// reports them in the message text.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
