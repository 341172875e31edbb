package persistence

import (
	"context"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/identity"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	crudRepository[identity.User, models.UserModel]
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{crudRepository[identity.User, models.UserModel]{
		db:         db,
		resource:   "User",
		conflict:   "Username already exists",
		toDomain:   (*models.UserModel).ToDomain,
		fromDomain: models.UserModelFromDomain,
	}}
}

// FindByUsername finds a user by normalized username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Where("username = ?", identity.NormalizeUsername(username)).
		First(&model).Error
	if err != nil {
		return nil, r.fail("FindByUsername", err)
	}
	return model.ToDomain(), nil
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
