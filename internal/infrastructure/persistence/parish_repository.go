package persistence

import (
	"context"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/parish"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// DesignationConflictMessage is reported when two designations fold to the same name
const DesignationConflictMessage = "Designation name already exists"

// GormDesignationRepository implements parish.DesignationRepository using GORM
type GormDesignationRepository struct {
	crudRepository[parish.Designation, models.DesignationModel]
}

// NewGormDesignationRepository creates a new GormDesignationRepository
func NewGormDesignationRepository(db *gorm.DB) *GormDesignationRepository {
	return &GormDesignationRepository{crudRepository[parish.Designation, models.DesignationModel]{
		db:         db,
		resource:   "Designation",
		conflict:   DesignationConflictMessage,
		toDomain:   (*models.DesignationModel).ToDomain,
		fromDomain: models.DesignationModelFromDomain,
	}}
}

// List returns designations sorted by name
func (r *GormDesignationRepository) List(ctx context.Context, filter parish.DesignationFilter) ([]parish.Designation, error) {
	query := r.db.WithContext(ctx).Model(&models.DesignationModel{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []models.DesignationModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, r.fail("List", err)
	}

	out := make([]parish.Designation, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// ExistsByNameKey reports whether a designation other than excludeID uses nameKey
func (r *GormDesignationRepository) ExistsByNameKey(ctx context.Context, nameKey string, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.DesignationModel{}).Where("name_key = ?", nameKey)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, r.fail("ExistsByNameKey", err)
	}
	return count > 0, nil
}

// GormGalleryRepository implements parish.GalleryRepository using GORM
type GormGalleryRepository struct {
	datedRepository[parish.GalleryItem, models.GalleryItemModel]
}

// NewGormGalleryRepository creates a new GormGalleryRepository
func NewGormGalleryRepository(db *gorm.DB, loc *time.Location) *GormGalleryRepository {
	return &GormGalleryRepository{datedRepository[parish.GalleryItem, models.GalleryItemModel]{
		crudRepository: crudRepository[parish.GalleryItem, models.GalleryItemModel]{
			db:         db,
			resource:   "Gallery item",
			conflict:   "Gallery item already exists",
			toDomain:   (*models.GalleryItemModel).ToDomain,
			fromDomain: models.GalleryItemModelFromDomain,
		},
		loc: locationOrUTC(loc),
	}}
}

var (
	_ parish.DesignationRepository = (*GormDesignationRepository)(nil)
	_ parish.GalleryRepository     = (*GormGalleryRepository)(nil)
)
