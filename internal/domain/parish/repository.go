package parish

import (
	"context"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
)

// DesignationFilter narrows a designation listing
type DesignationFilter struct {
	// ActiveOnly limits the listing to active designations
	ActiveOnly bool
}

// DesignationRepository stores designations
type DesignationRepository interface {
	shared.Repository[Designation]

	// List returns designations sorted by name
	List(ctx context.Context, filter DesignationFilter) ([]Designation, error)
	// ExistsByNameKey reports whether another designation already uses the name.
	// excludeID may be empty.
	ExistsByNameKey(ctx context.Context, nameKey string, excludeID string) (bool, error)
}

// GalleryRepository stores gallery items. Year and function filtering reuse
// the finance filter; the type dimension is ignored.
type GalleryRepository interface {
	shared.Repository[GalleryItem]

	// Find returns matching items, newest date first
	Find(ctx context.Context, filter finance.Filter) ([]GalleryItem, error)
	DistinctFunctions(ctx context.Context) ([]string, error)
	DistinctYears(ctx context.Context) ([]int, error)
}
