package parish

import (
	"strings"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
)

// GalleryItem is a photo shown in the parish gallery. The image is either an
// external URL or an object uploaded to the bucket under ObjectKey.
type GalleryItem struct {
	shared.BaseEntity
	Title       string
	Description string
	Function    string
	ImageURL    string
	ObjectKey   string
	Date        time.Time
}

// NewGalleryItem creates a gallery item. A zero date defaults to now.
func NewGalleryItem(title, description, function, imageURL, objectKey string, date time.Time) (*GalleryItem, error) {
	if date.IsZero() {
		date = time.Now()
	}
	g := &GalleryItem{
		BaseEntity:  shared.NewBaseEntity(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Function:    strings.TrimSpace(function),
		ImageURL:    strings.TrimSpace(imageURL),
		ObjectKey:   strings.TrimSpace(objectKey),
		Date:        date,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the gallery item invariants
func (g *GalleryItem) Validate() error {
	if g.Title == "" {
		return shared.NewInvalidParameter("Title is required", g.Title)
	}
	if g.ImageURL == "" && g.ObjectKey == "" {
		return shared.NewInvalidParameter("Image URL or uploaded object key is required", map[string]string{
			"imageUrl":  g.ImageURL,
			"objectKey": g.ObjectKey,
		})
	}
	return nil
}

// IsUploaded returns true if the image lives in object storage
func (g *GalleryItem) IsUploaded() bool {
	return g.ObjectKey != ""
}

// GalleryPatch holds the fields supplied on a partial update
type GalleryPatch struct {
	Title       *string
	Description *string
	Function    *string
	ImageURL    *string
	ObjectKey   *string
	Date        *time.Time
}

// Apply merges the supplied fields and re-validates
func (g *GalleryItem) Apply(p GalleryPatch) error {
	merged := *g
	if p.Title != nil {
		merged.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		merged.Description = strings.TrimSpace(*p.Description)
	}
	if p.Function != nil {
		merged.Function = strings.TrimSpace(*p.Function)
	}
	if p.ImageURL != nil {
		merged.ImageURL = strings.TrimSpace(*p.ImageURL)
	}
	if p.ObjectKey != nil {
		merged.ObjectKey = strings.TrimSpace(*p.ObjectKey)
	}
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if err := merged.Validate(); err != nil {
		return err
	}
	merged.Touch()
	*g = merged
	return nil
}
