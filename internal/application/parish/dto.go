package parish

import (
	"time"

	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/parish"
)

// =============================================================================
// Designation DTOs
// =============================================================================

// CreateDesignationRequest is the body of POST /api/designations
type CreateDesignationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateDesignationRequest is the body of PUT /api/designations/:id
type UpdateDesignationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// DesignationResponse represents a designation in API responses
type DesignationResponse struct {
	ID          uuid.UUID `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToDesignationResponse converts a domain designation to its response form
func ToDesignationResponse(d *parish.Designation) DesignationResponse {
	return DesignationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// =============================================================================
// Gallery DTOs
// =============================================================================

// CreateGalleryItemRequest is the body of POST /api/gallery. Either ImageURL
// or ObjectKey (from a prior upload-url call) must be set.
type CreateGalleryItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Function    string `json:"function"`
	ImageURL    string `json:"imageUrl"`
	ObjectKey   string `json:"objectKey"`
	Date        string `json:"date"`
}

// UpdateGalleryItemRequest is the body of PUT /api/gallery/:id
type UpdateGalleryItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Function    *string `json:"function"`
	ImageURL    *string `json:"imageUrl"`
	ObjectKey   *string `json:"objectKey"`
	Date        *string `json:"date"`
}

// GalleryItemResponse represents a gallery item in API responses. For
// uploaded images ImageURL is a short lived presigned link.
type GalleryItemResponse struct {
	ID          uuid.UUID `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Function    string    `json:"function"`
	ImageURL    string    `json:"imageUrl"`
	ObjectKey   string    `json:"objectKey,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToGalleryItemResponse converts a domain gallery item to its response form
func ToGalleryItemResponse(g *parish.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Function:    g.Function,
		ImageURL:    g.ImageURL,
		ObjectKey:   g.ObjectKey,
		Date:        g.Date,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// UploadURLRequest is the body of POST /api/gallery/upload-url
type UploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// UploadURLResponse tells the browser where to PUT the image
type UploadURLResponse struct {
	UploadURL string    `json:"uploadUrl"`
	ObjectKey string    `json:"objectKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}
