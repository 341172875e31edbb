package parish

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/parish"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"go.uber.org/zap"
)

const (
	// GalleryNotFoundMessage is returned for unknown gallery ids
	GalleryNotFoundMessage = "Gallery item not found"

	galleryKeyPrefix = "gallery/"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// GalleryService handles gallery items and their uploaded images
type GalleryService struct {
	repo    parish.GalleryRepository
	storage ObjectStorage
	opts    Options
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(repo parish.GalleryRepository, storage ObjectStorage, opts Options) *GalleryService {
	return &GalleryService{repo: repo, storage: storage, opts: opts.withDefaults()}
}

// List returns gallery items, newest first. Only year and function filter.
func (s *GalleryService) List(ctx context.Context, params finance.FilterParams) ([]GalleryItemResponse, error) {
	params.Type = ""
	filter, err := finance.ParseFilter(params, s.opts.Now(), s.opts.Location, nil)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]GalleryItemResponse, len(items))
	for i := range items {
		out[i] = s.toResponse(ctx, &items[i])
	}
	return out, nil
}

// GetByID returns one gallery item
func (s *GalleryService) GetByID(ctx context.Context, rawID string) (*GalleryItemResponse, error) {
	g, err := s.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(ctx, g)
	return &resp, nil
}

// Create stores a new gallery item. An object key must name an image that
// was already uploaded.
func (s *GalleryService) Create(ctx context.Context, req CreateGalleryItemRequest) (*GalleryItemResponse, error) {
	if strings.TrimSpace(req.Title) == "" || (strings.TrimSpace(req.ImageURL) == "" && strings.TrimSpace(req.ObjectKey) == "") {
		return nil, shared.NewInvalidParameter(shared.RequiredFieldsMessage, req)
	}
	date, err := parseDate(req.Date, s.opts)
	if err != nil {
		return nil, err
	}
	if err := s.checkUploaded(ctx, req.ObjectKey); err != nil {
		return nil, err
	}

	item, err := parish.NewGalleryItem(req.Title, req.Description, req.Function, req.ImageURL, req.ObjectKey, date)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.opts.Logger.Info("Gallery item created",
		zap.String("id", item.ID.String()),
		zap.Bool("uploaded", item.IsUploaded()),
	)
	s.opts.Metrics.EntryWritten(ctx, "gallery", "create")
	resp := s.toResponse(ctx, item)
	return &resp, nil
}

// Update merges the supplied fields. Replacing the object key deletes the
// previous object once the item is saved.
func (s *GalleryService) Update(ctx context.Context, rawID string, req UpdateGalleryItemRequest) (*GalleryItemResponse, error) {
	item, err := s.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	patch := parish.GalleryPatch{
		Title:       req.Title,
		Description: req.Description,
		Function:    req.Function,
		ImageURL:    req.ImageURL,
		ObjectKey:   req.ObjectKey,
	}
	if req.Date != nil {
		date, err := shared.ParseDate(*req.Date, s.opts.Location)
		if err != nil {
			return nil, err
		}
		if date.IsZero() {
			return nil, shared.NewInvalidParameter("Invalid date", *req.Date)
		}
		patch.Date = &date
	}

	previousKey := item.ObjectKey
	if req.ObjectKey != nil && strings.TrimSpace(*req.ObjectKey) != previousKey {
		if err := s.checkUploaded(ctx, *req.ObjectKey); err != nil {
			return nil, err
		}
	}
	if err := item.Apply(patch); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	if previousKey != "" && previousKey != item.ObjectKey {
		s.deleteObject(ctx, previousKey)
	}

	s.opts.Metrics.EntryWritten(ctx, "gallery", "update")
	resp := s.toResponse(ctx, item)
	return &resp, nil
}

// Delete removes the item and its uploaded object. A failure to delete the
// object is logged and does not fail the request.
func (s *GalleryService) Delete(ctx context.Context, rawID string) error {
	item, err := s.load(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, item.ID); err != nil {
		return err
	}
	if item.IsUploaded() {
		s.deleteObject(ctx, item.ObjectKey)
	}
	s.opts.Logger.Info("Gallery item deleted", zap.String("id", item.ID.String()))
	s.opts.Metrics.EntryWritten(ctx, "gallery", "delete")
	return nil
}

// UploadURL reserves a fresh object key and presigns a PUT for it
func (s *GalleryService) UploadURL(ctx context.Context, req UploadURLRequest) (*UploadURLResponse, error) {
	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, shared.NewInvalidParameter("Content type must be an image (jpeg, png, gif, webp)", req.ContentType)
	}
	if contentType == "image/jpeg" && strings.EqualFold(path.Ext(req.Filename), ".jpeg") {
		ext = ".jpeg"
	}

	key := galleryKeyPrefix + uuid.NewString() + ext
	url, expiresAt, err := s.storage.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return &UploadURLResponse{UploadURL: url, ObjectKey: key, ExpiresAt: expiresAt}, nil
}

// Years returns the distinct years of the gallery, descending unless rawOrder is asc
func (s *GalleryService) Years(ctx context.Context, rawOrder string) ([]int, error) {
	order, err := finance.ParseSortOrder(rawOrder)
	if err != nil {
		return nil, err
	}
	years, err := s.repo.DistinctYears(ctx)
	if err != nil {
		return nil, err
	}
	return finance.SortYears(years, order), nil
}

// Functions returns the distinct function tags of the gallery
func (s *GalleryService) Functions(ctx context.Context) ([]string, error) {
	return s.repo.DistinctFunctions(ctx)
}

func (s *GalleryService) load(ctx context.Context, rawID string) (*parish.GalleryItem, error) {
	id, err := shared.ParseID(rawID, GalleryNotFoundMessage)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *GalleryService) checkUploaded(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	if !strings.HasPrefix(key, galleryKeyPrefix) {
		return shared.NewInvalidParameter("Invalid object key", key)
	}
	exists, err := s.storage.ObjectExists(ctx, key)
	if err != nil {
		return shared.NewInternalError(err)
	}
	if !exists {
		return shared.NewInvalidParameter("Uploaded image not found", key)
	}
	return nil
}

func (s *GalleryService) deleteObject(ctx context.Context, key string) {
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		s.opts.Logger.Error("Failed to delete gallery object",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// toResponse fills ImageURL of uploaded items with a presigned download link.
// Presigning is a local signature, so a failure only drops the link.
func (s *GalleryService) toResponse(ctx context.Context, g *parish.GalleryItem) GalleryItemResponse {
	resp := ToGalleryItemResponse(g)
	if !g.IsUploaded() {
		return resp
	}
	url, _, err := s.storage.PresignDownload(ctx, g.ObjectKey)
	if err != nil {
		s.opts.Logger.Warn("Failed to presign gallery image",
			zap.String("key", g.ObjectKey),
			zap.Error(err),
		)
		return resp
	}
	resp.ImageURL = url
	return resp
}

// parseDate reads a request date in the configured location. An empty
// string yields now.
func parseDate(raw string, opts Options) (time.Time, error) {
	t, err := shared.ParseDate(raw, opts.Location)
	if err != nil {
		return time.Time{}, err
	}
	if t.IsZero() {
		return opts.Now(), nil
	}
	return t, nil
}
