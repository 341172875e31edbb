package parish

import (
	"context"
	"time"
)

// ObjectStorage holds uploaded gallery images. Uploads go straight from the
// browser to the bucket through presigned URLs.
type ObjectStorage interface {
	// PresignUpload returns a URL accepting one PUT of key
	PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error)
	// PresignDownload returns a URL serving key
	PresignDownload(ctx context.Context, key string) (string, time.Time, error)
	DeleteObject(ctx context.Context, key string) error
	ObjectExists(ctx context.Context, key string) (bool, error)
}
