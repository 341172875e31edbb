package storage

import (
	"context"
	"fmt"

	parishapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/parish"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New builds the configured backend. S3 buckets are created on demand when
// cfg.CreateBucket is set.
func New(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (parishapp.ObjectStorage, error) {
	switch cfg.Type {
	case config.StorageStub:
		logger.Warn("Using stub object storage, uploaded images are not persisted")
		stub := NewStubObjectStorage()
		if cfg.PresignExpiry > 0 {
			stub.Expiry = cfg.PresignExpiry
		}
		return stub, nil
	case config.StorageS3:
		s, err := NewS3ObjectStorage(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		if cfg.CreateBucket {
			if err := s.EnsureBucket(ctx); err != nil {
				return nil, err
			}
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}
