package parish

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/parish"
	"github.com/stretchr/testify/mock"
)

// MockDesignationRepository is a mock implementation of parish.DesignationRepository
type MockDesignationRepository struct {
	mock.Mock
}

func (m *MockDesignationRepository) FindByID(ctx context.Context, id uuid.UUID) (*parish.Designation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parish.Designation), args.Error(1)
}

func (m *MockDesignationRepository) Create(ctx context.Context, d *parish.Designation) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDesignationRepository) Save(ctx context.Context, d *parish.Designation) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDesignationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDesignationRepository) List(ctx context.Context, filter parish.DesignationFilter) ([]parish.Designation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]parish.Designation), args.Error(1)
}

func (m *MockDesignationRepository) ExistsByNameKey(ctx context.Context, nameKey string, excludeID string) (bool, error) {
	args := m.Called(ctx, nameKey, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockGalleryRepository is a mock implementation of parish.GalleryRepository
type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*parish.GalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parish.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) Create(ctx context.Context, g *parish.GalleryItem) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGalleryRepository) Save(ctx context.Context, g *parish.GalleryItem) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGalleryRepository) Find(ctx context.Context, filter finance.Filter) ([]parish.GalleryItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]parish.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) DistinctFunctions(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGalleryRepository) DistinctYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int), args.Error(1)
}

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error) {
	args := m.Called(ctx, key, contentType)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) PresignDownload(ctx context.Context, key string) (string, time.Time, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
