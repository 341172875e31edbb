package storage

import (
	"context"
	"net/url"
	"sync"
	"time"

	parishapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/parish"
)

var _ parishapp.ObjectStorage = (*StubObjectStorage)(nil)

// StubObjectStorage fakes a bucket for development and tests. It hands out
// URLs under BaseURL and remembers which keys were presigned for upload.
type StubObjectStorage struct {
	BaseURL string
	Expiry  time.Duration

	mu      sync.Mutex
	objects map[string]struct{}
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		Expiry:  15 * time.Minute,
		objects: make(map[string]struct{}),
	}
}

func (s *StubObjectStorage) link(kind, key string, expiresAt time.Time) string {
	return s.BaseURL + "/" + kind + "/" + url.PathEscape(key) + "?expires=" + url.QueryEscape(expiresAt.UTC().Format(time.RFC3339))
}

// PresignUpload returns a fake upload URL and records key as present
func (s *StubObjectStorage) PresignUpload(_ context.Context, key, _ string) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errEmptyKey
	}
	s.mu.Lock()
	s.objects[key] = struct{}{}
	s.mu.Unlock()

	expiresAt := time.Now().Add(s.Expiry)
	return s.link("upload", key, expiresAt), expiresAt, nil
}

// PresignDownload returns a fake download URL
func (s *StubObjectStorage) PresignDownload(_ context.Context, key string) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errEmptyKey
	}
	expiresAt := time.Now().Add(s.Expiry)
	return s.link("download", key, expiresAt), expiresAt, nil
}

// DeleteObject forgets key
func (s *StubObjectStorage) DeleteObject(_ context.Context, key string) error {
	if key == "" {
		return errEmptyKey
	}
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

// ObjectExists reports whether key was presigned for upload and not deleted
func (s *StubObjectStorage) ObjectExists(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}
