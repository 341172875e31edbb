package parish_test

import (
	"testing"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/parish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDesignation(t *testing.T) {
	d, err := parish.NewDesignation("  Treasurer ", "Keeps the books", nil)
	require.NoError(t, err)
	assert.Equal(t, "Treasurer", d.Name)
	assert.True(t, d.IsActive)

	inactive := false
	d, err = parish.NewDesignation("Secretary", "", &inactive)
	require.NoError(t, err)
	assert.False(t, d.IsActive)

	_, err = parish.NewDesignation("   ", "", nil)
	assert.Error(t, err)
}

func TestNameKey_FoldsCase(t *testing.T) {
	assert.Equal(t, parish.NameKey("TREASURER"), parish.NameKey(" treasurer"))
	assert.NotEqual(t, parish.NameKey("President"), parish.NameKey("Vice President"))
}

func TestGalleryItem_RequiresImage(t *testing.T) {
	_, err := parish.NewGalleryItem("Feast procession", "", "Feast", "", "", time.Time{})
	require.Error(t, err)

	g, err := parish.NewGalleryItem("Feast procession", "", "Feast", "", "gallery/2024/a.jpg", time.Time{})
	require.NoError(t, err)
	assert.True(t, g.IsUploaded())
	assert.False(t, g.Date.IsZero())

	empty := ""
	err = g.Apply(parish.GalleryPatch{ObjectKey: &empty})
	require.Error(t, err)
	assert.Equal(t, "gallery/2024/a.jpg", g.ObjectKey)
}
