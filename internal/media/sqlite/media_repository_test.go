package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porkengine/gutenberg/internal/media"
	"github.com/porkengine/gutenberg/internal/testutil"
)

func newItem(url string) *media.Item {
	now := time.Now().Truncate(time.Second)
	return &media.Item{
		GUID:      url, // unique enough for tests
		URL:       url,
		Alt:       "alt text",
		Mime:      "image/png",
		Width:     2048,
		Height:    1024,
		Sizes:     media.BuildSizes(url, 2048, 1024),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMediaRepository_SaveAssignsID(t *testing.T) {
	repo := NewMediaRepository(testutil.NewMemoryDB(t))

	item := newItem("/media/a.png")
	require.NoError(t, repo.Save(item))
	assert.NotZero(t, item.ID)
}

func TestMediaRepository_FindByID_RoundTrip(t *testing.T) {
	repo := NewMediaRepository(testutil.NewMemoryDB(t))

	item := newItem("/media/a.png")
	require.NoError(t, repo.Save(item))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.GUID, found.GUID)
	assert.Equal(t, item.URL, found.URL)
	assert.Equal(t, item.Alt, found.Alt)
	assert.Equal(t, item.Width, found.Width)
	assert.Equal(t, item.CreatedAt.Unix(), found.CreatedAt.Unix())

	// Size variants survive the JSON column.
	require.Contains(t, found.Sizes, "large")
	assert.Equal(t, 1024, found.Sizes["large"].Width)
}

func TestMediaRepository_FindByID_NotFound(t *testing.T) {
	repo := NewMediaRepository(testutil.NewMemoryDB(t))

	_, err := repo.FindByID(42)
	var nf *media.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(42), nf.ID)
}

func TestMediaRepository_SaveUpdatesExisting(t *testing.T) {
	repo := NewMediaRepository(testutil.NewMemoryDB(t))

	item := newItem("/media/a.png")
	require.NoError(t, repo.Save(item))

	item.Alt = "updated"
	item.Width = 640
	require.NoError(t, repo.Save(item))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", found.Alt)
	assert.Equal(t, 640, found.Width)
}

func TestMediaRepository_DeleteIsSoft(t *testing.T) {
	db := testutil.NewMemoryDB(t)
	repo := NewMediaRepository(db)

	item := newItem("/media/a.png")
	require.NoError(t, repo.Save(item))
	require.NoError(t, repo.Delete(item.ID))

	_, err := repo.FindByID(item.ID)
	var nf *media.NotFoundError
	require.ErrorAs(t, err, &nf)

	// Row still present, only tombstoned.
	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM media_items WHERE id = ?`, item.ID).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMediaRepository_List(t *testing.T) {
	repo := NewMediaRepository(testutil.NewMemoryDB(t))

	first := newItem("/media/a.png")
	first.CreatedAt = time.Unix(1000, 0)
	first.UpdatedAt = first.CreatedAt
	require.NoError(t, repo.Save(first))

	second := newItem("/media/b.png")
	second.CreatedAt = time.Unix(2000, 0)
	second.UpdatedAt = second.CreatedAt
	require.NoError(t, repo.Save(second))

	deleted := newItem("/media/c.png")
	require.NoError(t, repo.Save(deleted))
	require.NoError(t, repo.Delete(deleted.ID))

	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "/media/b.png", items[0].URL, "newest first")
	assert.Equal(t, "/media/a.png", items[1].URL)
}

func TestMediaRepository_NullableColumns(t *testing.T) {
	repo := NewMediaRepository(testutil.NewMemoryDB(t))

	item := &media.Item{
		GUID:      "bare",
		URL:       "/media/bare.png",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Save(item))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Alt)
	assert.Empty(t, found.Sizes)
}
