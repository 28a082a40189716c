package image

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porkengine/gutenberg/internal/blocks"
	"github.com/porkengine/gutenberg/internal/media"
)

// fakeUploader replays a scripted result.
type fakeUploader struct {
	items []*media.Item
	err   error
}

func (u *fakeUploader) Upload(ctx context.Context, files []media.File, fn media.UploadFunc) {
	if u.err != nil {
		fn(nil, u.err)
		return
	}
	fn(u.items, nil)
}

// fakeLibrary serves items from a map.
type fakeLibrary struct {
	items map[int64]*media.Item
}

func (l *fakeLibrary) ItemByID(ctx context.Context, id int64) (*media.Item, error) {
	item, ok := l.items[id]
	if !ok {
		return nil, &media.NotFoundError{ID: id}
	}
	return item, nil
}

func TestNew_DefaultAlignment(t *testing.T) {
	b := New(Config{})

	align, ok := b.Attributes().String("align")
	require.True(t, ok)
	assert.Equal(t, "none", align)
	assert.False(t, b.HasImage())
}

func TestSetAttributes_MirrorsPartialToHost(t *testing.T) {
	var mirrored []blocks.Attributes
	b := New(Config{
		SetAttributes: func(p blocks.Attributes) { mirrored = append(mirrored, p) },
	})

	b.SetAttributes(blocks.Attributes{"url": "a.png"})

	require.Len(t, mirrored, 1)
	assert.Equal(t, "a.png", mirrored[0]["url"])

	url, ok := b.Attributes().String("url")
	require.True(t, ok)
	assert.Equal(t, "a.png", url)
}

func TestUploadFrom_AppliesFirstItem(t *testing.T) {
	uploader := &fakeUploader{items: []*media.Item{{
		ID: 7, URL: "/media/a.png", Alt: "a", Width: 800, Height: 600,
	}}}
	b := New(Config{Uploader: uploader})

	b.UploadFrom(context.Background(), []media.File{{Name: "a.png"}})

	attrs := b.Attributes()
	id, _ := attrs.Int64("id")
	assert.Equal(t, int64(7), id)
	url, _ := attrs.String("url")
	assert.Equal(t, "/media/a.png", url)
	slug, _ := attrs.String("sizeSlug")
	assert.Equal(t, media.SlugFull, slug)
	assert.True(t, b.HasImage())
}

func TestUploadFrom_ErrorLandsInAttribute(t *testing.T) {
	b := New(Config{Uploader: &fakeUploader{err: errors.New("network down")}})

	b.UploadFrom(context.Background(), []media.File{{Name: "a.png"}})

	msg, ok := b.Attributes().String("error")
	require.True(t, ok)
	assert.Contains(t, msg, "network down")
	assert.False(t, b.HasImage())
}

func TestUploadFrom_NoUploaderIsNoOp(t *testing.T) {
	b := New(Config{})
	b.UploadFrom(context.Background(), []media.File{{Name: "a.png"}})
	assert.False(t, b.HasImage())
}

func TestSelectSize_AppliesVariant(t *testing.T) {
	lib := &fakeLibrary{items: map[int64]*media.Item{
		7: {
			ID: 7,
			Sizes: map[string]media.SizeVariant{
				"medium": {Slug: "medium", URL: "/media/a-300x150.png", Width: 300, Height: 150},
			},
		},
	}}
	b := New(Config{Library: lib})
	b.SetAttributes(blocks.Attributes{"id": int64(7), "url": "/media/a.png"})

	b.SelectSize(context.Background(), "medium")

	attrs := b.Attributes()
	url, _ := attrs.String("url")
	assert.Equal(t, "/media/a-300x150.png", url)
	w, _ := attrs.Int("width")
	assert.Equal(t, 300, w)
	slug, _ := attrs.String("sizeSlug")
	assert.Equal(t, "medium", slug)
}

func TestSelectSize_UnknownSlugKeepsAttributes(t *testing.T) {
	lib := &fakeLibrary{items: map[int64]*media.Item{7: {ID: 7}}}
	b := New(Config{Library: lib})
	b.SetAttributes(blocks.Attributes{"id": int64(7), "url": "/media/a.png"})

	b.SelectSize(context.Background(), "huge")

	url, _ := b.Attributes().String("url")
	assert.Equal(t, "/media/a.png", url)
}

func TestSelectSize_WithoutIDIsNoOp(t *testing.T) {
	b := New(Config{Library: &fakeLibrary{}})
	b.SelectSize(context.Background(), "medium")
	assert.False(t, b.HasImage())
}

func TestUpdateAlignment(t *testing.T) {
	b := New(Config{})

	b.UpdateAlignment("wide")
	align, _ := b.Attributes().String("align")
	assert.Equal(t, "wide", align)

	b.UpdateAlignment("diagonal")
	align, _ = b.Attributes().String("align")
	assert.Equal(t, "wide", align, "invalid alignment ignored")
}

func TestUpdateDimensions_AndReset(t *testing.T) {
	b := New(Config{})

	b.UpdateDimensions(640, 480)
	w, _ := b.Attributes().Int("width")
	assert.Equal(t, 640, w)

	b.UpdateDimensions(0, 0)
	_, ok := b.Attributes().Int("width")
	assert.False(t, ok, "non-positive dimensions reset to natural size")
	slug, _ := b.Attributes().String("sizeSlug")
	assert.Equal(t, media.SlugFull, slug)
}

func TestConstrainToWidth(t *testing.T) {
	b := New(Config{})
	b.SetAttributes(blocks.Attributes{"width": 400, "height": 300})

	b.ConstrainToWidth(200)

	w, _ := b.Attributes().Int("width")
	h, _ := b.Attributes().Int("height")
	assert.Equal(t, 200, w)
	assert.Equal(t, 150, h)
}

func TestSetCaption(t *testing.T) {
	b := New(Config{})

	b.SetCaption("a sunset")
	caption, _ := b.Attributes().String("caption")
	assert.Equal(t, "a sunset", caption)

	b.SetCaption("")
	_, ok := b.Attributes().String("caption")
	assert.False(t, ok)
}

func TestRemoveImage_FocusFallsBackToCaption(t *testing.T) {
	var focused []blocks.FocusDescriptor
	b := New(Config{
		SetFocus: func(fd blocks.FocusDescriptor) { focused = append(focused, fd) },
	})
	b.SetAttributes(blocks.Attributes{"id": int64(7), "url": "a.png", "caption": "keep me"})
	b.SetFocused(true)

	b.RemoveImage()

	assert.False(t, b.HasImage())
	caption, _ := b.Attributes().String("caption")
	assert.Equal(t, "keep me", caption)
	require.Len(t, focused, 1)
	assert.Equal(t, FocusCaption, focused[0].Target)
}

func TestRemoveImage_UnfocusedDoesNotSteal(t *testing.T) {
	var focused []blocks.FocusDescriptor
	b := New(Config{
		SetFocus: func(fd blocks.FocusDescriptor) { focused = append(focused, fd) },
	})
	b.SetAttributes(blocks.Attributes{"url": "a.png"})

	b.RemoveImage()

	assert.Empty(t, focused)
}
