// Package media provides the editor's media library: metadata for uploaded
// items keyed by a numeric id, including the generated size variants image
// blocks pick from.
package media

import (
	"context"
	"fmt"
	"time"
)

// SizeVariant is one rendition of a media item.
type SizeVariant struct {
	Slug   string
	URL    string
	Width  int
	Height int
}

// Item is a media library entry.
type Item struct {
	ID        int64
	GUID      string
	URL       string
	Alt       string
	Mime      string
	Width     int
	Height    int
	Sizes     map[string]SizeVariant
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Size returns the variant for slug, if present.
func (i *Item) Size(slug string) (SizeVariant, bool) {
	v, ok := i.Sizes[slug]
	return v, ok
}

// File is an incoming upload.
type File struct {
	Name   string
	Mime   string
	Width  int
	Height int
	Data   []byte
}

// NotFoundError indicates no media item exists for the given id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("media item %d not found", e.ID)
}

// Repository persists media items.
type Repository interface {
	// Save inserts the item when ID is zero, assigning it, and updates
	// the existing row otherwise.
	Save(item *Item) error
	// FindByID returns the item or a *NotFoundError.
	FindByID(id int64) (*Item, error)
	Delete(id int64) error
	List() ([]*Item, error)
}

// UploadFunc receives the registered items of an upload, or the error that
// stopped it. Exactly one of items/err is set.
type UploadFunc func(items []*Item, err error)

// Uploader accepts files and reports results through a callback.
type Uploader interface {
	Upload(ctx context.Context, files []File, fn UploadFunc)
}

// Reader resolves media metadata by numeric id.
type Reader interface {
	ItemByID(ctx context.Context, id int64) (*Item, error)
}
