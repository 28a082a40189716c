// Package sqlite implements media.Repository over a SQLite database.
package sqlite

import (
	"encoding/json"
	"time"

	"github.com/porkengine/gutenberg/internal/media"
)

// MediaModel represents the database row for the media_items table.
// Fields map directly to SQL columns with Unix timestamps for time values.
type MediaModel struct {
	ID     int64
	GUID   string
	URL    string
	Alt    *string // nullable
	Mime   string
	Width  int
	Height int
	Sizes  *string // nullable, JSON encoded map of size variants

	CreatedAt int64  // Unix timestamp
	UpdatedAt int64  // Unix timestamp
	DeletedAt *int64 // Unix timestamp, nullable
}

// toMediaModel converts a domain Item to a database MediaModel.
func toMediaModel(item *media.Item) *MediaModel {
	m := &MediaModel{
		ID:        item.ID,
		GUID:      item.GUID,
		URL:       item.URL,
		Mime:      item.Mime,
		Width:     item.Width,
		Height:    item.Height,
		CreatedAt: item.CreatedAt.Unix(),
		UpdatedAt: item.UpdatedAt.Unix(),
	}
	if item.Alt != "" {
		alt := item.Alt
		m.Alt = &alt
	}
	if len(item.Sizes) > 0 {
		// Encoding a map of scalars cannot fail.
		encoded, _ := json.Marshal(item.Sizes)
		s := string(encoded)
		m.Sizes = &s
	}
	return m
}

// toDomain converts a database MediaModel to a domain Item.
func (m *MediaModel) toDomain() *media.Item {
	item := &media.Item{
		ID:        m.ID,
		GUID:      m.GUID,
		URL:       m.URL,
		Mime:      m.Mime,
		Width:     m.Width,
		Height:    m.Height,
		CreatedAt: time.Unix(m.CreatedAt, 0),
		UpdatedAt: time.Unix(m.UpdatedAt, 0),
	}
	if m.Alt != nil {
		item.Alt = *m.Alt
	}
	if m.Sizes != nil {
		var sizes map[string]media.SizeVariant
		if err := json.Unmarshal([]byte(*m.Sizes), &sizes); err == nil {
			item.Sizes = sizes
		}
	}
	return item
}
