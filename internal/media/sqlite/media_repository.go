package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/porkengine/gutenberg/internal/media"
)

// mediaColumns is the list of columns to select for media queries.
const mediaColumns = `id, guid, url, alt, mime, width, height, sizes,
	created_at, updated_at, deleted_at`

// mediaRepository implements media.Repository using SQLite.
type mediaRepository struct {
	db *sql.DB
}

// NewMediaRepository creates a media.Repository backed by db.
func NewMediaRepository(db *sql.DB) media.Repository {
	return &mediaRepository{db: db}
}

// Ensure mediaRepository implements media.Repository.
var _ media.Repository = (*mediaRepository)(nil)

// scanMedia scans a row into a MediaModel.
func scanMedia(scanner interface{ Scan(...any) error }) (*MediaModel, error) {
	var model MediaModel
	err := scanner.Scan(
		&model.ID, &model.GUID, &model.URL, &model.Alt, &model.Mime,
		&model.Width, &model.Height, &model.Sizes,
		&model.CreatedAt, &model.UpdatedAt, &model.DeletedAt,
	)
	return &model, err
}

// Save persists a media item.
// For new items (ID == 0), inserts a new row and sets the item ID.
// For existing items (ID > 0), updates the existing row.
func (r *mediaRepository) Save(item *media.Item) error {
	model := toMediaModel(item)

	if item.ID == 0 {
		result, err := r.db.Exec(
			`INSERT INTO media_items (
				guid, url, alt, mime, width, height, sizes, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			model.GUID, model.URL, model.Alt, model.Mime,
			model.Width, model.Height, model.Sizes,
			model.CreatedAt, model.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert media item: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		item.ID = id
		return nil
	}

	_, err := r.db.Exec(
		`UPDATE media_items SET
			url = ?, alt = ?, mime = ?, width = ?, height = ?, sizes = ?, updated_at = ?
		WHERE id = ?`,
		model.URL, model.Alt, model.Mime, model.Width, model.Height,
		model.Sizes, model.UpdatedAt, model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update media item: %w", err)
	}
	return nil
}

// FindByID retrieves a media item by id.
// Returns media.NotFoundError if no matching item exists.
// Soft-deleted items are not returned.
func (r *mediaRepository) FindByID(id int64) (*media.Item, error) {
	row := r.db.QueryRow(
		`SELECT `+mediaColumns+` FROM media_items WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	model, err := scanMedia(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &media.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find media item: %w", err)
	}
	return model.toDomain(), nil
}

// Delete soft-deletes a media item.
func (r *mediaRepository) Delete(id int64) error {
	_, err := r.db.Exec(
		`UPDATE media_items SET deleted_at = unixepoch() WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete media item: %w", err)
	}
	return nil
}

// List returns every live media item, newest first.
func (r *mediaRepository) List() ([]*media.Item, error) {
	rows, err := r.db.Query(
		`SELECT ` + mediaColumns + ` FROM media_items WHERE deleted_at IS NULL ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list media items: %w", err)
	}
	defer rows.Close()

	var items []*media.Item
	for rows.Next() {
		model, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan media item: %w", err)
		}
		items = append(items, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate media items: %w", err)
	}
	return items, nil
}
