package media

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/porkengine/gutenberg/internal/cachemanager"
	"github.com/porkengine/gutenberg/internal/log"
)

// DefaultTTL is how long metadata stays cached before re-reading from the
// repository.
const DefaultTTL = 10 * time.Minute

// Service is the media library frontend: cached metadata reads plus upload
// registration. It implements Uploader and Reader.
type Service struct {
	repo    Repository
	manager cachemanager.CacheManager[string, *Item]
	cache   *cachemanager.ReadThroughCache[string, *Item, int64]
	baseURL string
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTTL overrides the metadata cache TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithBaseURL sets the URL prefix for registered uploads.
func WithBaseURL(base string) Option {
	return func(s *Service) { s.baseURL = base }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service over repo with an in-memory metadata cache.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		baseURL: "/media",
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.manager = cachemanager.NewInMemoryCacheManager[string, *Item](
		"media-metadata", s.ttl, cachemanager.DefaultCleanupInterval)
	s.cache = cachemanager.NewReadThroughCache[string, *Item, int64](
		s.manager,
		func(ctx context.Context, id int64) (*Item, error) {
			return s.repo.FindByID(id)
		},
		false,
	)
	return s
}

var (
	_ Reader   = (*Service)(nil)
	_ Uploader = (*Service)(nil)
)

func cacheKey(id int64) string {
	return fmt.Sprintf("media:%d", id)
}

// ItemByID returns media metadata, served from cache when fresh.
func (s *Service) ItemByID(ctx context.Context, id int64) (*Item, error) {
	return s.cache.Get(ctx, cacheKey(id), id, s.ttl)
}

// Upload registers the given files as media items and reports the result
// through fn. Failures abort the whole batch; nothing is partially
// registered as far as the callback can tell.
func (s *Service) Upload(ctx context.Context, files []File, fn UploadFunc) {
	items := make([]*Item, 0, len(files))
	for _, f := range files {
		url := path.Join(s.baseURL, f.Name)
		now := s.now()
		item := &Item{
			GUID:      uuid.NewString(),
			URL:       url,
			Mime:      f.Mime,
			Width:     f.Width,
			Height:    f.Height,
			Sizes:     BuildSizes(url, f.Width, f.Height),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Save(item); err != nil {
			log.ErrorErr(log.CatMedia, "upload registration failed", err, "file", f.Name)
			fn(nil, fmt.Errorf("registering %s: %w", f.Name, err))
			return
		}
		items = append(items, item)
	}

	log.Info(log.CatMedia, "registered uploads", "count", len(items))
	fn(items, nil)
}

// Save persists an item and invalidates its cached metadata.
func (s *Service) Save(ctx context.Context, item *Item) error {
	item.UpdatedAt = s.now()
	if err := s.repo.Save(item); err != nil {
		return err
	}
	return s.manager.Delete(ctx, cacheKey(item.ID))
}

// Delete removes an item and invalidates its cached metadata.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	return s.manager.Delete(ctx, cacheKey(id))
}

// List returns every media item, bypassing the cache.
func (s *Service) List(ctx context.Context) ([]*Item, error) {
	return s.repo.List()
}
