package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/progedu/secretboard/internal/domain"
)

const (
	feedCacheKey        = "secretboard:feed"
	feedCacheExpiration = 60 // seconds
)

// CachedPostRepository serves the feed listing from memcached and
// falls back to the wrapped repository on a miss. Writes drop the
// cached listing, so a GET racing a write may observe either state
// for up to one cache window. The feed is advisory; memcached being
// down degrades to plain repository reads.
type CachedPostRepository struct {
	inner *PostRepository
	mc    *memcache.Client
}

func NewCachedPostRepository(inner *PostRepository, mc *memcache.Client) *CachedPostRepository {
	return &CachedPostRepository{
		inner: inner,
		mc:    mc,
	}
}

func (r *CachedPostRepository) List(ctx context.Context) ([]domain.Post, error) {
	item, err := r.mc.Get(feedCacheKey)
	if err == nil {
		var posts []domain.Post
		if err := json.Unmarshal(item.Value, &posts); err == nil {
			return posts, nil
		}
	} else if err != memcache.ErrCacheMiss {
		slog.WarnContext(ctx, "memcached get failed",
			slog.String("error", err.Error()),
			slog.String("module", "repository"),
		)
	}

	posts, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(posts); err == nil {
		if err := r.mc.Set(&memcache.Item{
			Key:        feedCacheKey,
			Value:      encoded,
			Expiration: feedCacheExpiration,
		}); err != nil {
			slog.WarnContext(ctx, "memcached set failed",
				slog.String("error", err.Error()),
				slog.String("module", "repository"),
			)
		}
	}

	return posts, nil
}

func (r *CachedPostRepository) Create(ctx context.Context, content, trackingCookie, postedBy string) (domain.Post, error) {
	post, err := r.inner.Create(ctx, content, trackingCookie, postedBy)
	if err != nil {
		return domain.Post{}, err
	}
	r.invalidate(ctx)
	return post, nil
}

func (r *CachedPostRepository) Find(ctx context.Context, id uint) (domain.Post, error) {
	return r.inner.Find(ctx, id)
}

func (r *CachedPostRepository) Delete(ctx context.Context, post domain.Post) error {
	if err := r.inner.Delete(ctx, post); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedPostRepository) invalidate(ctx context.Context) {
	err := r.mc.Delete(feedCacheKey)
	if err != nil && err != memcache.ErrCacheMiss {
		slog.WarnContext(ctx, "memcached delete failed",
			slog.String("error", err.Error()),
			slog.String("module", "repository"),
		)
	}
}
