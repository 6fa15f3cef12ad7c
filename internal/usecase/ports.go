package usecase

import (
	"context"

	"github.com/progedu/secretboard"
	"github.com/progedu/secretboard/internal/domain"
)

// PostRepository defines storage operations for posts.
type PostRepository interface {
	List(ctx context.Context) ([]domain.Post, error)
	Create(ctx context.Context, content, trackingCookie, postedBy string) (domain.Post, error)
	Find(ctx context.Context, id uint) (domain.Post, error)
	Delete(ctx context.Context, post domain.Post) error
}

// EventPublisher broadcasts board events to realtime subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event secretboard.Event) error
}
