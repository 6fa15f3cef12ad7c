package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/progedu/secretboard"
	"github.com/progedu/secretboard/internal/domain"
)

var tracer = otel.Tracer("post")

type PostUsecase struct {
	repo   PostRepository
	signal EventPublisher
}

func NewPostUsecase(repo PostRepository, signal EventPublisher) *PostUsecase {
	return &PostUsecase{
		repo:   repo,
		signal: signal,
	}
}

// List returns all posts, newest id first.
func (uc *PostUsecase) List(ctx context.Context) ([]domain.Post, error) {
	return uc.repo.List(ctx)
}

// Create persists a new post attributed to the requester and the
// tracking identifier active on this request. Content is stored as
// submitted; no length or emptiness validation is performed.
func (uc *PostUsecase) Create(ctx context.Context, content, trackingCookie string, requester domain.Identity) (domain.Post, error) {
	post, err := uc.repo.Create(ctx, content, trackingCookie, requester.PostedBy())
	if err != nil {
		return domain.Post{}, err
	}

	uc.publish(ctx, secretboard.Event{
		Type:     secretboard.EventPostCreated,
		PostID:   post.ID,
		PostedBy: post.PostedBy,
		Occurred: time.Now(),
	})

	return post, nil
}

// Delete removes a post when the requester owns it or is an admin.
// An unauthorized request leaves the post untouched and returns
// ErrForbidden; the caller decides whether to surface that.
func (uc *PostUsecase) Delete(ctx context.Context, id uint, requester domain.Identity) error {
	ctx, span := tracer.Start(ctx, "Post.Usecase.Delete")
	defer span.End()

	post, err := uc.repo.Find(ctx, id)
	if err != nil {
		return err
	}

	if !requester.CanDelete(post.PostedBy) {
		return domain.ForbiddenError{Action: "delete"}
	}

	if err := uc.repo.Delete(ctx, post); err != nil {
		return err
	}

	uc.publish(ctx, secretboard.Event{
		Type:     secretboard.EventPostDeleted,
		PostID:   post.ID,
		PostedBy: post.PostedBy,
		Occurred: time.Now(),
	})

	return nil
}

// publish is best effort: the feed is advisory and a lost event never
// fails the write that produced it.
func (uc *PostUsecase) publish(ctx context.Context, event secretboard.Event) {
	if uc.signal == nil {
		return
	}
	if err := uc.signal.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish board event",
			slog.String("error", err.Error()),
			slog.String("module", "usecase"),
		)
	}
}
