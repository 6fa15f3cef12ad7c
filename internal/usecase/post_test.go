package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/progedu/secretboard"
	"github.com/progedu/secretboard/internal/domain"
)

type mockPostRepo struct {
	posts   []domain.Post
	created []domain.Post
	deleted []uint
	nextID  uint
}

func (m *mockPostRepo) List(ctx context.Context) ([]domain.Post, error) {
	return m.posts, nil
}

func (m *mockPostRepo) Create(ctx context.Context, content, trackingCookie, postedBy string) (domain.Post, error) {
	m.nextID++
	post := domain.Post{
		ID:             m.nextID,
		Content:        content,
		TrackingCookie: trackingCookie,
		PostedBy:       postedBy,
	}
	m.posts = append([]domain.Post{post}, m.posts...)
	m.created = append(m.created, post)
	return post, nil
}

func (m *mockPostRepo) Find(ctx context.Context, id uint) (domain.Post, error) {
	for _, post := range m.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return domain.Post{}, domain.NotFoundError{Resource: "post"}
}

func (m *mockPostRepo) Delete(ctx context.Context, post domain.Post) error {
	remaining := make([]domain.Post, 0, len(m.posts))
	for _, p := range m.posts {
		if p.ID != post.ID {
			remaining = append(remaining, p)
		}
	}
	m.posts = remaining
	m.deleted = append(m.deleted, post.ID)
	return nil
}

type mockPublisher struct {
	events []secretboard.Event
}

func (m *mockPublisher) Publish(ctx context.Context, event secretboard.Event) error {
	m.events = append(m.events, event)
	return nil
}

func TestPostUsecaseCreate(t *testing.T) {
	repo := &mockPostRepo{}
	pub := &mockPublisher{}
	uc := NewPostUsecase(repo, pub)

	post, err := uc.Create(context.Background(), "hello", "12345", domain.Named("alice"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if post.Content != "hello" || post.TrackingCookie != "12345" || post.PostedBy != "alice" {
		t.Fatalf("unexpected post: %+v", post)
	}
	if len(pub.events) != 1 || pub.events[0].Type != secretboard.EventPostCreated {
		t.Fatalf("expected a %s event, got %+v", secretboard.EventPostCreated, pub.events)
	}
}

func TestPostUsecaseCreateAnonymous(t *testing.T) {
	repo := &mockPostRepo{}
	uc := NewPostUsecase(repo, nil)

	post, err := uc.Create(context.Background(), "hi", "67890", domain.Anonymous())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.PostedBy != "" {
		t.Fatalf("anonymous post must not carry an author, got %q", post.PostedBy)
	}
}

func TestPostUsecaseDeleteByAuthor(t *testing.T) {
	repo := &mockPostRepo{}
	pub := &mockPublisher{}
	uc := NewPostUsecase(repo, pub)

	post, _ := uc.Create(context.Background(), "mine", "1", domain.Named("alice"))
	pub.events = nil

	if err := uc.Delete(context.Background(), post.ID, domain.Named("alice")); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != post.ID {
		t.Fatalf("expected post %d deleted, got %v", post.ID, repo.deleted)
	}
	if len(pub.events) != 1 || pub.events[0].Type != secretboard.EventPostDeleted {
		t.Fatalf("expected a %s event, got %+v", secretboard.EventPostDeleted, pub.events)
	}
}

func TestPostUsecaseDeleteByAdmin(t *testing.T) {
	repo := &mockPostRepo{}
	uc := NewPostUsecase(repo, nil)

	post, _ := uc.Create(context.Background(), "theirs", "1", domain.Named("alice"))

	if err := uc.Delete(context.Background(), post.ID, domain.Admin("root")); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected one deletion, got %v", repo.deleted)
	}
}

func TestPostUsecaseDeleteUnauthorized(t *testing.T) {
	repo := &mockPostRepo{}
	uc := NewPostUsecase(repo, nil)

	post, _ := uc.Create(context.Background(), "not yours", "1", domain.Named("alice"))

	err := uc.Delete(context.Background(), post.ID, domain.Named("bob"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("unauthorized delete must not mutate, got %v", repo.deleted)
	}
	if _, err := repo.Find(context.Background(), post.ID); err != nil {
		t.Fatalf("post should still be retrievable: %v", err)
	}
}

func TestPostUsecaseDeleteAnonymousForbidden(t *testing.T) {
	repo := &mockPostRepo{}
	uc := NewPostUsecase(repo, nil)

	// Anonymous posts carry no author, so only an admin may remove them.
	post, _ := uc.Create(context.Background(), "nameless", "1", domain.Anonymous())

	err := uc.Delete(context.Background(), post.ID, domain.Anonymous())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if err := uc.Delete(context.Background(), post.ID, domain.Admin("root")); err != nil {
		t.Fatalf("admin delete of anonymous post failed: %v", err)
	}
}

func TestPostUsecaseDeleteMissing(t *testing.T) {
	repo := &mockPostRepo{}
	uc := NewPostUsecase(repo, nil)

	err := uc.Delete(context.Background(), 42, domain.Admin("root"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
