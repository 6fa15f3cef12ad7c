package view

import (
	"strings"
	"testing"

	"github.com/progedu/secretboard/internal/domain"
)

func TestRenderFeedNewlines(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	posts := []domain.Post{{ID: 1, Content: "a\nb", PostedBy: "alice"}}
	html, err := r.RenderFeed(posts, domain.Anonymous())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(html, "a<br>b") {
		t.Fatalf("expected newline rendered as <br>, got: %s", html)
	}
	if posts[0].Content != "a\nb" {
		t.Fatalf("render must not mutate the post, got %q", posts[0].Content)
	}
}

func TestRenderFeedEscapesContent(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	posts := []domain.Post{{ID: 1, Content: "<script>alert(1)</script>", PostedBy: "alice"}}
	html, err := r.RenderFeed(posts, domain.Anonymous())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if strings.Contains(html, "<script>") {
		t.Fatalf("content must be escaped, got: %s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped markup, got: %s", html)
	}
}

func TestRenderFeedDeleteControl(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	posts := []domain.Post{{ID: 7, Content: "x", PostedBy: "alice"}}

	html, err := r.RenderFeed(posts, domain.Named("alice"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, `action="/posts/delete"`) {
		t.Fatalf("author should see the delete control")
	}

	html, err = r.RenderFeed(posts, domain.Named("bob"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(html, `action="/posts/delete"`) {
		t.Fatalf("non-owner should not see the delete control")
	}

	html, err = r.RenderFeed(posts, domain.Admin("root"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, `action="/posts/delete"`) {
		t.Fatalf("admin should see the delete control")
	}
}

func TestRenderFeedAnonymousAuthor(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	posts := []domain.Post{{ID: 1, Content: "x"}}
	html, err := r.RenderFeed(posts, domain.Anonymous())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "匿名") {
		t.Fatalf("authorless posts should render as anonymous")
	}
}
