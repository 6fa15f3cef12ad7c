package view

import (
	_ "embed"
	"html/template"
	"strings"
	"time"

	"github.com/progedu/secretboard/internal/domain"
)

//go:embed posts.html
var postsTemplate string

// Renderer is a pure function from a post listing and a viewer to the
// feed document. It owns the newline-to-<br> transform; stored content
// is never modified.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("posts").Funcs(template.FuncMap{
		"nl2br": nl2br,
	}).Parse(postsTemplate)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

type feedData struct {
	Viewer string
	Posts  []feedPost
}

type feedPost struct {
	ID        uint
	Content   string
	PostedBy  string
	CreatedAt time.Time
	CanDelete bool
}

func (r *Renderer) RenderFeed(posts []domain.Post, viewer domain.Identity) (string, error) {
	data := feedData{
		Viewer: viewer.String(),
		Posts:  make([]feedPost, 0, len(posts)),
	}
	for _, post := range posts {
		data.Posts = append(data.Posts, feedPost{
			ID:        post.ID,
			Content:   post.Content,
			PostedBy:  post.PostedBy,
			CreatedAt: post.CreatedAt,
			CanDelete: viewer.CanDelete(post.PostedBy),
		})
	}

	var buf strings.Builder
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// nl2br escapes the content and then turns embedded newlines into line
// breaks, so the break markup survives escaping.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
