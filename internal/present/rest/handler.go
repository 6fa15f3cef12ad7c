package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/progedu/secretboard"
	"github.com/progedu/secretboard/internal/domain"
	"github.com/progedu/secretboard/internal/present/rest/presenter"
	"github.com/progedu/secretboard/internal/usecase"
)

// FeedRenderer renders the post listing for a viewer.
type FeedRenderer interface {
	RenderFeed(posts []domain.Post, viewer domain.Identity) (string, error)
}

// ViewRecorder attributes feed views to tracking identifiers.
type ViewRecorder interface {
	RecordView(ctx context.Context, trackingID string) error
}

// EventStream delivers board events for realtime subscribers.
type EventStream interface {
	Realtime(ctx context.Context, output chan<- secretboard.Event)
}

type Handler struct {
	post      *usecase.PostUsecase
	renderer  FeedRenderer
	analytics ViewRecorder
	signal    EventStream
}

func NewHandler(
	post *usecase.PostUsecase,
	renderer FeedRenderer,
	analytics ViewRecorder,
	signal EventStream,
) *Handler {
	return &Handler{
		post:      post,
		renderer:  renderer,
		analytics: analytics,
		signal:    signal,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// メソッド判定はハンドラ側で行う（GET/POST以外は400を返すため）
	e.Any("/posts", h.HandlePosts)
	e.Any("/posts/delete", h.HandleDeletePost)
	e.GET("/logout", h.handleLogout)
	e.GET("/realtime", h.handleRealtime)
	e.RouteNotFound("/*", h.handleNotFound)
}

// HandlePosts dispatches the feed endpoint: GET lists, POST creates,
// anything else is a bad request and never reaches the store.
func (h *Handler) HandlePosts(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodGet:
		return h.showFeed(c)
	case http.MethodPost:
		return h.createPost(c)
	default:
		return presenter.BadRequest(c, "unsupported method")
	}
}

func (h *Handler) showFeed(c echo.Context) error {
	ctx := c.Request().Context()
	requester := domain.RequesterFromContext(ctx)
	trackingID := domain.TrackingIDFromContext(ctx)

	posts, err := h.post.List(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}

	html, err := h.renderer.RenderFeed(posts, requester)
	if err != nil {
		return presenter.InternalError(c, err)
	}

	slog.InfoContext(ctx, "feed viewed",
		slog.String("user", requester.String()),
		slog.String("trackingId", trackingID),
		slog.String("remoteAddress", c.RealIP()),
		slog.String("userAgent", c.Request().UserAgent()),
		slog.String("module", "rest"),
	)

	if h.analytics != nil {
		if err := h.analytics.RecordView(ctx, trackingID); err != nil {
			slog.WarnContext(ctx, "failed to record view",
				slog.String("error", err.Error()),
				slog.String("module", "rest"),
			)
		}
	}

	return presenter.OK(c, html)
}

func (h *Handler) createPost(c echo.Context) error {
	ctx := c.Request().Context()
	requester := domain.RequesterFromContext(ctx)
	trackingID := domain.TrackingIDFromContext(ctx)

	content, err := readFormField(c.Request().Body, "content")
	if err != nil {
		if errors.Is(err, domain.ErrMalformedBody) {
			return presenter.BadRequest(c, err.Error())
		}
		return presenter.InternalError(c, err)
	}

	slog.InfoContext(ctx, "post submitted",
		slog.String("content", content),
		slog.String("module", "rest"),
	)

	if _, err := h.post.Create(ctx, content, trackingID, requester); err != nil {
		return presenter.InternalError(c, err)
	}

	return presenter.SeeOther(c)
}

// HandleDeletePost removes a post when the requester owns it or is an
// admin. An unauthorized request mutates nothing but still redirects
// as if it had succeeded, matching the feed's write flow.
func (h *Handler) HandleDeletePost(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return presenter.BadRequest(c, "unsupported method")
	}

	ctx := c.Request().Context()
	requester := domain.RequesterFromContext(ctx)

	idValue, err := readFormField(c.Request().Body, "id")
	if err != nil {
		if errors.Is(err, domain.ErrMalformedBody) {
			return presenter.BadRequest(c, err.Error())
		}
		return presenter.InternalError(c, err)
	}

	id, err := strconv.ParseUint(idValue, 10, 64)
	if err != nil {
		return presenter.BadRequest(c, domain.MalformedBodyError{Field: "id"}.Error())
	}

	err = h.post.Delete(ctx, uint(id), requester)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, "post not found")
	case errors.Is(err, domain.ErrForbidden):
		return presenter.SeeOther(c)
	case err != nil:
		return presenter.InternalError(c, err)
	}

	slog.InfoContext(ctx, "post deleted",
		slog.String("user", requester.String()),
		slog.String("remoteAddress", c.RealIP()),
		slog.String("userAgent", c.Request().UserAgent()),
		slog.String("module", "rest"),
	)

	return presenter.SeeOther(c)
}

func (h *Handler) handleLogout(c echo.Context) error {
	return presenter.Logout(c)
}

func (h *Handler) handleNotFound(c echo.Context) error {
	return presenter.NotFound(c, "page not found")
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) handleRealtime(c echo.Context) error {
	if h.signal == nil {
		return presenter.NotFound(c, "realtime disabled")
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer func() {
		ws.Close()
	}()

	ctx := c.Request().Context()

	output := make(chan secretboard.Event)
	go h.signal.Realtime(ctx, output)

	quit := make(chan struct{})

	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {

				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}

				quit <- struct{}{}
				break
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			err := ws.WriteJSON(event)
			if err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
