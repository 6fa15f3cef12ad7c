package middleware

import (
	"context"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/progedu/secretboard/internal/domain"
)

const trackingMaxAge = 24 * time.Hour

// TrackingMiddleware issues the per-visitor attribution cookie before
// method dispatch. The identifier is not a credential: an existing
// cookie is left untouched, expiry included.
type TrackingMiddleware struct{}

func NewTrackingMiddleware() *TrackingMiddleware {
	return &TrackingMiddleware{}
}

func (m *TrackingMiddleware) Track(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var trackingID string
		if cookie, err := c.Cookie(domain.TrackingCookieKey); err == nil && cookie.Value != "" {
			trackingID = cookie.Value
		} else {
			trackingID = strconv.FormatInt(rand.Int64(), 10)
			c.SetCookie(&http.Cookie{
				Name:    domain.TrackingCookieKey,
				Value:   trackingID,
				Path:    "/",
				Expires: time.Now().Add(trackingMaxAge),
			})
		}

		ctx := context.WithValue(c.Request().Context(), domain.TrackingIDCtxKey, trackingID)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
