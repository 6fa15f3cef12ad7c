package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// FeedPath is where every successful write redirects back to.
const FeedPath = "/posts"

const logoutPage = `<!DOCTYPE html><html lang="ja"><body>` +
	`<h1>ログアウトしました</h1>` +
	`<a href="/posts">ログイン</a>` +
	`</body></html>`

// OK writes the rendered feed.
func OK(c echo.Context, html string) error {
	return c.HTML(http.StatusOK, html)
}

// SeeOther redirects back to the feed after a write.
func SeeOther(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, FeedPath)
}

func BadRequest(c echo.Context, msg string) error {
	return c.String(http.StatusBadRequest, msg)
}

func NotFound(c echo.Context, msg string) error {
	return c.String(http.StatusNotFound, msg)
}

func InternalError(c echo.Context, err error) error {
	c.Logger().Error(err)
	return c.String(http.StatusInternalServerError, "internal server error")
}

// Logout writes the fixed session-expired page.
func Logout(c echo.Context) error {
	return c.HTML(http.StatusUnauthorized, logoutPage)
}
