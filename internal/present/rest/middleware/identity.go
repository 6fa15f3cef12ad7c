package middleware

import (
	"context"
	"slices"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/progedu/secretboard/internal/domain"
)

var tracer = otel.Tracer("identity")

// IdentityMiddleware resolves the requester from the header set by the
// fronting auth proxy. The header value is trusted as-is; this server
// never authenticates on its own.
type IdentityMiddleware struct {
	adminUsers []string
}

func NewIdentityMiddleware(adminUsers []string) *IdentityMiddleware {
	return &IdentityMiddleware{
		adminUsers: adminUsers,
	}
}

func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Identity.Middleware.Resolve")
		defer span.End()

		name := c.Request().Header.Get(domain.RequesterHeader)

		requester := domain.Anonymous()
		switch {
		case name == "":
			// 未ログインは匿名扱い
		case slices.Contains(m.adminUsers, name):
			requester = domain.Admin(name)
		default:
			requester = domain.Named(name)
		}
		span.SetAttributes(attribute.String("Requester", requester.String()))

		ctx = context.WithValue(ctx, domain.RequesterCtxKey, requester)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
