package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pghd/records-dashboard/internal/core/domain"
	"github.com/pghd/records-dashboard/internal/core/ports"
)

// Context keys set by the guards below.
const (
	CtxSessionID = "sid"
	CtxRole      = "role"
)

// RequireAuth gates protected views. It resolves the user's role through the
// backend on every request; an absent cookie resolves to unauthenticated
// without a network call, and any resolution failure redirects to login
// rather than erroring.
func RequireAuth(auth ports.AuthService, cookie SessionCookie) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := cookie.Read(c)
			if sid == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			role, err := auth.Resolve(c.Request().Context(), sid)
			if err != nil {
				cookie.Clear(c)
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			c.Set(CtxSessionID, sid)
			c.Set(CtxRole, role)
			return next(c)
		}
	}
}

// RequireRole keeps users on their own dashboard: a mismatched role is sent
// to the dashboard their role resolves to instead of a bare 403.
func RequireRole(allowed domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if role != allowed {
				return c.Redirect(http.StatusSeeOther, role.DashboardPath())
			}
			return next(c)
		}
	}
}

// SessionID returns the session id set by RequireAuth.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(CtxSessionID).(string)
	return sid
}

// Role returns the role set by RequireAuth.
func Role(c echo.Context) domain.Role {
	role, _ := c.Get(CtxRole).(domain.Role)
	return role
}
