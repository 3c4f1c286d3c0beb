package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

// errorView feeds the generic error page.
type errorView struct {
	Status  int
	Message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler for a page-serving
// app: 404s render the not-found page, dead sessions bounce to login, and
// everything unexpected is logged and rendered as a generic error page.
// No failure is fatal to the process.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		switch {
		case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrSessionExpired):
			_ = c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		code := http.StatusInternalServerError
		message := "Something went wrong"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprintf("%v", he.Message)
		}

		if code == http.StatusNotFound {
			_ = c.Render(http.StatusNotFound, "notfound", nil)
			return
		}

		if code >= 500 {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
			message = "Something went wrong"
		}

		_ = c.Render(code, "error", errorView{Status: code, Message: message})
	}
}
