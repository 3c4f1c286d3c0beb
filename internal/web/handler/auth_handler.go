package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pghd/records-dashboard/internal/core/domain"
	"github.com/pghd/records-dashboard/internal/core/ports"
	"github.com/pghd/records-dashboard/internal/web/middleware"
)

// AuthHandler serves the login and register pages and the logout and
// role-redirect routes.
type AuthHandler struct {
	auth   ports.AuthService
	cookie middleware.SessionCookie
}

func NewAuthHandler(auth ports.AuthService, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Username  string `form:"username" validate:"required"`
	Password  string `form:"password" validate:"required"`
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Email     string `form:"email" validate:"omitempty,email"`
	UserType  int    `form:"user_type" validate:"required,oneof=1 2"`
	Address   string `form:"address" validate:"required"`
}

// loginView / registerView re-render the submitted values on failure so an
// error never clears what the user typed.
type loginView struct {
	Error string
	Form  loginForm
}

type registerView struct {
	Error string
	Form  registerForm
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", loginView{})
}

// Login submits the credentials, persists the session, and navigates to the
// dashboard matching the resolved role.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", loginView{Error: "invalid form submission"})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", loginView{Error: err.Error(), Form: form})
	}

	sid, role, err := h.auth.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		return c.Render(http.StatusUnauthorized, "login", loginView{Error: errMessage(err), Form: form})
	}

	h.cookie.Write(c, sid)
	return c.Redirect(http.StatusSeeOther, role.DashboardPath())
}

// RegisterPage clears any existing session before rendering the form;
// registering while logged in always starts from a clean slate.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	h.dropSession(c)
	return c.Render(http.StatusOK, "register", registerView{})
}

func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register", registerView{Error: "invalid form submission"})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register", registerView{Error: err.Error(), Form: form})
	}

	reg := domain.Registration{
		Username:  form.Username,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		UserType:  domain.Role(form.UserType),
		Address:   form.Address,
	}
	if err := h.auth.Register(c.Request().Context(), reg); err != nil {
		return c.Render(http.StatusBadRequest, "register", registerView{Error: errMessage(err), Form: form})
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// Logout clears all persisted session state and redirects to login.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.dropSession(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// Root sends an authenticated user to the dashboard for their role.
func (h *AuthHandler) Root(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, middleware.Role(c).DashboardPath())
}

func (h *AuthHandler) dropSession(c echo.Context) {
	if sid := h.cookie.Read(c); sid != "" {
		_ = h.auth.Logout(c.Request().Context(), sid)
	}
	h.cookie.Clear(c)
}
