package web

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pghd/records-dashboard/internal/core/domain"
	"github.com/pghd/records-dashboard/internal/core/ports"
	"github.com/pghd/records-dashboard/internal/web/handler"
	"github.com/pghd/records-dashboard/internal/web/middleware"
)

// Deps carries everything the router wires together.
type Deps struct {
	Auth    ports.AuthService
	Doctor  ports.DoctorService
	Patient ports.PatientService
	Cookie  middleware.SessionCookie
	// Redis is nil when the in-memory session store is in use; the
	// readiness probe then skips it.
	Redis      *redis.Client
	BackendURL string
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pghd_dashboard"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookie)
	doctorHandler := handler.NewDoctorHandler(deps.Doctor)
	patientHandler := handler.NewPatientHandler(deps.Patient)

	// --- Public routes ---
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.GET("/logout", authHandler.Logout)

	// --- Protected routes ---
	guarded := middleware.RequireAuth(deps.Auth, deps.Cookie)

	e.GET("/", authHandler.Root, guarded)

	doctor := e.Group("/doctor-dashboard", guarded, middleware.RequireRole(domain.RoleDoctor))
	doctor.GET("", doctorHandler.Dashboard)
	doctor.POST("/request", doctorHandler.RequestAccess)
	doctor.GET("/patients/:address", doctorHandler.PatientHistory)

	patient := e.Group("/patient-dashboard", guarded, middleware.RequireRole(domain.RolePatient))
	patient.GET("", patientHandler.Dashboard)
	patient.POST("/records", patientHandler.SubmitVitals)
	patient.POST("/approve", patientHandler.Approve)
	patient.POST("/revoke", patientHandler.Revoke)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.BackendURL)

	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/healthz/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Catch-all ---
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Render(http.StatusNotFound, "notfound", nil)
	})

	return e, nil
}
