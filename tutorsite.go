// Package tutorsite is a personal-portfolio web application built with Go,
// Echo, and templ: a contact page, a tutoring-booking form, and a blog
// listing, backed by SQLite with outbound email notifications.
package tutorsite

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// App wires together the store, mailer, handlers, and middleware. All shared
// dependencies are constructed here and injected into handlers; there is no
// package-level database or mail state.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Mailer Mailer

	validate      *validator.Validate
	submitLimiter *SubmitLimiter
	customRoutes  []func(*App)
	staticDir     string
}

// New creates a new App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, mailer, middleware, and routes, then
// starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// init builds everything Start needs without binding a listener, so tests
// can drive handlers directly.
func (a *App) init() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("tutorsite: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("tutorsite: init store: %w", err)
	}
	a.Store = store

	if a.Mailer == nil {
		a.Mailer = NewSMTPMailer(a.Config.SMTP)
	}

	a.validate = newValidator()
	a.submitLimiter = NewSubmitLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.POST("/", a.handleContactSubmit)
	e.GET("/tutoring", a.handleTutoring)
	e.POST("/tutoring", a.handleBookingSubmit)
	e.GET("/blog", a.handleBlog)

	// Admin surface; no authentication, single-operator deployment.
	e.GET("/admin/bookings", a.handleAdminBookings)
	e.POST("/admin/bookings/:id/confirm", a.handleBookingConfirm)
	e.POST("/admin/bookings/:id/cancel", a.handleBookingCancel)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		fmt.Fprintf(os.Stderr, "tutorsite: required environment variable %s is not set\n", key)
		os.Exit(1)
	}
	return v
}
