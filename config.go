package tutorsite

import "github.com/npatters/tutorsite/views"

// Config holds all configuration for the site.
type Config struct {
	Site views.SiteConfig // branding passed to every template

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/portfolio.db")

	SessionSecret string // Required: session/flash signing secret (SECRET_KEY)
	CookieSecure  bool   // Set true for HTTPS

	SMTP SMTPConfig // Outbound mail transport; checked at send time, not startup
}

func (c *Config) setDefaults() {
	if c.Site.Name == "" {
		c.Site.Name = "Portfolio"
	}
	if c.Site.URL == "" {
		c.Site.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/portfolio.db"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithMailer replaces the SMTP mailer, mainly for tests.
func WithMailer(m Mailer) Option {
	return func(a *App) {
		a.Mailer = m
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithCustomRoutes registers additional routes on the Echo instance before
// the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
