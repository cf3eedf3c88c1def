package folio

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags
	Author      string // Person name for JSON-LD

	Addr         string // Listen address (default ":3000")
	DatabasePath string // Contact inbox SQLite path (default "data/folio.db")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	Contentful ContentfulConfig
	CloudName  string // Image CDN cloud name (default "demo")
}

// ContentfulConfig holds the content store credentials.
type ContentfulConfig struct {
	SpaceID      string
	AccessToken  string // delivery token
	PreviewToken string // enables draft reads for admins when set
	Environment  string // default "master"
	Preview      bool   // serve drafts to every visitor
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.Contentful.Environment == "" {
		c.Contentful.Environment = "master"
	}
	if c.CloudName == "" {
		c.CloudName = "demo"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger sets the application logger (default: no output).
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.Logger = l
		}
	}
}

// WithRegistry sets the registry metrics are recorded in and served from.
func WithRegistry(r *prometheus.Registry) Option {
	return func(a *App) {
		if r != nil {
			a.registry = r
		}
	}
}

// WithContent replaces the content store backed sources. preview may be nil.
func WithContent(live, preview ContentSource) Option {
	return func(a *App) {
		a.live = live
		a.preview = preview
	}
}
