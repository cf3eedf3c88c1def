// Package folio is a portfolio site engine built with Go, Echo, and templ.
// Projects, skills, experience and testimonials are read from a Contentful
// space, images are served through Cloudinary, and a small admin area holds
// the contact inbox and draft previews.
//
// Users provide their own templ templates via the ViewFuncs struct. Any view
// left nil is answered with the page data as JSON instead.
package folio

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/eringen/folio/cloudinary"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/contentful"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages.
type ViewFuncs struct {
	Home           func(page HomePage, meta PageMeta) templ.Component
	Project        func(project content.Project, meta PageMeta) templ.Component
	ContactResult  func(ok bool, message string) templ.Component
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(messages []Message, notice string, preview bool, csrfToken string) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// ContentSource is the read side of the portfolio content.
// *content.Repository implements it.
type ContentSource interface {
	Projects(ctx context.Context) []content.Project
	ProjectBySlug(ctx context.Context, slug string) (content.Project, bool)
	Skills(ctx context.Context) []content.Skill
	Experiences(ctx context.Context) []content.Experience
	Testimonials(ctx context.Context) []content.Testimonial
}

// App is the central folio application. It wires together the content
// sources, the inbox store, handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Views  ViewFuncs
	Logger *zap.Logger

	live           ContentSource
	preview        ContentSource
	registry       *prometheus.Registry
	loginLimiter   *RateLimiter
	contactLimiter *RateLimiter
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a new folio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		Logger:    zap.NewNop(),
		registry:  prometheus.NewRegistry(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the inbox, content sources, middleware, routes, and
// starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr))
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setup() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("folio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store

	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.contactLimiter = NewRateLimiter(3, 10*time.Minute)

	if a.live == nil {
		a.setupContent()
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// setupContent builds the delivery repository and, when a preview token is
// configured, the preview repository. Both share one image builder and one
// set of fetch metrics.
func (a *App) setupContent() {
	cf := a.Config.Contentful
	images := cloudinary.NewFetch(a.Config.CloudName)
	metrics := content.NewMetrics(a.registry)
	logger := a.Logger.Named("content")

	delivery := contentful.NewClient(contentful.Config{
		SpaceID:     cf.SpaceID,
		AccessToken: cf.AccessToken,
		Environment: cf.Environment,
	})
	a.live = content.NewRepository(delivery, images,
		content.WithLogger(logger), content.WithMetrics(metrics))

	if cf.PreviewToken == "" {
		if cf.Preview {
			a.Logger.Warn("preview mode requested without a preview token; serving published content")
		}
		return
	}
	preview := contentful.NewClient(contentful.Config{
		SpaceID:     cf.SpaceID,
		AccessToken: cf.PreviewToken,
		Environment: cf.Environment,
		Host:        contentful.PreviewHost,
	})
	a.preview = content.NewRepository(preview, images,
		content.WithLogger(logger.With(zap.Bool("preview", true))), content.WithMetrics(metrics))
	if cf.Preview {
		a.live = a.preview
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/metrics", a.metricsHandler())

	// Public routes
	e.GET("/", a.handleHome)
	e.GET("/projects/:slug/", a.handleProject)
	e.POST("/contact/", a.handleContact)

	// JSON API
	api := e.Group("/api")
	api.GET("/projects", a.handleAPIProjects)
	api.GET("/projects/:slug", a.handleAPIProject)
	api.GET("/skills", a.handleAPISkills)
	api.GET("/experiences", a.handleAPIExperiences)
	api.GET("/testimonials", a.handleAPITestimonials)

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.DELETE("/admin/messages/:id/", a.handleAdminDeleteMessage)
}

// source picks the content source for the request: drafts for a signed-in
// admin when preview is available, published content otherwise.
func (a *App) source(c echo.Context) (ContentSource, bool) {
	if a.preview != nil && (a.live == a.preview || IsAdmin(c)) {
		return a.preview, true
	}
	return a.live, false
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
