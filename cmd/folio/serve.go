package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/eringen/folio"
)

// ContentfulFlags are the space credentials shared by the commands.
type ContentfulFlags struct {
	SpaceID     string `name:"space-id" env:"CONTENTFUL_SPACE_ID" help:"Contentful space ID."`
	AccessToken string `name:"access-token" env:"CONTENTFUL_ACCESS_TOKEN" help:"Content Delivery API token."`
	Environment string `name:"environment" env:"CONTENTFUL_ENVIRONMENT" default:"master" help:"Contentful environment."`
}

// ServeCmd runs the site.
type ServeCmd struct {
	Contentful   ContentfulFlags `embed:""`
	PreviewToken string          `name:"preview-token" env:"CONTENTFUL_PREVIEW_TOKEN" help:"Content Preview API token; lets the admin see drafts."`
	Preview      bool            `name:"preview" env:"CONTENTFUL_PREVIEW" help:"Serve draft content to every visitor."`
	CloudName    string          `name:"cloud-name" env:"CLOUDINARY_CLOUD_NAME" default:"demo" help:"Cloudinary cloud name."`

	Addr          string `env:"ADDR" default:":3000" help:"Listen address."`
	DatabasePath  string `name:"database" env:"DATABASE_PATH" default:"data/folio.db" help:"Contact inbox SQLite path."`
	AdminPassword string `name:"admin-password" env:"ADMIN_PASSWORD" required:"" help:"Admin login password."`
	SessionSecret string `name:"session-secret" env:"ADMIN_SESSION_SECRET" required:"" help:"Session cookie secret."`
	CookieSecure  bool   `name:"cookie-secure" env:"COOKIE_SECURE" help:"Mark cookies Secure (HTTPS only)."`

	SiteName        string `name:"site-name" env:"SITE_NAME" default:"Portfolio" help:"Site name."`
	SiteURL         string `name:"site-url" env:"SITE_URL" default:"http://localhost:3000" help:"Canonical site URL."`
	SiteDescription string `name:"site-description" env:"SITE_DESCRIPTION" help:"Site description for meta tags."`
	SiteAuthor      string `name:"site-author" env:"SITE_AUTHOR" help:"Owner name for structured data."`
	StaticDir       string `name:"static-dir" env:"STATIC_DIR" default:"public" help:"Directory of static assets."`
}

func (s *ServeCmd) config() folio.SiteConfig {
	return folio.SiteConfig{
		Name:          s.SiteName,
		URL:           s.SiteURL,
		Description:   s.SiteDescription,
		Author:        s.SiteAuthor,
		Addr:          s.Addr,
		DatabasePath:  s.DatabasePath,
		AdminPassword: s.AdminPassword,
		SessionSecret: s.SessionSecret,
		CookieSecure:  s.CookieSecure,
		Contentful: folio.ContentfulConfig{
			SpaceID:      s.Contentful.SpaceID,
			AccessToken:  s.Contentful.AccessToken,
			PreviewToken: s.PreviewToken,
			Environment:  s.Contentful.Environment,
			Preview:      s.Preview,
		},
		CloudName: s.CloudName,
	}
}

func (s *ServeCmd) Run(g *Globals) error {
	if s.Contentful.SpaceID == "" || s.Contentful.AccessToken == "" {
		g.Logger.Warn("Contentful credentials missing; every section will render empty")
	}

	app := folio.New(s.config(), folio.ViewFuncs{},
		folio.WithLogger(g.Logger),
		folio.WithStaticDir(s.StaticDir),
	)
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	g.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		g.Logger.Error("shutdown", zap.Error(err))
	}
	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
