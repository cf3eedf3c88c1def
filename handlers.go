package folio

import (
	"fmt"
	"net/http"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/richtext"
)

const (
	maxNameLen    = 200
	maxMessageLen = 5000
)

func (a *App) handleHome(c echo.Context) error {
	src, preview := a.source(c)
	ctx := c.Request().Context()
	page := HomePage{
		Projects:     src.Projects(ctx),
		Skills:       src.Skills(ctx),
		Experiences:  src.Experiences(ctx),
		Testimonials: src.Testimonials(ctx),
		Preview:      preview,
	}
	if preview {
		c.Response().Header().Set("Cache-Control", "no-store")
	}
	var cmp templ.Component
	if a.Views.Home != nil {
		cmp = a.Views.Home(page, a.homeMeta(page))
	}
	return renderView(c, http.StatusOK, cmp, page)
}

func (a *App) handleProject(c echo.Context) error {
	src, preview := a.source(c)
	project, ok := src.ProjectBySlug(c.Request().Context(), c.Param("slug"))
	if !ok {
		return echo.ErrNotFound
	}
	if preview {
		c.Response().Header().Set("Cache-Control", "no-store")
	}
	var cmp templ.Component
	if a.Views.Project != nil {
		cmp = a.Views.Project(project, a.projectMeta(project))
	}
	return renderView(c, http.StatusOK, cmp, project)
}

func (a *App) homeMeta(page HomePage) PageMeta {
	meta := PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		OGType:      "website",
	}
	for _, p := range page.Projects {
		if p.CoverImage != nil {
			meta.Image = p.CoverImage.Optimized
			break
		}
	}
	return meta
}

func (a *App) projectMeta(p content.Project) PageMeta {
	desc := p.Description
	if desc == "" {
		desc = Truncate(richtext.PlainText(p.LongDescription), 160)
	}
	meta := PageMeta{
		Title:       p.Title + " | " + a.Config.Name,
		Description: desc,
		URL:         BuildURL(a.Config.URL, "projects", p.Slug),
		OGType:      "article",
	}
	if p.CoverImage != nil {
		meta.Image = p.CoverImage.Optimized
	}
	return meta
}

func (a *App) handleAPIProjects(c echo.Context) error {
	src, _ := a.source(c)
	return c.JSON(http.StatusOK, src.Projects(c.Request().Context()))
}

func (a *App) handleAPIProject(c echo.Context) error {
	src, _ := a.source(c)
	project, ok := src.ProjectBySlug(c.Request().Context(), c.Param("slug"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "project not found"})
	}
	return c.JSON(http.StatusOK, project)
}

func (a *App) handleAPISkills(c echo.Context) error {
	src, _ := a.source(c)
	return c.JSON(http.StatusOK, src.Skills(c.Request().Context()))
}

func (a *App) handleAPIExperiences(c echo.Context) error {
	src, _ := a.source(c)
	return c.JSON(http.StatusOK, src.Experiences(c.Request().Context()))
}

func (a *App) handleAPITestimonials(c echo.Context) error {
	src, _ := a.source(c)
	return c.JSON(http.StatusOK, src.Testimonials(c.Request().Context()))
}

type contactResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func (a *App) handleContact(c echo.Context) error {
	if !a.contactLimiter.Allow(c.RealIP()) {
		return a.contactResponse(c, http.StatusTooManyRequests, false, "Too many messages. Try again later.")
	}
	msg := Message{
		Name:  strings.TrimSpace(c.FormValue("name")),
		Email: strings.TrimSpace(c.FormValue("email")),
		Body:  strings.TrimSpace(c.FormValue("message")),
		IP:    c.RealIP(),
	}
	if reason := validateMessage(msg); reason != "" {
		return a.contactResponse(c, http.StatusBadRequest, false, reason)
	}
	saved, err := a.Store.SaveMessage(msg)
	if err != nil {
		return err
	}
	a.Logger.Info("contact message received", zap.String("id", saved.ID))
	return a.contactResponse(c, http.StatusOK, true, "Thanks! I'll get back to you soon.")
}

func validateMessage(m Message) string {
	switch {
	case m.Name == "" || m.Email == "" || m.Body == "":
		return "Name, email and message are required."
	case utf8.RuneCountInString(m.Name) > maxNameLen:
		return "Name is too long."
	case utf8.RuneCountInString(m.Body) > maxMessageLen:
		return "Message is too long."
	}
	if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email {
		return "Please enter a valid email address."
	}
	return ""
}

func (a *App) contactResponse(c echo.Context, code int, ok bool, message string) error {
	var cmp templ.Component
	if a.Views.ContactResult != nil {
		cmp = a.Views.ContactResult(ok, message)
	}
	return renderView(c, code, cmp, contactResult{OK: ok, Message: message})
}

func (a *App) handleSitemap(c echo.Context) error {
	// Drafts never reach the sitemap.
	return a.renderSitemap(c, a.live.Projects(c.Request().Context()))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.staticDir, "favicon.svg"))
}

func (a *App) handleRobots(c echo.Context) error {
	path := filepath.Join(a.staticDir, "robots.txt")
	if _, err := os.Stat(path); err == nil {
		return c.File(path)
	}
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s\n",
		strings.TrimRight(a.Config.URL, "/")+"/sitemap.xml")
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && a.Views.NotFound != nil {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
		if a.Views.ServerError != nil {
			_ = RenderStatus(c, code, a.Views.ServerError())
			return
		}
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
