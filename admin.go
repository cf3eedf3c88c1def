package folio

import (
	"crypto/subtle"
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type adminDashboard struct {
	Messages []Message `json:"messages"`
	Notice   string    `json:"notice,omitempty"`
	Preview  bool      `json:"preview"`
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		if a.Views.AdminLogin == nil {
			return c.JSON(http.StatusUnauthorized, map[string]bool{"authenticated": false})
		}
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	a.Logger.Warn("failed admin login", zap.String("ip", ip))
	if a.Views.AdminLogin == nil {
		return c.JSON(http.StatusUnauthorized, map[string]bool{"authenticated": false})
	}
	return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminDeleteMessage(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Store.DeleteMessage(c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) renderAdminDashboard(c echo.Context, notice string) error {
	messages, err := a.Store.ListMessages()
	if err != nil {
		return err
	}
	preview := a.preview != nil
	if a.Views.AdminDashboard == nil {
		return c.JSON(http.StatusOK, adminDashboard{Messages: messages, Notice: notice, Preview: preview})
	}
	return Render(c, a.Views.AdminDashboard(messages, notice, preview, CsrfToken(c)))
}
