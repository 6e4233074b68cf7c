package folio

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/folio/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.siteMeta(), false, CsrfToken(c)))
	}
	return a.renderInbox(c, c.QueryParam("msg"))
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
	a.Logger.Warn("admin login failed", zap.String("ip", ip))
	return RenderStatus(c, http.StatusUnauthorized, views.AdminLogin(a.siteMeta(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.NoContent(http.StatusUnauthorized)
	}
	id := c.Param("id")
	if err := a.Inbox.DeleteMessage(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// renderInbox lists messages and then marks them read, so unread ones are
// highlighted exactly once.
func (a *App) renderInbox(c echo.Context, msg string) error {
	ctx := c.Request().Context()
	msgs, err := a.Inbox.ListMessages(ctx)
	if err != nil {
		return err
	}
	page := views.AdminInbox(a.siteMeta(), msgs, msg, CsrfToken(c))
	var unread []string
	for _, m := range msgs {
		if !m.Read {
			unread = append(unread, m.ID)
		}
	}
	if err := a.Inbox.MarkRead(ctx, unread...); err != nil {
		a.Logger.Warn("mark read failed", zap.Error(err))
	}
	return Render(c, page)
}
