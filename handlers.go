package folio

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/views"
)

// HeaderContactOutcome carries the submission outcome on /contact/ responses.
const HeaderContactOutcome = "X-Contact-Outcome"

var (
	busyNotification = contact.Notification{
		Title:       "Envio em andamento",
		Description: "Aguarde a conclusão do envio anterior.",
		Variant:     "default",
	}
	rateLimitedNotification = contact.Notification{
		Title:       "Muitas mensagens",
		Description: "Tente novamente em alguns minutos.",
		Variant:     "destructive",
	}
)

func (a *App) handleHome(c echo.Context) error {
	req := c.Request()
	a.Tracker.PageView(req.UserAgent(), req.Referer(), req.Host)
	return Render(c, views.Home(views.HomeData{
		Meta:      a.siteMeta(),
		Site:      a.Site,
		Layout:    views.NewLayout(a.Site),
		CSRFToken: CsrfToken(c),
		Year:      a.now().Year(),
	}))
}

// revealReport is posted by site.js the first time a tracked section
// becomes visible.
type revealReport struct {
	Section string `json:"section" form:"section"`
}

const maxSectionLen = 64

func (a *App) handleReveal(c echo.Context) error {
	if !a.beaconLimiter.Allow(c.RealIP()) {
		return c.NoContent(http.StatusTooManyRequests)
	}
	if c.Request().Header.Get("DNT") == "1" {
		return c.NoContent(http.StatusNoContent)
	}

	var r revealReport
	if err := c.Bind(&r); err != nil || r.Section == "" || len(r.Section) > maxSectionLen {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := a.Tracker.Reveal(r.Section, c.Request().UserAgent()); err != nil {
		a.Logger.Debug("reveal report rejected", zap.String("section", r.Section))
		return c.NoContent(http.StatusBadRequest)
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *App) handleContact(c echo.Context) error {
	ip := c.RealIP()
	if !a.contactLimiter.Allow(ip) {
		a.Metrics.observeRejected("rate_limited")
		return RenderStatus(c, http.StatusTooManyRequests, views.Toast(rateLimitedNotification))
	}

	var d contact.Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}

	form := a.forms.acquire(ip, a.newForm)
	if form.Disabled() {
		a.Metrics.observeRejected("busy")
		return RenderStatus(c, http.StatusConflict, views.Toast(busyNotification))
	}
	form.Set(d.Trimmed())

	ctx := c.Request().Context()
	done, err := form.Submit(ctx)
	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		a.forms.release(ip, form)
		a.Metrics.observeRejected("invalid")
		return RenderStatus(c, http.StatusUnprocessableEntity, views.Toast(views.InvalidNotification(verr.Fields)))
	case errors.Is(err, contact.ErrSubmitting):
		a.Metrics.observeRejected("busy")
		return RenderStatus(c, http.StatusConflict, views.Toast(busyNotification))
	case err != nil:
		a.forms.unmount(ip, form)
		return err
	}

	select {
	case res, ok := <-done:
		a.forms.release(ip, form)
		if !ok {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "submission cancelled")
		}
		return a.renderOutcome(c, res)
	case <-ctx.Done():
		a.forms.unmount(ip, form)
		a.Logger.Info("contact submission abandoned", zap.String("ip", ip), zap.Error(ctx.Err()))
		return nil
	}
}

func (a *App) renderOutcome(c echo.Context, res contact.Result) error {
	a.Metrics.observeSubmission(res.Outcome.String())
	c.Response().Header().Set(HeaderContactOutcome, res.Outcome.String())
	if res.Outcome == contact.SubmissionFailed {
		a.Logger.Error("contact submission failed", zap.Error(res.Err))
		return RenderStatus(c, http.StatusServiceUnavailable, views.Toast(res.Notification))
	}
	return Render(c, views.Toast(res.Notification))
}

func (a *App) newForm() *contact.Form {
	return contact.NewForm(
		contact.WithDelay(a.Config.SubmitDelay),
		contact.WithSender(a.sender),
		contact.WithScheduler(a.scheduler),
		contact.WithNotifier(contact.NotifierFunc(func(n contact.Notification) {
			a.Logger.Debug("contact notification", zap.String("title", n.Title), zap.String("variant", n.Variant))
		})),
	)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Site)
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	if a.Inbox != nil {
		b.WriteString("Disallow: /admin/\n")
	}
	b.WriteString("Sitemap: " + strings.TrimSuffix(BuildURL(a.Config.URL), "/") + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}

type healthStatus struct {
	Status string `json:"status"`
	Inbox  string `json:"inbox,omitempty"`
}

func (a *App) handleHealthz(c echo.Context) error {
	h := healthStatus{Status: "ok"}
	if a.Inbox != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := a.Inbox.Ping(ctx); err != nil {
			a.Logger.Warn("inbox ping failed", zap.Error(err))
			h.Status, h.Inbox = "degraded", "unavailable"
			return c.JSON(http.StatusServiceUnavailable, h)
		}
		h.Inbox = "ok"
	}
	return c.JSON(http.StatusOK, h)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		a.Metrics.observeNotFound()
		a.Logger.Error("404 Error: User attempted to access non-existent route",
			zap.String("path", c.Request().URL.Path))
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteMeta()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", zap.Int("status", code), zap.Error(err))
		_ = RenderStatus(c, code, views.ServerError(a.siteMeta()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
