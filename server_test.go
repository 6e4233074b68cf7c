package folio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eringen/folio/contact"
)

func newTestApp(t *testing.T, cfg SiteConfig, opts ...Option) *App {
	t.Helper()
	if cfg.SubmitDelay == 0 {
		cfg.SubmitDelay = 5 * time.Millisecond
	}
	cfg.MetricsEnabled = true
	opts = append([]Option{WithLogger(zap.NewNop())}, opts...)
	a := New(cfg, opts...)
	require.NoError(t, a.Init())
	t.Cleanup(func() { a.Close() })
	return a
}

// client carries cookies between requests against one App.
type client struct {
	t       *testing.T
	h       http.Handler
	mu      sync.Mutex
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, a *App) *client {
	return &client{t: t, h: a.Handler(), cookies: make(map[string]*http.Cookie)}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.mu.Lock()
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	c.mu.Unlock()
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// csrf loads the page once so the token cookie is set, and returns the token.
func (c *client) csrf() string {
	if v := c.cookie("_csrf"); v != "" {
		return v
	}
	rec := c.get("/")
	require.Equal(c.t, http.StatusOK, rec.Code)
	v := c.cookie("_csrf")
	require.NotEmpty(c.t, v, "GET / should set the _csrf cookie")
	return v
}

func (c *client) cookie(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ck, ok := c.cookies[name]; ok {
		return ck.Value
	}
	return ""
}

func (c *client) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	form.Set("_csrf", c.csrf())
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"subject": {"Projeto"},
		"message": {"Olá!"},
	}
}

// gatedScheduler holds every scheduled submission until fire is called.
type gatedScheduler struct {
	mu        sync.Mutex
	fns       []func()
	scheduled chan struct{}
}

func newGatedScheduler() *gatedScheduler {
	return &gatedScheduler{scheduled: make(chan struct{}, 8)}
}

func (s *gatedScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.mu.Lock()
	s.fns = append(s.fns, f)
	s.mu.Unlock()
	s.scheduled <- struct{}{}
	return func() bool { return false }
}

func (s *gatedScheduler) fire() {
	s.mu.Lock()
	fns := s.fns
	s.fns = nil
	s.mu.Unlock()
	for _, f := range fns {
		go f()
	}
}

func TestHomeRendersHiddenRevealMarkup(t *testing.T) {
	a := newTestApp(t, SiteConfig{Name: "Folio Test"})
	c := newClient(t, a)

	rec := c.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, body, "<title>Folio Test</title>")
	assert.Contains(t, body, `id="project-card-1"`)
	assert.Contains(t, body, "transition-delay: 100ms")
	assert.Contains(t, body, "transition-delay: 300ms")
	assert.Contains(t, body, `data-reveal="up"`)
	assert.Contains(t, body, `data-reveal-margin="0px 0px -100px 0px"`)
	assert.Contains(t, body, "opacity-0 translate-y-8")
	assert.Contains(t, body, ">Enviar</button>")
	assert.Contains(t, body, `value="`+c.cookie("_csrf")+`"`)
	assert.NotContains(t, body, `data-revealed="true"`)
}

func TestContactSubmitSimulated(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	c := newClient(t, a)

	start := time.Now()
	rec := c.postForm("/contact/", validForm())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	assert.Equal(t, "submitted", rec.Header().Get(HeaderContactOutcome))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "Mensagem enviada com sucesso")
	assert.Contains(t, rec.Body.String(), "Obrigado por entrar em contato.")
	assert.Equal(t, 0, a.forms.len(), "an Idle form is released after the request")
}

func TestContactRejectsInvalidDraft(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	c := newClient(t, a)

	form := validForm()
	form.Set("email", "not-an-address")
	form.Set("subject", "   ")
	rec := c.postForm("/contact/", form)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, rec.Header().Get(HeaderContactOutcome))
	assert.Contains(t, rec.Body.String(), "E-mail, Assunto")
	assert.Equal(t, 0, a.forms.len())
}

func TestContactIsBusyWhileSubmitting(t *testing.T) {
	sched := newGatedScheduler()
	a := newTestApp(t, SiteConfig{}, WithScheduler(sched))
	c := newClient(t, a)
	c.csrf()

	var first *httptest.ResponseRecorder
	done := make(chan struct{})
	go func() {
		defer close(done)
		first = c.postForm("/contact/", validForm())
	}()

	select {
	case <-sched.scheduled:
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never started")
	}

	second := c.postForm("/contact/", validForm())
	assert.Equal(t, http.StatusConflict, second.Code)

	sched.fire()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never completed")
	}
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "submitted", first.Header().Get(HeaderContactOutcome))
	assert.Equal(t, 0, a.forms.len(), "the form is released once Idle again")
}

func TestContactSenderFailure(t *testing.T) {
	sender := contact.SenderFunc(func(ctx context.Context, d contact.Draft) error {
		return errors.New("smtp down")
	})
	a := newTestApp(t, SiteConfig{}, WithSender(sender))
	c := newClient(t, a)

	rec := c.postForm("/contact/", validForm())
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "failed", rec.Header().Get(HeaderContactOutcome))
	assert.Contains(t, rec.Body.String(), "Não foi possível enviar a mensagem")
}

func TestContactRequiresCSRFToken(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	c := newClient(t, a)

	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(validForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := c.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNotFoundIsLoggedAndCounted(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	a := newTestApp(t, SiteConfig{}, WithLogger(zap.New(core)))
	c := newClient(t, a)

	rec := c.get("/does-not-exist/")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
	assert.Contains(t, rec.Body.String(), `href="/"`)

	entries := logs.FilterMessage("404 Error: User attempted to access non-existent route").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.Equal(t, "/does-not-exist/", entries[0].ContextMap()["path"])

	metrics := c.get("/metrics")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "folio_not_found_total 1")
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	c := newClient(t, a)

	rec := c.get("/admin")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/admin/", rec.Header().Get("Location"))
}

func TestHealthz(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	c := newClient(t, a)

	rec := c.get("/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestFeedSitemapAndRobots(t *testing.T) {
	a := newTestApp(t, SiteConfig{URL: "https://folio.example"})
	c := newClient(t, a)

	feed := c.get("/feed.xml")
	require.Equal(t, http.StatusOK, feed.Code)
	body := feed.Body.String()
	assert.Equal(t, len(a.Site.AllProjects()), strings.Count(body, "<item>"))
	assert.Contains(t, body, `<guid isPermaLink="false">https://folio.example/#project-card-1</guid>`)
	assert.Contains(t, body, `<guid isPermaLink="false">https://folio.example/#alternate-item-1</guid>`)

	sitemap := c.get("/sitemap.xml")
	require.Equal(t, http.StatusOK, sitemap.Code)
	assert.Contains(t, sitemap.Body.String(), "<loc>https://folio.example/</loc>")

	robots := c.get("/robots.txt")
	require.Equal(t, http.StatusOK, robots.Code)
	assert.Contains(t, robots.Body.String(), "Sitemap: https://folio.example/sitemap.xml")
	assert.NotContains(t, robots.Body.String(), "/admin/")
}

func TestEmbeddedAssets(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	c := newClient(t, a)

	js := c.get("/public/site.js")
	require.Equal(t, http.StatusOK, js.Code)
	assert.Contains(t, js.Body.String(), "IntersectionObserver")

	css := c.get("/public/site.css")
	require.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Body.String(), ".opacity-0")
}

func TestAdminRoutesNeedInbox(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	c := newClient(t, a)

	assert.Equal(t, http.StatusNotFound, c.get("/admin/").Code)
}

func TestInboxRequiresAdminCredentials(t *testing.T) {
	cfg := SiteConfig{InboxPath: filepath.Join(t.TempDir(), "inbox.db")}
	err := New(cfg, WithLogger(zap.NewNop())).Init()
	assert.ErrorContains(t, err, "ADMIN_PASSWORD")
}

func TestInboxFlow(t *testing.T) {
	a := newTestApp(t, SiteConfig{
		InboxPath:     filepath.Join(t.TempDir(), "inbox.db"),
		AdminPassword: "s3cret",
		SessionSecret: "0123456789abcdef0123456789abcdef",
	})
	c := newClient(t, a)

	rec := c.postForm("/contact/", validForm())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	login := c.get("/admin/")
	require.Equal(t, http.StatusOK, login.Code)
	assert.Contains(t, login.Body.String(), `action="/admin/login/"`)

	bad := c.postForm("/admin/login/", url.Values{"password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
	assert.Contains(t, bad.Body.String(), "Invalid password.")

	ok := c.postForm("/admin/login/", url.Values{"password": {"s3cret"}})
	require.Equal(t, http.StatusSeeOther, ok.Code)

	inbox := c.get("/admin/")
	require.Equal(t, http.StatusOK, inbox.Code)
	assert.Contains(t, inbox.Body.String(), "Inbox (1)")
	assert.Contains(t, inbox.Body.String(), "inbox-unread")

	msgs, err := a.Inbox.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].Read, "viewing the inbox marks messages read")
	assert.Equal(t, "Ada Lovelace", msgs[0].Draft.Name)

	req := httptest.NewRequest(http.MethodDelete, "/admin/message/"+msgs[0].ID+"/", nil)
	req.Header.Set("X-CSRF-Token", c.csrf())
	del := c.do(req)
	assert.Equal(t, http.StatusNoContent, del.Code)

	n, err := a.Inbox.CountUnread(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	left, _ := a.Inbox.ListMessages(context.Background())
	assert.Empty(t, left)

	logout := c.postForm("/admin/logout/", url.Values{})
	require.Equal(t, http.StatusSeeOther, logout.Code)
	again := c.get("/admin/")
	assert.Contains(t, again.Body.String(), `action="/admin/login/"`)
}

func (c *client) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRF-Token", c.csrf())
	return c.do(req)
}

func TestRevealBeacon(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	c := newClient(t, a)

	assert.Equal(t, http.StatusNoContent, c.postJSON("/reveal/", `{"section":"about"}`).Code)
	assert.Equal(t, http.StatusBadRequest, c.postJSON("/reveal/", `{"section":"admin"}`).Code)
	assert.Equal(t, http.StatusBadRequest, c.postJSON("/reveal/", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, c.postJSON("/reveal/", `not json`).Code)

	req := httptest.NewRequest(http.MethodPost, "/reveal/", strings.NewReader(`{"section":"contact"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRF-Token", c.csrf())
	req.Header.Set("DNT", "1")
	assert.Equal(t, http.StatusNoContent, c.do(req).Code)

	body := c.get("/metrics").Body.String()
	assert.Contains(t, body, `folio_section_reveals_total{section="about"} 1`)
	assert.Contains(t, body, `folio_section_reveals_total{section="contact"} 0`)
	assert.NotContains(t, body, `section="admin"`)
}

func TestRevealBeaconRequiresCSRFToken(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	req := httptest.NewRequest(http.MethodPost, "/reveal/", strings.NewReader(`{"section":"about"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHomeCountsPageViews(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	c := newClient(t, a)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")
	req.Header.Set("Referer", "https://www.google.com/")
	require.Equal(t, http.StatusOK, c.do(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	require.Equal(t, http.StatusOK, c.do(req).Code)

	body := c.get("/metrics").Body.String()
	assert.Contains(t, body, `folio_page_views_total{browser="Chrome",device="Desktop",source="Google"} 1`)
	assert.Contains(t, body, `folio_bot_hits_total{bot="Googlebot"} 1`)
}
