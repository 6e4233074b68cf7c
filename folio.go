// Package folio serves a single-page personal portfolio built with Go, Echo,
// and templ. It renders the page, runs the contact form, and optionally keeps
// submissions in a SQLite inbox behind a password-protected admin page.
package folio

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/folio/analytics"
	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

// App is the central folio application. It wires together the content,
// the contact form, the inbox store, handlers, and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Logger  *zap.Logger
	Site    content.Site
	Inbox   *Store
	Metrics *Metrics
	Tracker *analytics.Tracker

	sender         contact.Sender
	scheduler      contact.Scheduler
	forms          *formSet
	contactLimiter *RateLimiter
	loginLimiter   *RateLimiter
	beaconLimiter  *RateLimiter
	customRoutes   []func(*App)
	now            func() time.Time
	ready          bool
}

// New creates a folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Echo:   e,
		forms:  newFormSet(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init loads the content, opens the inbox when configured, and registers
// middleware and routes. Start calls it; tests call it before Handler.
func (a *App) Init() error {
	if a.ready {
		return nil
	}
	if err := a.Config.validate(); err != nil {
		return err
	}

	if a.Logger == nil {
		logger, err := NewLogger(a.Config.LogLevel)
		if err != nil {
			return err
		}
		a.Logger = logger
	}

	site, err := content.Load()
	if err != nil {
		return fmt.Errorf("folio: load content: %w", err)
	}
	a.Site = site

	a.Metrics = NewMetrics()
	var sections []string
	for _, el := range views.NewLayout(site).Sections() {
		sections = append(sections, el.ID)
	}
	a.Tracker = analytics.NewTracker(a.Metrics.registry, sections)

	a.contactLimiter = NewRateLimiter(10, time.Minute)
	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.beaconLimiter = NewRateLimiter(30, time.Minute)

	if a.Config.InboxEnabled() {
		store, err := NewStore(a.Config.InboxPath)
		if err != nil {
			return fmt.Errorf("folio: init inbox: %w", err)
		}
		a.Inbox = store
		if a.sender == nil {
			a.sender = store
		}
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	return nil
}

// Start initializes the app and serves HTTP until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Logger.Info("listening",
		zap.String("addr", a.Config.Addr),
		zap.Bool("inbox", a.Config.InboxEnabled()),
		zap.Duration("submit_delay", a.Config.SubmitDelay),
	)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Handler returns the HTTP handler. Init must have succeeded.
func (a *App) Handler() http.Handler {
	return a.Echo
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	assetHandler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(assets))))
	e.GET("/public/site.js", assetHandler)
	e.GET("/public/site.css", assetHandler)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/healthz", a.handleHealthz)
	if a.Config.MetricsEnabled {
		e.GET("/metrics", a.Metrics.Handler())
	}

	e.GET("/", a.handleHome)
	e.POST("/contact/", a.handleContact)
	e.POST("/reveal/", a.handleReveal)

	if a.Inbox != nil {
		e.GET("/admin/", a.handleAdmin)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
		e.DELETE("/admin/message/:id/", a.handleAdminDelete)
	}
}

func (a *App) siteMeta() views.SiteMeta {
	return views.SiteMeta{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.beaconLimiter != nil {
		a.beaconLimiter.Stop()
	}
	var err error
	if a.Inbox != nil {
		err = a.Inbox.Close()
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return err
}
