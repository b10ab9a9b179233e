// Package portfolio is the web application behind a personal portfolio and
// blog site, built with Go, Echo, and templ. It wires the immutable site
// configuration, the icon renderer, SQLite-backed content, and the view
// components into one HTTP server with a small admin surface for authoring.
package portfolio

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/simtran/portfolio/icons"
	"github.com/simtran/portfolio/site"
	"github.com/simtran/portfolio/views"
)

// App is the assembled application: configuration, storage, cache, icon and
// view renderers, and the Echo instance they hang off.
type App struct {
	Site   *site.Site
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *ContentCache
	Icons  *icons.Renderer
	Views  *views.Renderer

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates an App for the given site configuration.
func New(s *site.Site, cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Site:      s,
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the icon renderer, database, cache, middleware, and
// routes, then starts the server. Icon initialization happens here, before
// any route can render, so no icon is ever drawn with an unconfigured
// renderer.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("portfolio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("portfolio: SessionSecret is required")
	}

	// The layout links the icon stylesheet explicitly, so auto-injection
	// stays off; see views.Renderer.Page.
	ic, err := icons.NewRenderer(icons.Config{AutoInjectStylesheet: false})
	if err != nil {
		return fmt.Errorf("portfolio: init icons: %w", err)
	}
	a.Icons = ic
	a.Views = views.NewRenderer(a.Site, ic)

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("portfolio: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewContentCache(a.Store, a.Config.ContentCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET(icons.StylesheetPath, handleIconStylesheet)
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/projects/", a.handleProjects)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/post/:slug/", a.handleAdminPost)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/post/:slug/", a.handleAdminDelete)
	e.POST("/admin/project/save/", a.handleProjectSave)
	e.POST("/admin/project/:slug/delete/", a.handleProjectDelete)
	e.POST("/admin/avatar/", a.handleAvatarUpload)
}

// Close cleans up resources. Call when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
