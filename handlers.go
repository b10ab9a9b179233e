package portfolio

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/simtran/portfolio/icons"
	"github.com/simtran/portfolio/site"
	"github.com/simtran/portfolio/views"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	recent, _ := Paginate(posts, 1, a.Site.PostsPerPage())
	meta := a.Views.Meta(site.PageHome)
	return Render(c, a.Views.Page(meta, a.Views.Home(recent)))
}

func (a *App) handleBlogIndex(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}

	page := queryPage(c)
	pagePosts, totalPages := Paginate(posts, page, a.Site.PostsPerPage())
	if len(pagePosts) == 0 && page > 1 {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	meta := a.Views.Meta(site.PageBlog, "blog")
	return Render(c, a.Views.Page(meta, a.Views.BlogIndex(pagePosts, tag, tags, page, totalPages)))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if err == ErrNotFound {
			return a.renderNotFound(c)
		}
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	related := views.FilterRelatedPosts(post, posts)
	meta := views.PageMeta{
		Title:       post.Title,
		Description: post.Summary,
		URL:         BuildURL(a.Site.URL(), "blog", post.Slug),
		OGType:      "article",
	}
	return Render(c, a.Views.Page(meta, a.Views.Post(post, related)))
}

func (a *App) handleProjects(c echo.Context) error {
	projects, err := a.Cache.ListProjects()
	if err != nil {
		return err
	}
	page := queryPage(c)
	pageProjects, totalPages := Paginate(projects, page, a.Site.ProjectsPerPage())
	if len(pageProjects) == 0 && page > 1 {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	meta := a.Views.Meta(site.PageProjects, "projects")
	return Render(c, a.Views.Page(meta, a.Views.Projects(pageProjects, page, totalPages)))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func handleIconStylesheet(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", icons.Stylesheet())
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) renderNotFound(c echo.Context) error {
	meta := views.PageMeta{Title: "Not found"}
	return RenderStatus(c, http.StatusNotFound, a.Views.Page(meta, a.Views.NotFound()))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		meta := views.PageMeta{Title: "Error"}
		_ = RenderStatus(c, code, a.Views.Page(meta, a.Views.ServerError()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// queryPage parses the ?page query parameter, defaulting to 1.
func queryPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
