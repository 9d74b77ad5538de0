package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4"

	"github.com/watchwhatwhere/showtimes/internal/handler"
)

// RegisterRoutes registers routes that live outside the page prefix.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPages mounts the catalog, detail and booking redirect routes
// under prefix ("" mounts them at the root).  mw is applied to every page
// route, typically the rate limiter.
func RegisterPages(e *echo.Echo, h *handler.PageHandler, prefix string, mw ...echo.MiddlewareFunc) {
	g := e.Group(prefix, mw...)
	// catalog, reachable with and without the trailing slash
	g.GET("", h.Catalog)
	g.GET("/", h.Catalog)
	// one movie with its showtimes
	g.GET("/movie/:id", h.MovieDetail)
	// grouped showtimes as JSON
	g.GET("/movie/:id/showtimes", h.Showtimes)
	// booking deep links go through here so clicks can be counted
	g.GET("/book", h.Book)
}
