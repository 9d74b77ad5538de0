// Package handler exposes the HTTP handlers for the catalog and movie
// pages.  Fetch failures never reach the visitor as errors: they are logged
// and the page falls back to its loading placeholder.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/watchwhatwhere/showtimes/internal/apiclient"
	"github.com/watchwhatwhere/showtimes/internal/model"
	"github.com/watchwhatwhere/showtimes/internal/service"
	"github.com/watchwhatwhere/showtimes/internal/view"
)

// MovieAPI is the remote API as the pages use it.
type MovieAPI interface {
	FetchCatalog(ctx context.Context) ([]model.Movie, error)
	FetchMovie(ctx context.Context, id int) (*model.Movie, error)
	FetchShowtimes(ctx context.Context, id int) ([]model.Showtime, error)
}

// PageHandler renders the catalog and detail pages.
type PageHandler struct {
	API       MovieAPI               // source of movies and showtimes
	Publisher service.ClickPublisher // receives booking clicks
	Links     view.Links             // builds and verifies page links
}

// NewPageHandler constructs a PageHandler and panics if api is nil.  A nil
// publisher disables click events.
func NewPageHandler(api MovieAPI, pub service.ClickPublisher, links view.Links) *PageHandler {
	if api == nil {
		panic("nil MovieAPI passed to NewPageHandler")
	}
	if pub == nil {
		pub = service.NopPublisher{}
	}
	return &PageHandler{API: api, Publisher: pub, Links: links}
}

// Catalog lists every movie.  When the catalog cannot be fetched the page
// shows its loading placeholder.
func (h *PageHandler) Catalog(c echo.Context) error {
	movies, err := h.API.FetchCatalog(c.Request().Context())
	if err != nil {
		slog.Error("error fetching movies", "error", err)
		return c.Render(http.StatusOK, view.CatalogPage, view.Catalog{Title: "Movies", Loading: true})
	}
	return c.Render(http.StatusOK, view.CatalogPage, view.NewCatalog(h.Links, movies))
}

// MovieDetail shows one movie and its showtimes grouped by date and cinema.
// The movie and its showtimes are fetched concurrently; a showtimes failure
// still renders the movie, a movie failure renders the placeholder.
func (h *PageHandler) MovieDetail(c echo.Context) error {
	id, ok := movieID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	var (
		wg        sync.WaitGroup
		movie     *model.Movie
		showtimes []model.Showtime
		movieErr  error
		stErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		movie, movieErr = h.API.FetchMovie(ctx, id)
	}()
	go func() {
		defer wg.Done()
		showtimes, stErr = h.API.FetchShowtimes(ctx, id)
	}()
	wg.Wait()

	if stErr != nil {
		slog.Error("error fetching showtimes", "movie_id", id, "error", stErr)
		showtimes = nil
	}
	if movieErr != nil {
		if errors.Is(movieErr, apiclient.ErrNotFound) {
			slog.Warn("movie not found", "movie_id", id)
		} else {
			slog.Error("error fetching movie", "movie_id", id, "error", movieErr)
		}
		return c.Render(http.StatusOK, view.DetailPage, view.Detail{Title: "Loading...", Loading: true})
	}
	return c.Render(http.StatusOK, view.DetailPage, view.NewDetail(h.Links, movie, showtimes))
}

func movieID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil && id >= 0
}
