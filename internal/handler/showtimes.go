package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/watchwhatwhere/showtimes/internal/showtime"
)

// Showtimes returns a movie's showtimes as JSON grouped by date and cinema,
// or by date, cinema and branch with ?by=location.  Object members keep
// first-seen order.
func (h *PageHandler) Showtimes(c echo.Context) error {
	id, ok := movieID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	by := c.QueryParam("by")
	if by != "" && by != "cinema" && by != "location" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "by must be cinema or location"})
	}

	list, err := h.API.FetchShowtimes(c.Request().Context(), id)
	if err != nil {
		slog.Error("error fetching showtimes", "movie_id", id, "error", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "showtimes unavailable"})
	}

	if by == "location" {
		g := showtime.GroupByLocation(list)
		return c.JSON(http.StatusOK, echo.Map{
			"movie_id": id,
			"groups":   showtime.LocatedLeaves(g),
			"count":    showtime.LocatedCount(g),
			"dates":    g,
		})
	}
	g := showtime.GroupByDate(list)
	return c.JSON(http.StatusOK, echo.Map{
		"movie_id": id,
		"groups":   showtime.Leaves(g),
		"count":    showtime.Count(g),
		"dates":    g,
	})
}
