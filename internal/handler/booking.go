package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/watchwhatwhere/showtimes/internal/queue"
)

// publishTimeout bounds how long a redirect waits on the broker.
const publishTimeout = 2 * time.Second

// Book records a booking click and redirects to the exhibitor's booking
// page.  Only absolute http(s) targets signed by the detail page are
// followed.  Publishing failures are logged and do not block the redirect.
func (h *PageHandler) Book(c echo.Context) error {
	to := c.QueryParam("to")
	if !h.Links.Verify(to, c.QueryParam("sig")) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking link"})
	}
	target, err := url.Parse(strings.TrimSpace(to))
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking link"})
	}

	movieID, _ := strconv.Atoi(c.QueryParam("movie_id"))
	showtimeID, _ := strconv.Atoi(c.QueryParam("showtime_id"))
	ev := queue.BookingClickedEvent{
		MovieID:    movieID,
		ShowtimeID: showtimeID,
		Cinema:     c.QueryParam("cinema"),
		Location:   c.QueryParam("location"),
		Link:       target.String(),
		ClientIP:   c.RealIP(),
		ClickedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	// publish even if the client hangs up mid-redirect
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), publishTimeout)
	defer cancel()
	if err := h.Publisher.PublishBookingClicked(ctx, ev); err != nil {
		slog.Warn("booking click not published", "movie_id", movieID, "showtime_id", showtimeID, "error", err)
	}

	return c.Redirect(http.StatusFound, target.String())
}
