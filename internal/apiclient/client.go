// Package apiclient talks to the remote movie API that owns the catalog
// and showtime data.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/watchwhatwhere/showtimes/internal/model"
)

// DefaultTimeout bounds a single request when Config.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// ErrNotFound is returned when the API answers 404 for a movie.
var ErrNotFound = errors.New("movie not found")

// StatusError reports a non-2xx answer from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.Code, e.Body)
}

// Config is everything the client needs to build request URLs.
type Config struct {
	BaseURL string
	Prefix  string
	Timeout time.Duration
}

// Client fetches movies and showtimes.
type Client struct {
	baseURL string
	prefix  string
	http    *http.Client
}

// New creates a client from cfg.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix != "" {
		prefix = "/" + prefix
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		prefix:  prefix,
		http:    &http.Client{Timeout: timeout},
	}
}

// Endpoint joins the base address, the fixed prefix and path.
func (c *Client) Endpoint(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + c.prefix + path
}

// FetchCatalog returns every movie currently listed.
func (c *Client) FetchCatalog(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.getJSON(ctx, c.Endpoint("/movies"), &movies); err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return movies, nil
}

// FetchMovie returns a single movie.  ErrNotFound is returned when the API
// does not know the id, either as a 404 or as a null body.
func (c *Client) FetchMovie(ctx context.Context, id int) (*model.Movie, error) {
	var m *model.Movie
	err := c.getJSON(ctx, c.Endpoint("/movies/"+strconv.Itoa(id)), &m)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch movie %d: %w", id, err)
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// FetchShowtimes returns the showtimes of one movie.
func (c *Client) FetchShowtimes(ctx context.Context, id int) ([]model.Showtime, error) {
	var sts []model.Showtime
	if err := c.getJSON(ctx, c.Endpoint("/showtimes/"+strconv.Itoa(id)), &sts); err != nil {
		return nil, fmt.Errorf("fetch showtimes %d: %w", id, err)
	}
	return sts, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("fetching", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
