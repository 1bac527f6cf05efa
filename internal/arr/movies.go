package arr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListMovies returns the movie library.
func (c *Client) ListMovies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := c.get(ctx, "/api/v3/movie", nil, &movies); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// GetMovie returns a single movie by its remote id.
func (c *Client) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, "/api/v3/movie/"+strconv.FormatInt(id, 10), nil, &movie); err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	return &movie, nil
}

// AddMovie starts tracking a movie.
func (c *Client) AddMovie(ctx context.Context, m Movie) (*Movie, error) {
	var created Movie
	if err := c.post(ctx, "/api/v3/movie", m, &created); err != nil {
		return nil, fmt.Errorf("add movie: %w", err)
	}
	return &created, nil
}

// UpdateMovie replaces a tracked movie's mutable fields.
func (c *Client) UpdateMovie(ctx context.Context, m Movie) (*Movie, error) {
	var updated Movie
	if err := c.put(ctx, "/api/v3/movie/"+strconv.FormatInt(m.ID, 10), m, &updated); err != nil {
		return nil, fmt.Errorf("update movie %d: %w", m.ID, err)
	}
	return &updated, nil
}

// DeleteMovie stops tracking a movie.
func (c *Client) DeleteMovie(ctx context.Context, id int64, deleteFiles bool) error {
	params := url.Values{}
	params.Set("deleteFiles", strconv.FormatBool(deleteFiles))

	if err := c.del(ctx, "/api/v3/movie/"+strconv.FormatInt(id, 10), params); err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	return nil
}

// EditMovies applies a bulk edit to the listed movies. Only non-nil
// fields of the edit are applied remotely.
func (c *Client) EditMovies(ctx context.Context, edit BatchEdit) ([]Movie, error) {
	var movies []Movie
	if err := c.put(ctx, "/api/v3/movie/editor", edit, &movies); err != nil {
		return nil, fmt.Errorf("edit movies: %w", err)
	}
	return movies, nil
}

// ListSeries returns the series library.
func (c *Client) ListSeries(ctx context.Context) ([]Series, error) {
	var series []Series
	if err := c.get(ctx, "/api/v3/series", nil, &series); err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return series, nil
}
