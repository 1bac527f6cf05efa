package arr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SearchReleases queries the manager's indexers for candidate releases
// for a movie. Results are transient and fetched per search.
func (c *Client) SearchReleases(ctx context.Context, movieID int64) ([]Release, error) {
	params := url.Values{}
	params.Set("movieId", strconv.FormatInt(movieID, 10))

	var releases []Release
	if err := c.get(ctx, "/api/v3/release", params, &releases); err != nil {
		return nil, fmt.Errorf("search releases for movie %d: %w", movieID, err)
	}
	return releases, nil
}

// Grab asks the manager to begin downloading a searched release. The
// release is keyed by the (guid, indexerId) pair from the search result.
func (c *Client) Grab(ctx context.Context, guid string, indexerID int64) error {
	body := grabRequest{GUID: guid, IndexerID: indexerID}
	if err := c.post(ctx, "/api/v3/release", body, nil); err != nil {
		return fmt.Errorf("grab release: %w", err)
	}
	return nil
}
