package arr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Queue returns one page of the manager's download queue.
func (c *Client) Queue(ctx context.Context, page, pageSize int) (*QueuePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))

	var q QueuePage
	if err := c.get(ctx, "/api/v3/queue", params, &q); err != nil {
		return nil, fmt.Errorf("get queue: %w", err)
	}
	return &q, nil
}
