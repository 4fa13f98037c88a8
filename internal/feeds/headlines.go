package feeds

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// Headlines returns up to limit headline titles. Primary source: the ranked
// id list followed by per-id item lookups, skipping items that fail or lack a
// title. When the primary path collects nothing, a search-style secondary
// source is consulted. Always returns a slice, possibly empty, never an
// error.
func (c *Client) Headlines(ctx context.Context, limit int) []string {
	titles := make([]string, 0, limit)
	if limit <= 0 {
		return titles
	}

	if body, err := c.getJSON(ctx, c.hnTopURL); err != nil {
		c.log.Warn(ctx, "headline source failed", "source", "hn/list", "err", err)
	} else if ids := gjson.ParseBytes(body); ids.IsArray() {
		for _, id := range ids.Array() {
			if len(titles) >= limit {
				break
			}
			itemBody, err := c.getJSON(ctx, fmt.Sprintf(c.hnItemURL, id.Int()))
			if err != nil {
				c.log.Debug(ctx, "headline item failed", "id", id.Int(), "err", err)
				continue
			}
			if title := gjson.GetBytes(itemBody, "title"); title.Exists() {
				titles = append(titles, title.String())
			}
		}
	}

	if len(titles) == 0 {
		if body, err := c.getJSON(ctx, c.algoliaURL); err != nil {
			c.log.Warn(ctx, "headline source failed", "source", "hn/algolia", "err", err)
		} else {
			for _, hit := range gjson.GetBytes(body, "hits").Array() {
				if len(titles) >= limit {
					break
				}
				if title := hit.Get("title"); title.String() != "" {
					titles = append(titles, title.String())
				}
			}
		}
	}

	return titles
}
