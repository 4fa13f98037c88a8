package feeds

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dmarques/skilltrack/internal/common"
)

// Quote returns a motivational quote with attribution from the primary
// source, falling back to a plain advice line from the secondary one. When
// both sources fail or return unexpected shapes, common.ErrNoQuote is
// returned; per-source failures are only logged.
func (c *Client) Quote(ctx context.Context) (string, error) {
	if body, err := c.getJSON(ctx, c.quoteURL); err != nil {
		c.log.Warn(ctx, "quote source failed", "source", "zenquotes", "err", err)
	} else {
		q := gjson.GetBytes(body, "0.q")
		a := gjson.GetBytes(body, "0.a")
		if q.Exists() && a.Exists() {
			return fmt.Sprintf("%s — %s", q.String(), a.String()), nil
		}
		c.log.Warn(ctx, "quote source returned unexpected shape", "source", "zenquotes")
	}

	if body, err := c.getJSON(ctx, c.adviceURL); err != nil {
		c.log.Warn(ctx, "quote source failed", "source", "adviceslip", "err", err)
	} else {
		if advice := gjson.GetBytes(body, "slip.advice"); advice.Exists() {
			return advice.String(), nil
		}
		c.log.Warn(ctx, "quote source returned unexpected shape", "source", "adviceslip")
	}

	return "", common.ErrNoQuote
}
