package githubapi

import (
	"context"
	"net/http"
)

// Rate is the quota for one category of requests.
type Rate struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Used      int   `json:"used"`
	Reset     int64 `json:"reset"`
}

// RateLimit is the response of the rate_limit resource. Resources is keyed by
// category, e.g. "core" or "search".
type RateLimit struct {
	Resources map[string]Rate `json:"resources"`
	Rate      Rate            `json:"rate"`
}

// GetRateLimit queries the caller's current quotas. This call does not count
// against the core quota.
func (c *Client) GetRateLimit(ctx context.Context) (RateLimit, error) {
	var rl RateLimit
	_, err := c.executeRequest(ctx, outboundRequest{
		method:  http.MethodGet,
		path:    "/rate_limit",
		respObj: &rl,
	})
	return rl, err
}
