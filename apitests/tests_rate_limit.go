package apitests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoRateLimitTests(t *T) {
	t.Run("core quota", func(t *T) {
		rl, err := t.Client().GetRateLimit(t.Ctx())
		t.RequireSuccess(err)
		t.DumpResponse("rate_limit", rl)

		core, ok := rl.Resources["core"]
		require.True(t, ok, "rate limit response has no core resource")
		assert.Greater(t, core.Limit, 0)
		assert.Greater(t, core.Remaining, 0, "no core requests remaining")
		t.Debug("Core quota: %d of %d remaining", core.Remaining, core.Limit)
	})
}
