package apitests

import (
	"github.com/qa-automation/github-api-tests/framework"
)

func RunTestSuite(
	cfg SuiteConfig,
	filter framework.Filter,
	tagPolicy framework.TagPolicy,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, tagPolicy, testLogger, func(c *framework.Context) {
		t := newTestScope(c, &cfg)

		t.Run("users", DoUserTests)
		t.Run("gists", DoGistTests)
		t.Run("search", DoSearchTests)
		t.Run("rate limit", DoRateLimitTests)
		t.Run("data driven", DoDataDrivenTests)
	})
}
