package apitests

import (
	"context"

	"github.com/stretchr/testify/require"

	"github.com/qa-automation/github-api-tests/artifacts"
	"github.com/qa-automation/github-api-tests/config"
	"github.com/qa-automation/github-api-tests/fixtures"
	"github.com/qa-automation/github-api-tests/framework"
	"github.com/qa-automation/github-api-tests/githubapi"
)

// SuiteConfig is everything the tests need to know about the run.
type SuiteConfig struct {
	Client *githubapi.Client
	// Credential says whether Client carries a usable token. Tests that need
	// one are skipped otherwise.
	Credential          config.CredentialStatus
	DataFile            string
	ResponseTimeLimitMS int
	// DumpResponses enables writing response bodies to DebugDir.
	DumpResponses bool
	DebugDir      string
	RunID         string
	// Logger, if set, receives every test's request log in addition to the
	// test's own debug output.
	Logger framework.Logger
}

// T represents a test or subtest in the GitHub API suite.
//
// It implements the same basic functionality as Go's testing.T, so the assert
// and require packages can be used by passing the *T as if it were a
// *testing.T. It also gives each test its own API client, whose requests are
// written to that test's debug output.
type T struct {
	context *framework.Context
	config  *SuiteConfig
	client  *githubapi.Client
}

func newTestScope(c *framework.Context, cfg *SuiteConfig) *T {
	return &T{
		context: c,
		config:  cfg,
		client:  cfg.Client.WithLogger(framework.MultiLogger(c.DebugLogger(), cfg.Logger)),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by the methods in the require package when a test should
// fail and exit immediately.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.RunTagged(name, nil, action)
}

// RunTagged runs a subtest that is skipped if the run disables any of its tags.
func (t *T) RunTagged(name string, tags []string, action func(*T)) {
	t.context.RunTagged(name, tags, func(c *framework.Context) {
		action(newTestScope(c, t.config))
	})
}

func (t *T) Skip() {
	t.context.Skip()
}

func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Defer schedules a function to run when the test ends, however it ends.
func (t *T) Defer(cleanup func()) {
	t.context.Defer(cleanup)
}

func (t *T) DeferCleanup(cleanup func() error) {
	t.context.DeferCleanup(cleanup)
}

// Debug adds a line to the test's debug output, which the test logger shows
// if the test fails or if full debug output was requested.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Client returns an API client that logs to this test's debug output.
func (t *T) Client() *githubapi.Client {
	return t.client
}

// Ctx is the context passed to API calls. The harness never cancels it.
func (t *T) Ctx() context.Context {
	return context.Background()
}

func (t *T) ResponseTimeLimitMS() int {
	return t.config.ResponseTimeLimitMS
}

// RequireCredential skips the test if no usable token is configured.
func (t *T) RequireCredential() {
	if !t.config.Credential.Usable() {
		t.Debug("GitHub token is %s", t.config.Credential)
		t.SkipWithReason(config.TokenSkipReason)
	}
}

// NewGist creates a gist that is deleted when this test ends.
func (t *T) NewGist(spec fixtures.GistSpec) *fixtures.Gist {
	return fixtures.NewGist(t, t.client, spec)
}

// DumpResponse saves data to the debug directory if response dumps are
// enabled. A failure to write is logged and otherwise ignored.
func (t *T) DumpResponse(name string, data interface{}) {
	if !t.config.DumpResponses {
		return
	}
	path, err := artifacts.SaveResponse(t.config.DebugDir, name, data)
	if err != nil {
		t.Debug("Could not save response: %s", err)
		return
	}
	t.Debug("Saved response to %s", path)
}

// RequireSuccess fails the test immediately if an API call returned an error.
// Exhausted rate limits are reported as such.
func (t *T) RequireSuccess(err error) {
	if githubapi.IsRateLimited(err) {
		require.FailNow(t, "GitHub rate limit exceeded", "%s", err)
	}
	require.NoError(t, err)
}
