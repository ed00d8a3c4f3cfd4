package apitests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-automation/github-api-tests/config"
	"github.com/qa-automation/github-api-tests/framework"
	"github.com/qa-automation/github-api-tests/githubapi"
)

func suiteConfig(t *testing.T, baseURL, token string) SuiteConfig {
	dataFile := filepath.Join(t.TempDir(), "test_users.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(`{"valid_users": [
		{"username": "octocat", "expected_type": "User"},
		{"username": "GitHub", "expected_type": "Organization"}
	]}`), 0o644))

	return SuiteConfig{
		Client:              githubapi.NewClient(githubapi.ClientOptions{BaseURL: baseURL, Token: token}),
		Credential:          config.CheckCredential(token),
		DataFile:            dataFile,
		ResponseTimeLimitMS: 10000,
		DebugDir:            t.TempDir(),
		RunID:               "test-run",
	}
}

func failureMessages(results framework.Results) []string {
	var ret []string
	for _, f := range results.Failures {
		for _, err := range f.Errors {
			ret = append(ret, f.TestID.String()+": "+err.Error())
		}
	}
	return ret
}

func TestSuiteWithoutCredentialOrSlowTests(t *testing.T) {
	fake := newFakeGitHub()
	server := fake.start()
	defer server.Close()

	results := RunTestSuite(suiteConfig(t, server.URL, ""), nil, framework.SlowTestsPolicy(false), nil)

	assert.Empty(t, failureMessages(results))

	gists, ok := results.Find("gists")
	require.True(t, ok)
	assert.True(t, gists.Skipped)
	assert.Equal(t, "GitHub token not configured", gists.SkipReason)

	slow, ok := results.Find("data driven/multiple users")
	require.True(t, ok)
	assert.True(t, slow.Skipped)
	assert.Equal(t, "Need --run-slow option to run", slow.SkipReason)

	_, ok = results.Find("search/search queries/[query=nonexistenttech123, min_results=0]")
	assert.True(t, ok)
	assert.Empty(t, fake.createdGists)
}

func TestSuiteWithCredentialAndSlowTests(t *testing.T) {
	fake := newFakeGitHub()
	server := fake.start()
	defer server.Close()

	cfg := suiteConfig(t, server.URL, "ghp_fake")
	cfg.DumpResponses = true
	results := RunTestSuite(cfg, nil, framework.SlowTestsPolicy(true), nil)

	assert.Empty(t, failureMessages(results))
	assert.Empty(t, results.Skipped())

	_, ok := results.Find("data driven/multiple users/[username=GitHub]")
	assert.True(t, ok)

	assert.Len(t, fake.createdGists, 2)
	assert.ElementsMatch(t, fake.createdGists, fake.deletedGists)

	dumps, err := filepath.Glob(filepath.Join(cfg.DebugDir, "user_profile_*.json"))
	require.NoError(t, err)
	assert.Len(t, dumps, 1)
}

func TestSuiteReportsAPIFailures(t *testing.T) {
	fake := newFakeGitHub()
	fake.accounts["github"] = "User"
	server := fake.start()
	defer server.Close()

	results := RunTestSuite(suiteConfig(t, server.URL, ""), nil, framework.SlowTestsPolicy(false), nil)

	require.Len(t, results.Failures, 1)
	assert.Equal(t, "users/user types/[username=github, expected_type=Organization]",
		results.Failures[0].TestID.String())
}

func TestSuiteFilter(t *testing.T) {
	fake := newFakeGitHub()
	server := fake.start()
	defer server.Close()

	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("rate limit"))
	results := RunTestSuite(suiteConfig(t, server.URL, ""), filters.AsFilter, nil, nil)

	assert.True(t, results.OK())
	assert.Equal(t, 1, results.Passed())
	users, _ := results.Find("users")
	assert.Equal(t, "excluded by filter parameters", users.SkipReason)
}
