package apitests

import (
	"net/http"
	"net/url"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/qa-automation/github-api-tests/datadriven"
	"github.com/qa-automation/github-api-tests/githubapi"
	"github.com/qa-automation/github-api-tests/validators"
)

type searchCase struct {
	query      string
	minResults int
}

func (c searchCase) Params() []datadriven.Param {
	return []datadriven.Param{
		datadriven.P("query", c.query),
		datadriven.P("min_results", c.minResults),
	}
}

var searchCases = []searchCase{
	{"python", 1},
	{"javascript", 1},
	{"docker", 1},
	{"nonexistenttech123", 0},
}

func DoSearchTests(t *T) {
	t.Run("search repositories", func(t *T) {
		result, err := t.Client().SearchRepositories(t.Ctx(), "python testing",
			githubapi.SearchOptions{PerPage: ldvalue.NewOptionalInt(3)})
		t.RequireSuccess(err)
		t.DumpResponse("search_repositories", result)

		assert.LessOrEqual(t, len(result.Items), 3)
		if len(result.Items) > 0 {
			repo := result.Items[0]
			assert.NotEmpty(t, repo.Name)
			assert.NotEmpty(t, repo.HTMLURL)
			assert.GreaterOrEqual(t, repo.StargazersCount, 0)
		}
	})

	t.Run("search result matches schema", func(t *T) {
		resp, err := t.Client().MakeRequest(t.Ctx(), http.MethodGet,
			"/search/repositories?"+url.Values{"q": {"go"}, "per_page": {"1"}}.Encode())
		t.RequireSuccess(err)

		var doc interface{}
		require.NoError(t, resp.Decode(&doc))
		valid, message := validators.ValidateJSONSchema(doc, repositorySearchSchema)
		assert.True(t, valid, message)
	})

	t.Run("search queries", func(t *T) {
		datadriven.Parametrize(t, searchCases, func(t *T, c searchCase) {
			result, err := t.Client().SearchRepositories(t.Ctx(), c.query,
				githubapi.SearchOptions{PerPage: ldvalue.NewOptionalInt(5)})
			t.RequireSuccess(err)

			assert.True(t,
				validators.SatisfiesMinimumResults(result.TotalCount, len(result.Items), c.minResults),
				"query %q returned total_count=%d with %d items, expected at least %d",
				c.query, result.TotalCount, len(result.Items), c.minResults)
		})
	})
}
