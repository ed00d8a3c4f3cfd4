package githubapi

import (
	"context"
	"net/http"
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// SearchOptions are optional parameters for SearchRepositories.
type SearchOptions struct {
	// PerPage is the maximum number of items to return. If undefined, the
	// server's default page size is used.
	PerPage ldvalue.OptionalInt
}

type Repository struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
}

type RepositorySearchResult struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []Repository `json:"items"`
}

// SearchRepositories runs a repository search query.
func (c *Client) SearchRepositories(
	ctx context.Context,
	query string,
	opts SearchOptions,
) (RepositorySearchResult, error) {
	params := map[string]string{"q": query}
	if opts.PerPage.IsDefined() {
		params["per_page"] = strconv.Itoa(opts.PerPage.IntValue())
	}
	var result RepositorySearchResult
	_, err := c.executeRequest(ctx, outboundRequest{
		method:      http.MethodGet,
		path:        "/search/repositories",
		queryParams: params,
		respObj:     &result,
	})
	return result, err
}
