package githubapi

import (
	"context"
	"net/http"
	"net/url"
)

// GistFilename is the name of the single file in every gist created by
// CreateGist.
const GistFilename = "test_file.txt"

type Gist struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	Public      bool                `json:"public"`
	Files       map[string]GistFile `json:"files"`
	HTMLURL     string              `json:"html_url"`
	CreatedAt   string              `json:"created_at"`
}

type GistFile struct {
	Filename string `json:"filename,omitempty"`
	Type     string `json:"type,omitempty"`
	Language string `json:"language,omitempty"`
	RawURL   string `json:"raw_url,omitempty"`
	Size     int    `json:"size,omitempty"`
	Content  string `json:"content"`
}

type createGistRequest struct {
	Description string              `json:"description"`
	Public      bool                `json:"public"`
	Files       map[string]GistFile `json:"files"`
}

// CreateGist creates a gist containing a single file named GistFilename.
func (c *Client) CreateGist(
	ctx context.Context,
	description string,
	content string,
	public bool,
) (Gist, error) {
	var gist Gist
	_, err := c.executeRequest(ctx, outboundRequest{
		method: http.MethodPost,
		path:   "/gists",
		reqBodyObj: createGistRequest{
			Description: description,
			Public:      public,
			Files:       map[string]GistFile{GistFilename: {Content: content}},
		},
		respObj: &gist,
	})
	return gist, err
}

// DeleteGist deletes a gist and returns the HTTP status of the response, which
// is 204 on success.
func (c *Client) DeleteGist(ctx context.Context, id string) (int, error) {
	resp, err := c.submitRequest(ctx, outboundRequest{
		method: http.MethodDelete,
		path:   "/gists/" + url.PathEscape(id),
	})
	if resp == nil {
		return 0, err
	}
	return resp.StatusCode, err
}
