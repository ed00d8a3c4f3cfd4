package githubapi

import (
	"context"
	"net/http"
	"net/url"
)

// User is a GitHub account, which can be either a user or an organization.
type User struct {
	Login       string `json:"login"`
	ID          int64  `json:"id"`
	NodeID      string `json:"node_id"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
}

// Account types reported in User.Type.
const (
	UserTypeUser         = "User"
	UserTypeOrganization = "Organization"
)

// GetUser fetches the public profile of the specified account.
func (c *Client) GetUser(ctx context.Context, username string) (User, error) {
	var user User
	_, err := c.executeRequest(ctx, outboundRequest{
		method:  http.MethodGet,
		path:    "/users/" + url.PathEscape(username),
		respObj: &user,
	})
	return user, err
}
