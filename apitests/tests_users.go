package apitests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-automation/github-api-tests/datadriven"
	"github.com/qa-automation/github-api-tests/githubapi"
	"github.com/qa-automation/github-api-tests/validators"
)

const (
	knownUser       = "octocat"
	nonexistentUser = "nonexistentuser123456789"
)

type userTypeCase struct {
	username     string
	expectedType string
}

func (c userTypeCase) Params() []datadriven.Param {
	return []datadriven.Param{
		datadriven.P("username", c.username),
		datadriven.P("expected_type", c.expectedType),
	}
}

var userTypeCases = []userTypeCase{
	{"octocat", githubapi.UserTypeUser},
	{"github", githubapi.UserTypeOrganization},
	{"microsoft", githubapi.UserTypeOrganization},
}

func DoUserTests(t *T) {
	t.Run("get user profile", func(t *T) {
		user, err := t.Client().GetUser(t.Ctx(), knownUser)
		t.RequireSuccess(err)
		t.DumpResponse("user_profile", user)

		assert.Equal(t, knownUser, user.Login)
		assert.Greater(t, user.ID, int64(0))
		assert.NotEmpty(t, user.AvatarURL)
		assert.Contains(t, []string{githubapi.UserTypeUser, githubapi.UserTypeOrganization}, user.Type)
		assert.GreaterOrEqual(t, user.PublicRepos, 0)
	})

	t.Run("user profile matches schema", func(t *T) {
		resp, err := t.Client().MakeRequest(t.Ctx(), http.MethodGet, "/users/"+knownUser)
		t.RequireSuccess(err)

		var doc interface{}
		require.NoError(t, resp.Decode(&doc))
		valid, message := validators.ValidateJSONSchema(doc, userSchema)
		assert.True(t, valid, message)
	})

	t.Run("response time", func(t *T) {
		resp, err := t.Client().MakeRequest(t.Ctx(), http.MethodGet, "/users/"+knownUser)
		t.RequireSuccess(err)

		limit := t.ResponseTimeLimitMS()
		assert.True(t, validators.ValidateResponseTime(resp, limit),
			"Response time %dms exceeds %dms limit", resp.ElapsedTime().Milliseconds(), limit)
	})

	t.Run("nonexistent user", func(t *T) {
		_, err := t.Client().GetUser(t.Ctx(), nonexistentUser)
		require.Error(t, err, "expected an error for a nonexistent user")
		assert.True(t, githubapi.IsNotFound(err), "expected 404, got: %s", err)
	})

	t.Run("user types", func(t *T) {
		datadriven.Parametrize(t, userTypeCases, func(t *T, c userTypeCase) {
			user, err := t.Client().GetUser(t.Ctx(), c.username)
			t.RequireSuccess(err)
			assert.Equal(t, c.expectedType, user.Type,
				"%s should be %s, got %s", c.username, c.expectedType, user.Type)
		})
	})
}
