package apitests

import (
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-automation/github-api-tests/datadriven"
	"github.com/qa-automation/github-api-tests/framework"
)

const validUsersCollection = "valid_users"

func DoDataDrivenTests(t *T) {
	t.RunTagged("multiple users", []string{framework.TagSlow}, func(t *T) {
		records, err := datadriven.LoadRecords(t.config.DataFile, validUsersCollection)
		require.NoError(t, err)
		require.NotEmpty(t, records, "no users in %s", t.config.DataFile)

		datadriven.ForEachRecord(t, records, []string{"username"}, func(t *T, r datadriven.Record) {
			username := r.String("username")
			expectedType := r.String("expected_type")
			require.NotEmpty(t, username, "record has no username")

			user, err := t.Client().GetUser(t.Ctx(), username)
			t.RequireSuccess(err)
			assert.Equal(t, strings.ToLower(username), strings.ToLower(user.Login))
			assert.Equal(t, expectedType, user.Type)
			assert.Greater(t, user.ID, int64(0))
		})
	})
}
