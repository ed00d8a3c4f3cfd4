package apitests

import (
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-automation/github-api-tests/fixtures"
	"github.com/qa-automation/github-api-tests/githubapi"
)

func DoGistTests(t *T) {
	t.RequireCredential()

	t.Run("create gist", func(t *T) {
		spec := fixtures.DefaultGistSpec(time.Now())
		if t.config.RunID != "" {
			spec.Content += fmt.Sprintf(" (run %s)", t.config.RunID)
		}
		gist := t.NewGist(spec).Value()
		t.DumpResponse("gist", gist)

		assert.NotEmpty(t, gist.ID)
		assert.Equal(t, fixtures.DefaultGistDescription, gist.Description)
		assert.False(t, gist.Public)
		require.Contains(t, gist.Files, githubapi.GistFilename)
		assert.Contains(t, gist.Files[githubapi.GistFilename].Content, "This gist was created at")
	})

	t.Run("delete gist", func(t *T) {
		gist, err := t.Client().CreateGist(t.Ctx(), "Temporary test gist", "Content to be deleted", false)
		t.RequireSuccess(err)
		require.NotEmpty(t, gist.ID)

		status, err := t.Client().DeleteGist(t.Ctx(), gist.ID)
		t.RequireSuccess(err)
		assert.Equal(t, http.StatusNoContent, status, "Expected 204, got %d", status)
	})
}
