package artifacts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveResponse(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "debug")
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

	path, err := saveResponseAt(dir, "user_profile", map[string]interface{}{"login": "octocat"}, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "user_profile_20240309_140507.json"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"login\": \"octocat\"\n}\n", string(content))
}

func TestSaveResponseReindentsRawJSON(t *testing.T) {
	dir := t.TempDir()
	path, err := saveResponseAt(dir, "raw", []byte(`{"a":[1,2]}`), time.Now())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n", string(content))
}

func TestSaveResponseRejectsInvalidJSON(t *testing.T) {
	_, err := SaveResponse(t.TempDir(), "raw", []byte(`{oops`))
	assert.Error(t, err)
}

func TestFileStem(t *testing.T) {
	assert.Equal(t, "users_get_user_profile", FileStem("users/get user profile"))
	assert.Equal(t, "search_query_python_", FileStem("search/[query=python]"))
	assert.Equal(t, "response", FileStem(""))
}
