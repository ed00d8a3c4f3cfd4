package datadriven

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/qa-automation/github-api-tests/framework"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSONRecords(t *testing.T) {
	path := writeFile(t, "users.json", `{
		"valid_users": [
			{"username": "octocat", "expected_type": "User"},
			{"username": "github", "expected_type": "Organization", "min_repos": 10}
		],
		"other": []
	}`)

	records, err := LoadRecords(path, "valid_users")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "octocat", records[0].String("username"))
	assert.Equal(t, "Organization", records[1].String("expected_type"))
	n, err := records[1].Int("min_repos")
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestLoadJSONRecordsMissingCollection(t *testing.T) {
	path := writeFile(t, "users.json", `{"valid_users": []}`)
	_, err := LoadRecords(path, "invalid_users")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_users")
}

func TestLoadJSONRecordsBadDocument(t *testing.T) {
	_, err := LoadRecords(writeFile(t, "bad.json", `{"valid_users": 3}`), "valid_users")
	assert.Error(t, err)

	_, err = LoadRecords(writeFile(t, "bad.json", `not json`), "valid_users")
	assert.Error(t, err)

	_, err = LoadRecords(filepath.Join(t.TempDir(), "missing.json"), "valid_users")
	assert.Error(t, err)
}

func TestLoadWorkbookRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.xlsx")
	f := excelize.NewFile()
	_, err := f.NewSheet("search_queries")
	require.NoError(t, err)
	rows := [][]interface{}{
		{"query", "min_results"},
		{"python", 1},
		{},
		{"nonexistenttech123", 0},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		if len(row) > 0 {
			require.NoError(t, f.SetSheetRow("search_queries", cell, &row))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := LoadRecords(path, "search_queries")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "python", records[0].String("query"))
	n, err := records[0].Int("min_results")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = records[1].Int("min_results")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = LoadRecords(path, "no_such_sheet")
	assert.Error(t, err)
}

func TestRecordAccessors(t *testing.T) {
	r := Record{"n": float64(3), "s": "7", "f": 1.5, "bad": "x"}
	assert.Equal(t, "3", r.String("n"))
	assert.Equal(t, "", r.String("missing"))

	n, err := r.Int("s")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = r.Int("f")
	assert.Error(t, err)
	_, err = r.Int("bad")
	assert.Error(t, err)
	_, err = r.Int("missing")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "user type", Describe("user type", nil))
	assert.Equal(t, "user type [username=octocat, expected_type=User]",
		Describe("user type", []Param{P("username", "octocat"), P("expected_type", "User")}))
	assert.Equal(t, "[query=python, min_results=1]",
		Describe("", []Param{P("query", "python"), P("min_results", 1)}))
}

type searchCase struct {
	query string
	min   int
}

func (c searchCase) Params() []Param {
	return []Param{P("query", c.query), P("min_results", c.min)}
}

func TestParametrizeRunsEveryCaseIndependently(t *testing.T) {
	cases := []searchCase{{"python", 1}, {"javascript", 1}, {"nonexistenttech123", 0}}
	var seen []string
	results := framework.Run(nil, nil, nil, func(c *framework.Context) {
		Parametrize(c, cases, func(c *framework.Context, sc searchCase) {
			seen = append(seen, sc.query)
			require.NotEqual(c, "javascript", sc.query)
		})
	})

	assert.Equal(t, []string{"python", "javascript", "nonexistenttech123"}, seen)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "[query=javascript, min_results=1]", results.Failures[0].TestID.String())
	assert.Equal(t, 2, results.Passed())
}

func TestForEachRecordNamesSubtestsByLabel(t *testing.T) {
	records := []Record{
		{"username": "octocat", "expected_type": "User"},
		{"username": "github", "expected_type": "Organization"},
	}
	results := framework.Run(nil, nil, nil, func(c *framework.Context) {
		c.Run("users", func(c *framework.Context) {
			ForEachRecord(c, records, []string{"username"}, func(c *framework.Context, r Record) {
				require.Equal(c, "User", r.String("expected_type"))
			})
		})
	})

	require.Len(t, results.Tests, 2)
	assert.Equal(t, "users/[username=octocat]", results.Tests[0].TestID.String())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "users/[username=github]", results.Failures[0].TestID.String())
}

func TestForEachRecordFallsBackToPosition(t *testing.T) {
	results := framework.Run(nil, nil, nil, func(c *framework.Context) {
		ForEachRecord(c, []Record{{}}, nil, func(*framework.Context, Record) {})
	})

	_, ok := results.Find("record 1")
	assert.True(t, ok)
}
