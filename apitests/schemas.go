package apitests

// userSchema describes the parts of a user profile that the tests rely on.
var userSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"login", "id", "avatar_url", "type", "public_repos"},
	"properties": map[string]interface{}{
		"login":        map[string]interface{}{"type": "string", "minLength": 1},
		"id":           map[string]interface{}{"type": "integer", "minimum": 1},
		"avatar_url":   map[string]interface{}{"type": "string"},
		"type":         map[string]interface{}{"enum": []interface{}{"User", "Organization"}},
		"public_repos": map[string]interface{}{"type": "integer", "minimum": 0},
	},
}

var repositorySearchSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"total_count", "items"},
	"properties": map[string]interface{}{
		"total_count": map[string]interface{}{"type": "integer", "minimum": 0},
		"items": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"name", "html_url", "stargazers_count"},
			},
		},
	},
}
