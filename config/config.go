// Package config reads harness settings from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// DefaultEnvFile is loaded, if it exists, before the environment is read.
const DefaultEnvFile = ".env"

// TokenSkipReason is reported by tests that need a credential when none is
// usable.
const TokenSkipReason = "GitHub token not configured"

const placeholderTokenPrefix = "your_token"

// Config holds settings that come from the environment. Command-line flags
// are applied on top of it.
type Config struct {
	Token               string `envconfig:"GITHUB_TOKEN"`
	APIURL              string `envconfig:"GITHUB_API_URL" default:"https://api.github.com"`
	DataFile            string `envconfig:"TEST_DATA_FILE" default:"data/test_users.json"`
	DebugDir            string `envconfig:"DEBUG_DIR" default:"debug"`
	ResponseTimeLimitMS int    `envconfig:"RESPONSE_TIME_LIMIT_MS" default:"500"`
}

// Load reads envFile into the process environment, without overriding
// variables that are already set, and then builds a Config from the
// environment. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	c := Config{}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return c, errors.Wrapf(err, "error loading %s", envFile)
		}
	}
	if err := envconfig.Process("", &c); err != nil {
		return c, errors.Wrap(err, "error getting configuration from environment")
	}
	var err error
	if c.DataFile, err = ExpandPath(c.DataFile); err != nil {
		return c, err
	}
	if c.DebugDir, err = ExpandPath(c.DebugDir); err != nil {
		return c, err
	}
	return c, nil
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	return expanded, errors.Wrapf(err, "error expanding path %q", path)
}

// CredentialStatus says whether a token can be used for requests that need
// one.
type CredentialStatus int

const (
	CredentialOK CredentialStatus = iota
	CredentialMissing
	// CredentialPlaceholder means the token is still the sample value from
	// .env.example.
	CredentialPlaceholder
)

// CheckCredential classifies a token. Surrounding whitespace is ignored.
func CheckCredential(token string) CredentialStatus {
	token = strings.TrimSpace(token)
	switch {
	case token == "":
		return CredentialMissing
	case strings.HasPrefix(token, placeholderTokenPrefix):
		return CredentialPlaceholder
	default:
		return CredentialOK
	}
}

func (s CredentialStatus) Usable() bool {
	return s == CredentialOK
}

func (s CredentialStatus) String() string {
	switch s {
	case CredentialOK:
		return "configured"
	case CredentialMissing:
		return "not set"
	case CredentialPlaceholder:
		return "placeholder value"
	default:
		return "unknown"
	}
}

// Credential reports the status of the configured token.
func (c Config) Credential() CredentialStatus {
	return CheckCredential(c.Token)
}

// UsableToken returns the token if it is usable, or "" so that requests are
// sent without credentials.
func (c Config) UsableToken() string {
	if c.Credential().Usable() {
		return strings.TrimSpace(c.Token)
	}
	return ""
}
