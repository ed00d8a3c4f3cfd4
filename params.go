package main

import (
	"github.com/spf13/pflag"

	"github.com/qa-automation/github-api-tests/config"
	"github.com/qa-automation/github-api-tests/framework"
)

type commandParams struct {
	envFile       string
	apiURL        string
	dataFile      string
	debugDir      string
	filters       framework.RegexFilters
	runSlow       bool
	dumpResponses bool
	debug         bool
	debugAll      bool
}

func (c *commandParams) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.envFile, "env-file", config.DefaultEnvFile, "file of environment variable settings to load if present")
	fs.StringVar(&c.apiURL, "url", "", "API base URL (overrides GITHUB_API_URL)")
	fs.StringVar(&c.dataFile, "data-file", "", "test data file, .json or .xlsx (overrides TEST_DATA_FILE)")
	fs.StringVar(&c.debugDir, "debug-dir", "", "directory for response dumps (overrides DEBUG_DIR)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.runSlow, "run-slow", false, "run tests tagged as slow")
	fs.BoolVar(&c.dumpResponses, "dump-responses", false, "save response bodies to the debug directory")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
}

// apply overlays the command-line settings on the environment configuration.
func (c *commandParams) apply(cfg config.Config) (config.Config, error) {
	if c.apiURL != "" {
		cfg.APIURL = c.apiURL
	}
	var err error
	if c.dataFile != "" {
		if cfg.DataFile, err = config.ExpandPath(c.dataFile); err != nil {
			return cfg, err
		}
	}
	if c.debugDir != "" {
		if cfg.DebugDir, err = config.ExpandPath(c.debugDir); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
