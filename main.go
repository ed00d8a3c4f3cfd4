package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gosuri/uitable"
	uuid "github.com/satori/go.uuid"
	"github.com/spf13/cobra"

	"github.com/qa-automation/github-api-tests/apitests"
	"github.com/qa-automation/github-api-tests/config"
	"github.com/qa-automation/github-api-tests/framework"
	"github.com/qa-automation/github-api-tests/githubapi"
)

func main() {
	var params commandParams
	cmd := &cobra.Command{
		Use:           "github-api-tests",
		Short:         "Run the GitHub REST API test suite",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := run(params)
			if err != nil {
				return err
			}
			if !ok {
				os.Exit(1)
			}
			return nil
		},
	}
	params.addFlags(cmd.Flags())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(params commandParams) (bool, error) {
	envConfig, err := config.Load(params.envFile)
	if err != nil {
		return false, err
	}
	cfg, err := params.apply(envConfig)
	if err != nil {
		return false, err
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	credential := cfg.Credential()
	client := githubapi.NewClient(githubapi.ClientOptions{
		BaseURL: cfg.APIURL,
		Token:   cfg.UsableToken(),
	})
	tagPolicy := framework.SlowTestsPolicy(params.runSlow)
	runID := uuid.NewV4().String()

	table := uitable.New()
	table.AddRow("RUN ID", runID)
	table.AddRow("API URL", client.BaseURL())
	table.AddRow("TOKEN", credential.String())
	table.AddRow("DATA FILE", cfg.DataFile)
	table.AddRow("RESPONSE TIME LIMIT", fmt.Sprintf("%dms", cfg.ResponseTimeLimitMS))
	if params.dumpResponses {
		table.AddRow("RESPONSE DUMPS", cfg.DebugDir)
	}
	fmt.Println(table)
	fmt.Println()

	framework.PrintFilterDescription(os.Stdout, params.filters, tagPolicy)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := apitests.RunTestSuite(
		apitests.SuiteConfig{
			Client:              client,
			Credential:          credential,
			DataFile:            cfg.DataFile,
			ResponseTimeLimitMS: cfg.ResponseTimeLimitMS,
			DumpResponses:       params.dumpResponses,
			DebugDir:            cfg.DebugDir,
			RunID:               runID,
			Logger:              mainDebugLogger,
		},
		params.filters.AsFilter,
		tagPolicy,
		testLogger,
	)

	fmt.Println()
	framework.PrintResults(os.Stdout, "GitHub API tests ("+runID+")", results)
	return results.OK(), nil
}
