package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/qa-automation/github-api-tests/framework"
)

type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", color.RedString(line))
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		fmt.Printf("  %s\n", color.RedString("FAILED: %s", id))
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Printf("  %s\n", color.YellowString("SKIPPED: %s", id))
	} else {
		fmt.Printf("  %s\n", color.YellowString("SKIPPED: %s (%s)", id, reason))
	}
}

// TestCleanupError reports a problem in a test's teardown. It does not change
// the test's outcome.
func (c *ConsoleTestLogger) TestCleanupError(id framework.TestID, err error) {
	fmt.Printf("  %s\n", color.YellowString("WARNING: %s", err))
}
