package framework

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Duration time.Duration
}

type TestResult struct {
	TestID        TestID
	Errors        []error
	Skipped       bool
	SkipReason    string
	CleanupErrors []error
	Duration      time.Duration
}

func (r TestResult) Failed() bool {
	return len(r.Errors) != 0
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Skipped returns the results of all tests that were skipped, either by the
// test itself or because of filters and tags.
func (r Results) Skipped() []TestResult {
	var ret []TestResult
	for _, t := range r.Tests {
		if t.Skipped && !t.Failed() {
			ret = append(ret, t)
		}
	}
	return ret
}

// Passed returns the number of tests that ran and did not fail.
func (r Results) Passed() int {
	return len(r.Tests) - len(r.Failures) - len(r.Skipped())
}

// Find returns the result for the test with the specified ID.
func (r Results) Find(id string) (TestResult, bool) {
	for _, t := range r.Tests {
		if t.TestID.String() == id {
			return t, true
		}
	}
	return TestResult{}, false
}

func (r *Results) add(result TestResult) {
	r.Tests = append(r.Tests, result)
	if result.Failed() {
		r.Failures = append(r.Failures, result)
	}
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Plus returns the ID of a subtest of this test.
func (t TestID) Plus(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	return TestID{Path: append(append(path, t.Path...), name)}
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// reformatError drops the "Error Trace" section from testify failure messages,
// since it only points into the framework when tests run outside of go test.
func reformatError(err error) error {
	lines := strings.Split(strings.Trim(err.Error(), "\n"), "\n")
	kept := make([]string, 0, len(lines))
	inTrace := false
	for _, line := range lines {
		body := strings.TrimPrefix(line, "\t")
		if strings.HasPrefix(body, "Error Trace:") {
			inTrace = true
			continue
		}
		if inTrace && strings.TrimSpace(strings.SplitN(body, "\t", 2)[0]) == "" {
			continue
		}
		inTrace = false
		kept = append(kept, body)
	}
	if len(kept) == len(lines) {
		return err
	}
	return errors.New(strings.Join(kept, "\n"))
}
