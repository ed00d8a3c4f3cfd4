package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
	tagPolicy  TagPolicy
}

// Context is the framework's equivalent of *testing.T. It implements the
// require.TestingT interface, so assertions from testify's assert and require
// packages can be used with it directly.
type Context struct {
	env           *environment
	id            TestID
	debugLogger   CapturingLogger
	failed        bool
	skipped       bool
	skipReason    string
	hasChildren   bool
	errors        []error
	cleanups      []func() error
	cleanupErrors []error
	cleaningUp    bool
}

// Run executes a test suite. The action receives the root Context, which
// should call Run or RunTagged to define the actual tests.
//
// Tests run sequentially in the order they are defined. A test's deferred
// cleanups always run before the next test starts.
func Run(
	filter Filter,
	tagPolicy TagPolicy,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		tagPolicy:  tagPolicy,
		testLogger: testLogger,
	}
	started := time.Now()
	c := &Context{env: env}
	c.run(action)
	env.results.Duration = time.Since(started)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	started := time.Now()
	defer func() {
		c.recoverFrom(recover())
		c.runCleanups()
		if len(c.id.Path) == 0 || (c.hasChildren && !c.failed && !c.skipped) {
			// Groups of tests are only reported if they fail on their own.
			return
		}
		c.env.results.add(TestResult{
			TestID:        c.id,
			Errors:        c.errors,
			Skipped:       c.skipped,
			SkipReason:    c.skipReason,
			CleanupErrors: c.cleanupErrors,
			Duration:      time.Since(started),
		})
	}()

	action(c)
}

func (c *Context) recoverFrom(r interface{}) {
	if r == nil || c.skipped {
		return
	}
	c.failed = true
	var addError error
	if _, ok := r.(*Context); ok {
		if len(c.errors) == 0 {
			addError = errors.New("test failed with no failure message")
		}
	} else {
		addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
	}
	if addError != nil {
		c.errors = append(c.errors, addError)
		c.env.testLogger.TestError(c.id, addError)
	}
}

func (c *Context) runCleanups() {
	c.cleaningUp = true
	defer func() { c.cleaningUp = false }()
	for len(c.cleanups) > 0 {
		last := len(c.cleanups) - 1
		cleanup := c.cleanups[last]
		c.cleanups = c.cleanups[:last]
		if err := c.runCleanup(cleanup); err != nil {
			c.addCleanupError(err)
		}
	}
}

func (c *Context) addCleanupError(err error) {
	c.cleanupErrors = append(c.cleanupErrors, err)
	c.env.testLogger.TestCleanupError(c.id, err)
}

func (c *Context) runCleanup(cleanup func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Context); ok {
				err = errors.New("cleanup tried to end the test")
			} else {
				err = fmt.Errorf("unexpected panic in cleanup: %+v", r)
			}
		}
	}()
	return cleanup()
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (c *Context) Run(name string, action func(*Context)) {
	c.RunTagged(name, nil, action)
}

// RunTagged runs a subtest that carries the specified tags. If the TagPolicy
// for this test run disables any of the tags, the subtest is reported as
// skipped and its action is never called.
func (c *Context) RunTagged(name string, tags []string, action func(*Context)) {
	id := c.id.Plus(name)
	c.hasChildren = true

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.skip(id, "excluded by filter parameters")
		return
	}
	if reason, disabled := c.env.tagPolicy.Disabled(tags); disabled {
		c.env.skip(id, reason)
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

func (e *environment) skip(id TestID, reason string) {
	e.results.add(TestResult{TestID: id, Skipped: true, SkipReason: reason})
	e.testLogger.TestSkipped(id, reason)
}

// Errorf records a failure. Assertions made by deferred cleanup functions are
// recorded as cleanup errors instead, so they do not fail the test.
func (c *Context) Errorf(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	if c.cleaningUp {
		c.addCleanupError(reformatError(err))
		return
	}
	c.failed = true
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer schedules a function to be run at the end of the test, whether it
// passes, fails, panics or is skipped. Deferred functions run in reverse order.
func (c *Context) Defer(cleanup func()) {
	c.DeferCleanup(func() error {
		cleanup()
		return nil
	})
}

// DeferCleanup is like Defer, but the function can report an error. Such
// errors are passed to TestLogger.TestCleanupError and recorded in
// TestResult.CleanupErrors; they never change whether the test passed.
func (c *Context) DeferCleanup(cleanup func() error) {
	c.cleanups = append(c.cleanups, cleanup)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
