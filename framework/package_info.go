// Package framework contains the low-level implementation of the test runner that the
// API test suite is built on.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T, allowing
// pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Assertions from testify's assert and require packages work
// with it.
//
// 2. Tests run one at a time, in the order they are defined. Each test can defer any
// number of cleanup functions, which run when the test ends no matter how it ends. A
// cleanup that fails is reported separately and does not change the test's result.
//
// 3. Tests can be excluded by name filters, or by tags that are disabled for the run
// (such as "slow"). Excluded tests are reported as skipped and their bodies never run.
//
// The domain-specific code that knows what is being tested is responsible for providing
// a test API on top of the test context.
package framework
