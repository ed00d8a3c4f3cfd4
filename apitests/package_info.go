// Package apitests contains the GitHub API tests themselves and the T type
// they are written against.
//
// Infrastructure that is not specific to GitHub, such as running tests,
// filtering them and reporting results, is in the lower-level framework
// package.
package apitests
