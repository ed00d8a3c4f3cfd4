// Package fixtures provides remote resources that live exactly as long as the
// test that created them.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qa-automation/github-api-tests/githubapi"
)

// Scope is the part of a test context a fixture needs: assertions, a way to
// register teardown, and a debug log.
type Scope interface {
	require.TestingT
	DeferCleanup(func() error)
	Debug(message string, args ...interface{})
}

// GistService is satisfied by *githubapi.Client.
type GistService interface {
	CreateGist(ctx context.Context, description, content string, public bool) (githubapi.Gist, error)
	DeleteGist(ctx context.Context, id string) (int, error)
}

type State int

const (
	NotCreated State = iota
	Created
	Deleted
)

func (s State) String() string {
	switch s {
	case NotCreated:
		return "not created"
	case Created:
		return "created"
	case Deleted:
		return "deleted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type GistSpec struct {
	Description string
	Content     string
	Public      bool
}

const DefaultGistDescription = "Test gist for automated tests"

// DefaultGistSpec describes a private gist whose content records when it was
// made.
func DefaultGistSpec(now time.Time) GistSpec {
	return GistSpec{
		Description: DefaultGistDescription,
		Content:     fmt.Sprintf("This gist was created at %d", now.Unix()),
	}
}

// Gist is a gist owned by a single test.
type Gist struct {
	service GistService
	scope   Scope
	state   State
	gist    githubapi.Gist
}

// NewGist creates a gist and arranges for it to be deleted when the scope
// ends, however it ends. If creation fails, the test fails immediately and
// there is nothing to delete.
func NewGist(scope Scope, service GistService, spec GistSpec) *Gist {
	g := &Gist{service: service, scope: scope}
	created, err := service.CreateGist(context.Background(), spec.Description, spec.Content, spec.Public)
	require.NoError(scope, err, "error creating gist")
	require.NotEmpty(scope, created.ID, "created gist has no ID")

	g.gist = created
	g.state = Created
	scope.Debug("Created gist: %s", created.ID)
	scope.DeferCleanup(g.Release)
	return g
}

func (g *Gist) ID() string { return g.gist.ID }

// Value returns the gist as the API returned it on creation.
func (g *Gist) Value() githubapi.Gist { return g.gist }

func (g *Gist) State() State { return g.state }

// Release deletes the gist if it still exists. It is normally called by the
// scope's teardown, and calling it again has no effect. A failed delete still
// moves the fixture to Deleted so that it is never attempted twice.
func (g *Gist) Release() error {
	if g.state != Created {
		return nil
	}
	g.state = Deleted
	if _, err := g.service.DeleteGist(context.Background(), g.gist.ID); err != nil {
		return fmt.Errorf("Failed to delete gist %s: %w", g.gist.ID, err)
	}
	g.scope.Debug("Cleaned up gist: %s", g.gist.ID)
	return nil
}
