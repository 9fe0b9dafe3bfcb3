package githubclt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v59/github"
	"github.com/shurcooL/githubv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/forktracker/forktracker/internal/forkerr"
)

func newRESTTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Cleanup(zap.ReplaceGlobals(zaptest.NewLogger(t).Named(t.Name())))

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	restClt := github.NewClient(srv.Client())
	baseURL, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	restClt.BaseURL = baseURL

	return &Client{
		restClt: restClt,
		logger:  zap.L(),
	}
}

func newGraphQLTestClient(t *testing.T, response string) *Client {
	t.Cleanup(zap.ReplaceGlobals(zaptest.NewLogger(t).Named(t.Name())))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))

	t.Cleanup(srv.Close)

	return &Client{
		graphQLClt: githubv4.NewEnterpriseClient(srv.URL, srv.Client()),
		logger:     zap.L(),
	}
}

func TestBranchNotFound(t *testing.T) {
	clt := newRESTTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	})

	sha, err := clt.Branch(context.Background(), "testman", "repo", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, forkerr.ErrNotFound)
	assert.Empty(t, sha)
}

func TestCreatePullRequestConflict(t *testing.T) {
	clt := newRESTTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "Validation Failed", "errors": [{"message": "A pull request already exists"}]}`))
	})

	pr, err := clt.CreatePullRequest(context.Background(), "testman", "repo", "title", "fork-status", "main", "body")
	require.Error(t, err)
	assert.Nil(t, pr)

	var conflictErr *forkerr.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestServerErrorsAreNotWrapped(t *testing.T) {
	clt := newRESTTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := clt.Branch(context.Background(), "testman", "repo", "main")
	require.Error(t, err)
	assert.NotErrorIs(t, err, forkerr.ErrNotFound)

	var conflictErr *forkerr.ConflictError
	assert.False(t, errors.As(err, &conflictErr))
}

func TestRepositoryMetadataFork(t *testing.T) {
	clt := newGraphQLTestClient(t, `{"data": {"repository": {"isFork": true, "parent": {"nameWithOwner": "upstream/lib"}}}}`)

	md, err := clt.RepositoryMetadata(context.Background(), "testman", "lib")
	require.NoError(t, err)

	assert.True(t, md.IsFork)
	assert.Equal(t, "upstream/lib", md.ParentFullName)
}

func TestRepositoryMetadataNotAFork(t *testing.T) {
	clt := newGraphQLTestClient(t, `{"data": {"repository": {"isFork": false, "parent": null}}}`)

	md, err := clt.RepositoryMetadata(context.Background(), "testman", "lib")
	require.NoError(t, err)

	assert.False(t, md.IsFork)
	assert.Empty(t, md.ParentFullName)
}
