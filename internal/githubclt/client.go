// Package githubclt provides a github API client.
package githubclt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v59/github"
	"github.com/shurcooL/githubv4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/forktracker/forktracker/internal/forkerr"
	"github.com/forktracker/forktracker/internal/logfields"
)

const DefaultHTTPClientTimeout = time.Minute

const loggerName = "github_client"

// New returns a new github api client.
func New(oauthAPItoken string) *Client {
	httpClient := newHTTPClient(oauthAPItoken)
	return &Client{
		restClt:    github.NewClient(httpClient),
		graphQLClt: githubv4.NewClient(httpClient),
		logger:     zap.L().Named(loggerName),
	}
}

func newHTTPClient(apiToken string) *http.Client {
	if apiToken == "" {
		return &http.Client{
			Timeout: DefaultHTTPClientTimeout,
		}
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: apiToken},
	)

	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = DefaultHTTPClientTimeout

	return tc
}

// Client is an github API client.
// Methods map error responses to the forkerr taxonomy: 404 responses
// are returned as errors wrapping forkerr.ErrNotFound, 409 and 422
// responses as *forkerr.ConflictError. Every other error is terminal
// for the caller, the client never retries.
type Client struct {
	restClt    *github.Client
	graphQLClt *githubv4.Client
	logger     *zap.Logger
}

// RepositoryMetadata is the fork related metadata of a repository.
// ParentFullName is empty when the repository is not a fork.
type RepositoryMetadata struct {
	IsFork         bool
	ParentFullName string
}

// RepositoryMetadata returns the fork flag and, for forks, the full
// name of the parent repository.
func (clt *Client) RepositoryMetadata(ctx context.Context, owner, repo string) (*RepositoryMetadata, error) {
	var query struct {
		Repository struct {
			IsFork githubv4.Boolean
			Parent struct {
				NameWithOwner githubv4.String
			}
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	vars := map[string]interface{}{
		"owner": githubv4.String(owner),
		"repo":  githubv4.String(repo),
	}

	if err := clt.graphQLClt.Query(ctx, &query, vars); err != nil {
		return nil, fmt.Errorf("repository metadata query failed: %w", err)
	}

	if query.Repository.IsFork && query.Repository.Parent.NameWithOwner == "" {
		return nil, errors.New("github reported the repository as fork but returned an empty parent name")
	}

	return &RepositoryMetadata{
		IsFork:         bool(query.Repository.IsFork),
		ParentFullName: string(query.Repository.Parent.NameWithOwner),
	}, nil
}

// Branch returns the SHA of the tip commit of the branch.
// If the branch does not exist an error wrapping forkerr.ErrNotFound
// is returned.
func (clt *Client) Branch(ctx context.Context, owner, repo, branch string) (string, error) {
	ref, _, err := clt.restClt.Git.GetRef(ctx, owner, repo, "heads/"+branch)
	if err != nil {
		return "", clt.wrapAPIErrors(err)
	}

	sha := ref.GetObject().GetSHA()
	if sha == "" {
		return "", errors.New("got git ref object with empty sha")
	}

	return sha, nil
}

// CreateBranch creates the branch pointing at the commit fromSHA.
func (clt *Client) CreateBranch(ctx context.Context, owner, repo, branch, fromSHA string) error {
	ref := github.Reference{
		Ref:    github.String("refs/heads/" + branch),
		Object: &github.GitObject{SHA: github.String(fromSHA)},
	}

	_, _, err := clt.restClt.Git.CreateRef(ctx, owner, repo, &ref)
	return clt.wrapAPIErrors(err)
}

// FileContent is the decoded content of a file blob together with its
// revision id.
type FileContent struct {
	Content    []byte
	RevisionID string
}

// FileContent returns the content of the file at path on ref.
// If the file does not exist an error wrapping forkerr.ErrNotFound is
// returned.
func (clt *Client) FileContent(ctx context.Context, owner, repo, path, ref string) (*FileContent, error) {
	file, _, _, err := clt.restClt.Repositories.GetContents(ctx, owner, repo, path, &github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return nil, clt.wrapAPIErrors(err)
	}

	if file == nil {
		return nil, fmt.Errorf("%q is a directory, expected a file", path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decoding content of %q failed: %w", path, err)
	}

	return &FileContent{
		Content:    []byte(content),
		RevisionID: file.GetSHA(),
	}, nil
}

// PutFileContent commits content to the file at path on the branch.
// When revisionID is not empty the write is applied as an update of
// that blob revision and fails with a *forkerr.ConflictError when the
// revision is outdated. An empty revisionID creates the file.
func (clt *Client) PutFileContent(ctx context.Context, owner, repo, path string, content []byte, branch, message, revisionID string) error {
	opts := github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		Branch:  github.String(branch),
	}

	if revisionID != "" {
		opts.SHA = github.String(revisionID)
	}

	_, _, err := clt.restClt.Repositories.UpdateFile(ctx, owner, repo, path, &opts)
	return clt.wrapAPIErrors(err)
}

// PullRequest identifies a pull request created via CreatePullRequest.
type PullRequest struct {
	Number int
	URL    string
}

// CreatePullRequest opens a pull request from head into base.
// If a pull request for the branch pair already exists github rejects
// the call and a *forkerr.ConflictError is returned.
func (clt *Client) CreatePullRequest(ctx context.Context, owner, repo, title, head, base, body string) (*PullRequest, error) {
	pr, _, err := clt.restClt.PullRequests.Create(ctx, owner, repo, &github.NewPullRequest{
		Title: github.String(title),
		Head:  github.String(head),
		Base:  github.String(base),
		Body:  github.String(body),
	})
	if err != nil {
		return nil, clt.wrapAPIErrors(err)
	}

	if pr.GetNumber() == 0 {
		return nil, errors.New("got pull request object with empty number")
	}

	return &PullRequest{
		Number: pr.GetNumber(),
		URL:    pr.GetHTMLURL(),
	}, nil
}

// UpdatePullRequestBody replaces the body of the pull request.
func (clt *Client) UpdatePullRequestBody(ctx context.Context, owner, repo string, number int, body string) error {
	_, _, err := clt.restClt.PullRequests.Edit(ctx, owner, repo, number, &github.PullRequest{Body: github.String(body)})
	return clt.wrapAPIErrors(err)
}

// CreateIssueComment creates a comment in a issue or pull request
func (clt *Client) CreateIssueComment(ctx context.Context, owner, repo string, issueOrPRNr int, comment string) error {
	_, _, err := clt.restClt.Issues.CreateComment(ctx, owner, repo, issueOrPRNr, &github.IssueComment{Body: &comment})
	return clt.wrapAPIErrors(err)
}

func (clt *Client) wrapAPIErrors(err error) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		clt.logger.Info(
			"rate limit exceeded",
			logfields.Event("github_api_rate_limit_exceeded"),
			zap.Int("github_api_rate_limit", rateLimitErr.Rate.Limit),
			zap.Time("github_api_rate_limit_reset_time", rateLimitErr.Rate.Reset.Time),
		)

		return err
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", forkerr.ErrNotFound, respErr.Message)

		case http.StatusConflict, http.StatusUnprocessableEntity:
			return forkerr.NewConflictError(err)
		}
	}

	return err
}
