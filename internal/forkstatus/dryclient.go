package forkstatus

import (
	"context"

	"go.uber.org/zap"

	"github.com/forktracker/forktracker/internal/githubclt"
)

// DryClient is a github client that does not do any changes on github.
// All operations that could cause a change are simulated and always
// succeed. All other operations are forwarded to a wrapped
// GithubClient.
type DryClient struct {
	clt    GithubClient
	logger *zap.Logger
}

func NewDryClient(clt GithubClient, logger *zap.Logger) *DryClient {
	return &DryClient{
		clt:    clt,
		logger: logger.Named("dry_github_client"),
	}
}

func (c *DryClient) RepositoryMetadata(ctx context.Context, owner, repo string) (*githubclt.RepositoryMetadata, error) {
	return c.clt.RepositoryMetadata(ctx, owner, repo)
}

func (c *DryClient) Branch(ctx context.Context, owner, repo, branch string) (string, error) {
	return c.clt.Branch(ctx, owner, repo, branch)
}

func (c *DryClient) CreateBranch(context.Context, string, string, string, string) error {
	c.logger.Info("simulated creating branch, no branch created on github")
	return nil
}

func (c *DryClient) FileContent(ctx context.Context, owner, repo, path, ref string) (*githubclt.FileContent, error) {
	return c.clt.FileContent(ctx, owner, repo, path, ref)
}

func (c *DryClient) PutFileContent(context.Context, string, string, string, []byte, string, string, string) error {
	c.logger.Info("simulated committing file, no commit created on github")
	return nil
}

func (c *DryClient) CreatePullRequest(context.Context, string, string, string, string, string, string) (*githubclt.PullRequest, error) {
	c.logger.Info("simulated creating pull request, no pull request created on github")

	return &githubclt.PullRequest{
		Number: 0,
		URL:    "https://github.invalid/dry-run",
	}, nil
}

func (c *DryClient) ListOpenPullRequests(ctx context.Context, owner, repo string) githubclt.PRIterator {
	return c.clt.ListOpenPullRequests(ctx, owner, repo)
}

func (c *DryClient) UpdatePullRequestBody(context.Context, string, string, int, string) error {
	c.logger.Info("simulated updating pull request body, no body changed on github")
	return nil
}

func (c *DryClient) CreateIssueComment(context.Context, string, string, int, string) error {
	c.logger.Info("simulated creating issue comment, no comment created on github")
	return nil
}
