package forkstatus

import (
	"context"

	"github.com/forktracker/forktracker/internal/githubclt"
)

//go:generate mockgen -source gateway.go -package mocks -destination mocks/githubclient_mock.go

// GithubClient is the gateway to the github API used by the Inspector,
// Reconciler and Linker.
// Branch and FileContent return an error wrapping forkerr.ErrNotFound
// when the object does not exist, mutating operations return a
// *forkerr.ConflictError when they are rejected because of conflicting
// remote state.
type GithubClient interface {
	RepositoryMetadata(ctx context.Context, owner, repo string) (*githubclt.RepositoryMetadata, error)
	Branch(ctx context.Context, owner, repo, branch string) (string, error)
	CreateBranch(ctx context.Context, owner, repo, branch, fromSHA string) error
	FileContent(ctx context.Context, owner, repo, path, ref string) (*githubclt.FileContent, error)
	PutFileContent(ctx context.Context, owner, repo, path string, content []byte, branch, message, revisionID string) error
	CreatePullRequest(ctx context.Context, owner, repo, title, head, base, body string) (*githubclt.PullRequest, error)
	ListOpenPullRequests(ctx context.Context, owner, repo string) githubclt.PRIterator
	UpdatePullRequestBody(ctx context.Context, owner, repo string, number int, body string) error
	CreateIssueComment(ctx context.Context, owner, repo string, issueOrPRNr int, comment string) error
}
