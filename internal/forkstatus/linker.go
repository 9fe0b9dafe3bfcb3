package forkstatus

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/go-github/v59/github"
	"go.uber.org/zap"

	"github.com/forktracker/forktracker/internal/logfields"
)

// Linker points the block annotation of every open pull request at the
// canonical fork status pull request.
type Linker struct {
	clt    GithubClient
	logger *zap.Logger
}

func NewLinker(clt GithubClient) *Linker {
	return &Linker{
		clt:    clt,
		logger: zap.L().Named("linker"),
	}
}

// Relink rewrites the block annotation in the body of every open pull
// request except the canonical one and posts a comment on each updated
// pull request.
//
// The github API does not guarantee a stable listing order, pull
// requests are therefore processed sorted ascending by number.
// Body update and comment creation are not transactional with each
// other, the body update can succeed while the comment post fails.
// The first failure terminates the remaining loop, already applied
// updates are kept.
func (l *Linker) Relink(ctx context.Context, repo Repository, canonicalNumber int) error {
	prs, err := l.listOpenPullRequests(ctx, repo)
	if err != nil {
		return fmt.Errorf("listing open pull requests failed: %w", err)
	}

	sort.Slice(prs, func(i, j int) bool { return prs[i].GetNumber() < prs[j].GetNumber() })

	for _, pr := range prs {
		if pr.GetNumber() == canonicalNumber {
			continue
		}

		if err := l.relinkPullRequest(ctx, repo, pr, canonicalNumber); err != nil {
			return fmt.Errorf("relinking pull request #%d failed: %w", pr.GetNumber(), err)
		}
	}

	return nil
}

func (l *Linker) listOpenPullRequests(ctx context.Context, repo Repository) ([]*github.PullRequest, error) {
	var result []*github.PullRequest

	it := l.clt.ListOpenPullRequests(ctx, repo.Owner, repo.Name)
	for {
		pr, err := it.Next()
		if err != nil {
			return nil, err
		}

		if pr == nil {
			return result, nil
		}

		result = append(result, pr)
	}
}

func (l *Linker) relinkPullRequest(ctx context.Context, repo Repository, pr *github.PullRequest, canonicalNumber int) error {
	body := rewriteAnnotation(pr.GetBody(), canonicalNumber)

	if err := l.clt.UpdatePullRequestBody(ctx, repo.Owner, repo.Name, pr.GetNumber(), body); err != nil {
		return fmt.Errorf("updating body failed: %w", err)
	}

	comment := fmt.Sprintf("This PR is now %s.", blockAnnotation(canonicalNumber))
	if err := l.clt.CreateIssueComment(ctx, repo.Owner, repo.Name, pr.GetNumber(), comment); err != nil {
		return fmt.Errorf("creating comment failed: %w", err)
	}

	l.logger.Debug(
		"pull request relinked",
		logfields.RepositoryOwner(repo.Owner),
		logfields.Repository(repo.Name),
		logfields.PullRequest(pr.GetNumber()),
		logfields.Event("pull_request_relinked"),
	)

	return nil
}
