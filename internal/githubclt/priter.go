package githubclt

import (
	"context"

	"github.com/google/go-github/v59/github"
)

type PRIterator interface {
	Next() (*github.PullRequest, error)
}

type PRIter struct {
	clt *Client

	ctx   context.Context
	owner string
	repo  string

	unseen []*github.PullRequest

	nextPage int
	finished bool
}

// Next returns the next pullRequest.
// When the last result was returned a nil PullRequest is returned.
func (it *PRIter) Next() (*github.PullRequest, error) {
	if len(it.unseen) > 0 {
		result := it.unseen[0]
		it.unseen = it.unseen[1:]

		return result, nil
	}

	if it.finished {
		return nil, nil
	}

	prs, resp, err := it.clt.restClt.PullRequests.List(it.ctx, it.owner, it.repo, &github.PullRequestListOptions{
		State: "open",
		ListOptions: github.ListOptions{
			Page:    it.nextPage,
			PerPage: 100,
		},
	})
	if err != nil {
		return nil, it.clt.wrapAPIErrors(err)
	}

	if resp.NextPage == 0 || resp.PrevPage+1 == resp.LastPage || len(prs) == 0 {
		it.finished = true
	} else {
		it.nextPage = resp.NextPage
	}

	it.unseen = prs

	return it.Next()
}

// ListOpenPullRequests returns an iterator for receiving all open pull
// requests of the repository.
// The order of the returned pull requests is the order of the github
// API listing, it is not guaranteed to be stable.
func (clt *Client) ListOpenPullRequests(ctx context.Context, owner, repo string) PRIterator { // interface is returned to make the method mockable
	return &PRIter{
		clt:      clt,
		ctx:      ctx,
		owner:    owner,
		repo:     repo,
		nextPage: 1,
	}
}
