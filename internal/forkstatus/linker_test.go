package forkstatus

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-github/v59/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forktracker/forktracker/internal/forkstatus/mocks"
	"github.com/forktracker/forktracker/internal/githubclt"
)

// staticPRIter yields a fixed list of pull requests, like a drained
// githubclt.PRIter would.
type staticPRIter struct {
	prs []*github.PullRequest
}

func (it *staticPRIter) Next() (*github.PullRequest, error) {
	if len(it.prs) == 0 {
		return nil, nil
	}

	result := it.prs[0]
	it.prs = it.prs[1:]

	return result, nil
}

var _ githubclt.PRIterator = &staticPRIter{}

func newPR(number int, body string) *github.PullRequest {
	return &github.PullRequest{
		Number: github.Int(number),
		Body:   github.String(body),
	}
}

func mockListOpenPullRequestsCall(clt *mocks.MockGithubClient, prs ...*github.PullRequest) *gomock.Call {
	return clt.EXPECT().
		ListOpenPullRequests(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName)).
		Return(&staticPRIter{prs: prs})
}

func TestRelinkRewritesLegacyAnnotationAndComments(t *testing.T) {
	clt := newMockClient(t)

	mockListOpenPullRequestsCall(clt,
		newPR(5, "Fixing bug\n\nBlocked by #3"),
		newPR(7, "fork status pull request"),
	)
	clt.EXPECT().
		UpdatePullRequestBody(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName), gomock.Eq(5), gomock.Eq("Fixing bug\n\nBlocked by #7")).
		Return(nil)
	clt.EXPECT().
		CreateIssueComment(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName), gomock.Eq(5), gomock.Eq("This PR is now Blocked by #7.")).
		Return(nil)

	err := NewLinker(clt).Relink(context.Background(), testRepo, 7)
	require.NoError(t, err)
}

func TestRelinkAppendsAnnotationWhenMissing(t *testing.T) {
	clt := newMockClient(t)

	mockListOpenPullRequestsCall(clt, newPR(12, "Adding a feature"))
	clt.EXPECT().
		UpdatePullRequestBody(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName), gomock.Eq(12), gomock.Eq("Adding a feature\n\nBlocked by #7")).
		Return(nil)
	clt.EXPECT().
		CreateIssueComment(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName), gomock.Eq(12), gomock.Any()).
		Return(nil)

	err := NewLinker(clt).Relink(context.Background(), testRepo, 7)
	require.NoError(t, err)
}

func TestRelinkSkipsCanonicalPullRequest(t *testing.T) {
	clt := newMockClient(t)

	mockListOpenPullRequestsCall(clt, newPR(7, "fork status pull request"))

	err := NewLinker(clt).Relink(context.Background(), testRepo, 7)
	require.NoError(t, err)
}

func TestRelinkProcessesSortedByNumber(t *testing.T) {
	clt := newMockClient(t)

	var order []int
	recordUpdate := func(_ context.Context, _, _ string, number int, _ string) error {
		order = append(order, number)
		return nil
	}

	mockListOpenPullRequestsCall(clt, newPR(9, ""), newPR(2, ""))
	clt.EXPECT().
		UpdatePullRequestBody(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName), gomock.Eq(2), gomock.Any()).
		DoAndReturn(recordUpdate)
	clt.EXPECT().
		UpdatePullRequestBody(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName), gomock.Eq(9), gomock.Any()).
		DoAndReturn(recordUpdate)
	clt.EXPECT().
		CreateIssueComment(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	err := NewLinker(clt).Relink(context.Background(), testRepo, 7)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 9}, order)
}

func TestRelinkAbortsOnFirstFailure(t *testing.T) {
	clt := newMockClient(t)

	// no expectations for pull request #6, the loop must stop at #4
	mockListOpenPullRequestsCall(clt, newPR(4, ""), newPR(6, ""))
	clt.EXPECT().
		UpdatePullRequestBody(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName), gomock.Eq(4), gomock.Any()).
		Return(errors.New("error mocked by TestRelinkAbortsOnFirstFailure"))

	err := NewLinker(clt).Relink(context.Background(), testRepo, 7)
	require.Error(t, err)
	assert.ErrorContains(t, err, "pull request #4")
}

func TestRelinkCommentFailureIsFatal(t *testing.T) {
	clt := newMockClient(t)

	mockListOpenPullRequestsCall(clt, newPR(5, ""))
	clt.EXPECT().
		UpdatePullRequestBody(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName), gomock.Eq(5), gomock.Any()).
		Return(nil)
	clt.EXPECT().
		CreateIssueComment(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName), gomock.Eq(5), gomock.Any()).
		Return(errors.New("error mocked by TestRelinkCommentFailureIsFatal"))

	err := NewLinker(clt).Relink(context.Background(), testRepo, 7)
	require.Error(t, err)
}

func TestRelinkListingFailureIsFatal(t *testing.T) {
	clt := newMockClient(t)

	clt.EXPECT().
		ListOpenPullRequests(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName)).
		Return(&failingPRIter{})

	err := NewLinker(clt).Relink(context.Background(), testRepo, 7)
	require.Error(t, err)
}

type failingPRIter struct{}

func (*failingPRIter) Next() (*github.PullRequest, error) {
	return nil, errors.New("error mocked by failingPRIter")
}
