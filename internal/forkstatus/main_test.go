package forkstatus

import (
	"testing"

	"github.com/golang/mock/gomock"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/forktracker/forktracker/internal/forkstatus/mocks"
)

const repoOwner = "testman"
const repoName = "repo"

var testRepo = Repository{Owner: repoOwner, Name: repoName}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newMockClient returns a gomock github client double and installs a
// test logger as global zap logger.
// Calls without a matching expectation fail the testcase, which also
// verifies that an operation caused no further side effects.
func newMockClient(t *testing.T) *mocks.MockGithubClient {
	t.Helper()

	t.Cleanup(zap.ReplaceGlobals(zaptest.NewLogger(t).Named(t.Name())))

	return mocks.NewMockGithubClient(gomock.NewController(t))
}
