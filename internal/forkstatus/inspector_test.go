package forkstatus

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forktracker/forktracker/internal/githubclt"
)

func TestEvaluateNotAFork(t *testing.T) {
	clt := newMockClient(t)
	clt.EXPECT().
		RepositoryMetadata(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName)).
		Return(&githubclt.RepositoryMetadata{IsFork: false}, nil)

	status, err := NewInspector(clt, nil).Evaluate(context.Background(), testRepo)
	require.NoError(t, err)
	assert.True(t, status.IsEmpty())
}

func TestEvaluateExcludedFork(t *testing.T) {
	clt := newMockClient(t)
	clt.EXPECT().
		RepositoryMetadata(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName)).
		Return(&githubclt.RepositoryMetadata{IsFork: true, ParentFullName: "upstream/lib"}, nil)

	inspector := NewInspector(clt, []string{"org/other", testRepo.FullName()})

	status, err := inspector.Evaluate(context.Background(), testRepo)
	require.NoError(t, err)
	assert.True(t, status.IsEmpty())
}

func TestEvaluateTrackedFork(t *testing.T) {
	clt := newMockClient(t)
	clt.EXPECT().
		RepositoryMetadata(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName)).
		Return(&githubclt.RepositoryMetadata{IsFork: true, ParentFullName: "upstream/lib"}, nil)

	inspector := NewInspector(clt, []string{"org/other"})

	status, err := inspector.Evaluate(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Equal(t, Status{Parent: "upstream/lib"}, status)
}

func TestEvaluateMetadataFetchFailureIsFatal(t *testing.T) {
	clt := newMockClient(t)
	clt.EXPECT().
		RepositoryMetadata(gomock.Any(), gomock.Eq(repoOwner), gomock.Eq(repoName)).
		Return(nil, errors.New("error mocked by TestEvaluateMetadataFetchFailureIsFatal"))

	status, err := NewInspector(clt, nil).Evaluate(context.Background(), testRepo)
	require.Error(t, err)
	assert.True(t, status.IsEmpty())
}
