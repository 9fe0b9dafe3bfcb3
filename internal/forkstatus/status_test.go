package forkstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalFileEmptyStatus(t *testing.T) {
	content, err := Status{}.MarshalFile()
	require.NoError(t, err)

	assert.Equal(t, "{}", string(content))
}

func TestMarshalFileForkStatus(t *testing.T) {
	content, err := Status{Parent: "upstream/lib"}.MarshalFile()
	require.NoError(t, err)

	assert.Equal(t, `{"parent":"upstream/lib"}`, string(content))
}

func TestParseRepository(t *testing.T) {
	repo, err := ParseRepository("testman/repo")
	require.NoError(t, err)

	assert.Equal(t, "testman", repo.Owner)
	assert.Equal(t, "repo", repo.Name)
	assert.Equal(t, "testman/repo", repo.FullName())
}

func TestParseRepositoryInvalid(t *testing.T) {
	for _, fullName := range []string{"", "repo", "/repo", "testman/"} {
		_, err := ParseRepository(fullName)
		assert.Error(t, err, "full name: %q", fullName)
	}
}
