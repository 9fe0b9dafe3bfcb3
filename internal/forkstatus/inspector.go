package forkstatus

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/forktracker/forktracker/internal/logfields"
)

// Inspector derives the fork status of a repository.
type Inspector struct {
	clt      GithubClient
	excluded map[string]struct{}
	logger   *zap.Logger
}

// NewInspector returns an Inspector that treats every repository whose
// full name is in excludedRepositories as untracked.
func NewInspector(clt GithubClient, excludedRepositories []string) *Inspector {
	excluded := make(map[string]struct{}, len(excludedRepositories))
	for _, name := range excludedRepositories {
		excluded[name] = struct{}{}
	}

	return &Inspector{
		clt:      clt,
		excluded: excluded,
		logger:   zap.L().Named("inspector"),
	}
}

// Evaluate returns the fork status of the repository.
// Repositories that are not a fork or that are in the exclusion set
// have an empty status.
// Evaluate is read-only, a metadata fetch failure terminates the run
// before any side effect happened.
func (i *Inspector) Evaluate(ctx context.Context, repo Repository) (Status, error) {
	logger := i.logger.With(
		logfields.RepositoryOwner(repo.Owner),
		logfields.Repository(repo.Name),
	)

	md, err := i.clt.RepositoryMetadata(ctx, repo.Owner, repo.Name)
	if err != nil {
		return Status{}, fmt.Errorf("fetching repository metadata failed: %w", err)
	}

	if !md.IsFork {
		logger.Debug(
			"repository is not a fork",
			logfields.Event("fork_inspection_not_a_fork"),
		)

		return Status{}, nil
	}

	if _, exists := i.excluded[repo.FullName()]; exists {
		logger.Info(
			"repository is a fork but excluded from tracking",
			logfields.Event("fork_inspection_repository_excluded"),
		)

		return Status{}, nil
	}

	logger.Debug(
		"repository is a tracked fork",
		zap.String("github.parent_repository", md.ParentFullName),
		logfields.Event("fork_inspection_fork_detected"),
	)

	return Status{Parent: md.ParentFullName}, nil
}
