package forkstatus

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/forktracker/forktracker/internal/forkerr"
	"github.com/forktracker/forktracker/internal/logfields"
)

const (
	// BranchName is the fixed branch carrying the status file.
	BranchName = "fork-status"
	// FilePath is the path of the tracked status file.
	FilePath = "fork-status.json"

	commitMessage = "Update fork status file"
	prTitle       = "Track fork status"
	prBody        = "This pull request tracks the fork status of the repository in `fork-status.json`.\n\n" +
		"All other open pull requests are blocked by it."
)

// ReconcileResult identifies the canonical fork status pull request.
type ReconcileResult struct {
	URL    string
	Number int
}

// Reconciler brings the fork-status branch, the tracked status file
// and the pull request carrying it in line with a computed fork
// status.
type Reconciler struct {
	clt        GithubClient
	baseBranch string
	logger     *zap.Logger
}

func NewReconciler(clt GithubClient, baseBranch string) *Reconciler {
	return &Reconciler{
		clt:        clt,
		baseBranch: baseBranch,
		logger:     zap.L().Named("reconciler"),
	}
}

// Reconcile ensures the fork-status branch exists, commits the
// serialized status to the tracked file and opens the pull request
// from the branch into the base branch.
//
// Branch-ensure and the file write are idempotent, re-running them
// produces the same end state aside from additional commits recording
// identical content. Opening the pull request is not: when one already
// exists for the branch pair github rejects the call and the returned
// *forkerr.ConflictError terminates the run.
// Any error aborts immediately, the caller must not relink pull
// requests after a failure.
func (r *Reconciler) Reconcile(ctx context.Context, repo Repository, status Status) (*ReconcileResult, error) {
	if status.IsEmpty() {
		return nil, errors.New("refusing to reconcile an empty fork status")
	}

	logger := r.logger.With(
		logfields.RepositoryOwner(repo.Owner),
		logfields.Repository(repo.Name),
		logfields.Branch(BranchName),
	)

	if err := r.ensureBranch(ctx, repo, logger); err != nil {
		return nil, err
	}

	if err := r.writeStatusFile(ctx, repo, status, logger); err != nil {
		return nil, err
	}

	pr, err := r.clt.CreatePullRequest(ctx, repo.Owner, repo.Name, prTitle, BranchName, r.baseBranch, prBody)
	if err != nil {
		return nil, fmt.Errorf("creating pull request from %q into %q failed: %w", BranchName, r.baseBranch, err)
	}

	logger.Info(
		"fork status pull request created",
		logfields.PullRequest(pr.Number),
		zap.String("github.pull_request_url", pr.URL),
		logfields.Event("fork_status_pull_request_created"),
	)

	return &ReconcileResult{URL: pr.URL, Number: pr.Number}, nil
}

// ensureBranch creates the fork-status branch from the tip of the base
// branch when it does not exist yet.
// An existing branch is left untouched, its tip is not reset so
// commits placed on it between runs are kept.
func (r *Reconciler) ensureBranch(ctx context.Context, repo Repository, logger *zap.Logger) error {
	_, err := r.clt.Branch(ctx, repo.Owner, repo.Name, BranchName)
	if err == nil {
		logger.Debug(
			"branch exists, keeping its tip",
			logfields.Event("fork_status_branch_exists"),
		)

		return nil
	}

	if !errors.Is(err, forkerr.ErrNotFound) {
		return fmt.Errorf("looking up branch %q failed: %w", BranchName, err)
	}

	baseSHA, err := r.clt.Branch(ctx, repo.Owner, repo.Name, r.baseBranch)
	if err != nil {
		return fmt.Errorf("looking up base branch %q failed: %w", r.baseBranch, err)
	}

	if err := r.clt.CreateBranch(ctx, repo.Owner, repo.Name, BranchName, baseSHA); err != nil {
		return fmt.Errorf("creating branch %q from commit %s failed: %w", BranchName, baseSHA, err)
	}

	logger.Info(
		"branch created",
		logfields.BaseBranch(r.baseBranch),
		logfields.Commit(baseSHA),
		logfields.Event("fork_status_branch_created"),
	)

	return nil
}

// writeStatusFile commits the serialized status to the tracked file on
// the fork-status branch.
// When the file already exists its revision id is sent along with the
// update, the write then fails with a conflict instead of silently
// overwriting a revision that raced the read.
// The file is written even when the remote content already matches.
func (r *Reconciler) writeStatusFile(ctx context.Context, repo Repository, status Status, logger *zap.Logger) error {
	var revisionID string

	existing, err := r.clt.FileContent(ctx, repo.Owner, repo.Name, FilePath, BranchName)
	switch {
	case err == nil:
		revisionID = existing.RevisionID

	case errors.Is(err, forkerr.ErrNotFound):

	default:
		return fmt.Errorf("reading file %q on branch %q failed: %w", FilePath, BranchName, err)
	}

	content, err := status.MarshalFile()
	if err != nil {
		return fmt.Errorf("serializing fork status failed: %w", err)
	}

	if err := r.clt.PutFileContent(ctx, repo.Owner, repo.Name, FilePath, content, BranchName, commitMessage, revisionID); err != nil {
		return fmt.Errorf("committing file %q to branch %q failed: %w", FilePath, BranchName, err)
	}

	logger.Info(
		"status file committed",
		logfields.Path(FilePath),
		zap.ByteString("fork_status_file_content", content),
		logfields.Event("fork_status_file_committed"),
	)

	return nil
}
