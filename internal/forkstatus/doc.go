// Package forkstatus tracks the fork status of a repository on github.
//
// The Inspector derives the fork status from the repository metadata.
// For tracked forks the Reconciler ensures that a fixed branch, a
// status file on it and a pull request carrying the file exist.
// The Linker then points the block annotation in the body of every
// other open pull request at that canonical pull request.
//
// A run is strictly sequential and fail-fast, the first error of a
// remote operation terminates it.
package forkstatus
