package forkstatus

import (
	"fmt"
	"strings"
)

// Repository identifies the repository a run operates on.
type Repository struct {
	Owner string
	Name  string
}

// ParseRepository parses a full repository name in owner/name notation.
func ParseRepository(fullName string) (Repository, error) {
	owner, name, found := strings.Cut(fullName, "/")
	if !found || owner == "" || name == "" {
		return Repository{}, fmt.Errorf("invalid repository name: %q, expected format: owner/name", fullName)
	}

	return Repository{Owner: owner, Name: name}, nil
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

func (r Repository) String() string {
	return r.FullName()
}
