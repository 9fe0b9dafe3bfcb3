package forkstatus

import "encoding/json"

// Status is the fork status of a repository.
// It is either empty, for repositories that are not a fork or are
// excluded from tracking, or carries the full name of the parent
// repository.
type Status struct {
	Parent string `json:"parent,omitempty"`
}

func (s Status) IsEmpty() bool {
	return s.Parent == ""
}

// MarshalFile returns the serialized status file content.
// The content is exactly {} for an empty status and
// {"parent":"<owner>/<name>"} for everything else, no other keys are
// ever emitted.
func (s Status) MarshalFile() ([]byte, error) {
	return json.Marshal(s)
}
