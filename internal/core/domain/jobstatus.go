package domain

import "strings"

// JobStatus is the state of an asynchronous extraction job. Upstream
// services report several synonymous tokens; every known token maps into
// this enum, and unrecognized tokens map to JobStatusUnknown, which is
// treated as still-running and remains subject to the polling ceiling.
type JobStatus int

const (
	// JobStatusUnknown is an unrecognized upstream token.
	JobStatusUnknown JobStatus = iota

	// JobStatusRunning means the job is queued or executing.
	JobStatusRunning

	// JobStatusCompleted means the job finished and a result is available.
	JobStatusCompleted

	// JobStatusFailed means the job finished unsuccessfully.
	JobStatusFailed
)

// jobStatusTokens maps every known upstream status token to its state.
var jobStatusTokens = map[string]JobStatus{
	"pending":     JobStatusRunning,
	"running":     JobStatusRunning,
	"in_progress": JobStatusRunning,
	"completed":   JobStatusCompleted,
	"success":     JobStatusCompleted,
	"finished":    JobStatusCompleted,
	"failed":      JobStatusFailed,
	"error":       JobStatusFailed,
}

// ParseJobStatus maps an upstream status token to a JobStatus.
// Matching is case-insensitive; unknown tokens yield JobStatusUnknown.
func ParseJobStatus(token string) JobStatus {
	if s, ok := jobStatusTokens[strings.ToLower(strings.TrimSpace(token))]; ok {
		return s
	}
	return JobStatusUnknown
}

// String returns the canonical name of the status.
func (s JobStatus) String() string {
	switch s {
	case JobStatusRunning:
		return "running"
	case JobStatusCompleted:
		return "completed"
	case JobStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StillRunning reports whether polling should continue.
// Unknown statuses count as still-running.
func (s JobStatus) StillRunning() bool {
	return s == JobStatusRunning || s == JobStatusUnknown
}
