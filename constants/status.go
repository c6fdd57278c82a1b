package constants

// JobStatus is the canonical status for rows in the processing history.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusSucceeded JobStatus = "SUCCEEDED" // record appended to the ledger
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)
