package model

// JobStatus represents the status of a conversion job
type JobStatus string

const (
	// JobStatusPending means the job is queued but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusRunning means the conversion is in progress
	JobStatusRunning JobStatus = "Running"

	// JobStatusCompleted means the job finished successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusSkipped means the job was skipped (same format or vanished source)
	JobStatusSkipped JobStatus = "Skipped"

	// JobStatusCancelled means the batch was cancelled before the job ran
	JobStatusCancelled JobStatus = "Cancelled"

	// JobStatusError means the job failed with an error
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in an active state
func (js JobStatus) IsActive() bool {
	return js == JobStatusRunning
}

// IsFinished returns true if the job is in a finished state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusSkipped ||
		js == JobStatusCancelled || js == JobStatusError
}
