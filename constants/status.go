package constants

// LoadStatus is the lifecycle status of a load.
type LoadStatus string

const (
	LoadStatusPlanned   LoadStatus = "planned"
	LoadStatusInTransit LoadStatus = "in_transit"
	LoadStatusCompleted LoadStatus = "completed"
	LoadStatusCanceled  LoadStatus = "canceled"
)

// LoadStatuses lists the valid load lifecycle values.
var LoadStatuses = []string{
	string(LoadStatusPlanned),
	string(LoadStatusInTransit),
	string(LoadStatusCompleted),
	string(LoadStatusCanceled),
}

// ValidLoadStatus reports whether s is one of the known load statuses.
func ValidLoadStatus(s string) bool {
	switch LoadStatus(s) {
	case LoadStatusPlanned, LoadStatusInTransit, LoadStatusCompleted, LoadStatusCanceled:
		return true
	}
	return false
}

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusOCROK   JobStatus = "OCR_OK"   // stage 1 completed (text acquired)
	JobStatusParsed  JobStatus = "PARSE_OK" // stage 2 completed (fields parsed)
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)
