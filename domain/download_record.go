package domain

import (
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeServed      Outcome = "served"
	OutcomeMissingName Outcome = "missing_name"
	OutcomeInvalidName Outcome = "invalid_name"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeFailed      Outcome = "failed"
	OutcomeInterrupted Outcome = "interrupted"
)

// DownloadRecord is one line of the audit trail, written for every request
// hitting the download endpoint whatever its outcome.
type DownloadRecord struct {
	ID         uuid.UUID
	Name       string
	Outcome    Outcome
	Status     int
	Bytes      int64
	MimeType   string
	RemoteAddr string
	Duration   time.Duration
	At         time.Time
}
