package job

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusOnHold Status = "on hold"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusOnHold, StatusClosed:
		return true
	}
	return false
}

// CompanyContext carries optional free-form context attached to a
// requisition. It is forwarded verbatim to the AI analyzer and never
// interpreted locally.
type CompanyContext struct {
	Industry           string
	CompanySize        string
	ReportingStructure string
	RoleContextNotes   string
}

type Job struct {
	ID             uuid.UUID
	Title          string
	Department     string
	Location       string
	Description    string
	RequiredSkills []string
	PostedAt       time.Time
	Status         Status
	CompanyContext *CompanyContext
	CreatedAt      time.Time
}
