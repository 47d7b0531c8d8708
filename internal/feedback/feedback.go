package feedback

import (
	"time"

	"github.com/google/uuid"

	"talent-sonar/internal/domain/candidate"
)

type EventKind string

const (
	EventMatchQuality    EventKind = "match_quality"
	EventOutcomeTracking EventKind = "outcome_tracking"
)

// Event is the structured record appended to the ledger on every
// judgment or hire. The ledger feeds a future retraining pipeline; no
// downstream consumer is wired here.
type Event struct {
	ID          uuid.UUID
	Kind        EventKind
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Judgment    string
	RecordedAt  time.Time
}

// Toggle applies the un-voting rule: setting the value a pair already
// holds reverts it to none, anything else sets the new value.
func Toggle(current, value candidate.FeedbackValue) candidate.FeedbackValue {
	if current == value {
		return candidate.FeedbackNone
	}
	return value
}

func NewMatchQualityEvent(candidateID, jobID uuid.UUID, judgment candidate.FeedbackValue, at time.Time) Event {
	return Event{
		ID:          uuid.New(),
		Kind:        EventMatchQuality,
		CandidateID: candidateID,
		JobID:       jobID,
		Judgment:    string(judgment),
		RecordedAt:  at,
	}
}

func NewHireEvent(candidateID, jobID uuid.UUID, at time.Time) Event {
	return Event{
		ID:          uuid.New(),
		Kind:        EventOutcomeTracking,
		CandidateID: candidateID,
		JobID:       jobID,
		Judgment:    "hired",
		RecordedAt:  at,
	}
}
