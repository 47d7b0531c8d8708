package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	EventScoresUpdated    = "scores_updated"
	EventFeedbackRecorded = "feedback_recorded"
	EventCandidateHired   = "candidate_hired"
)

type DashboardEvent struct {
	Type        string `json:"type"`
	JobID       string `json:"job_id,omitempty"`
	CandidateID string `json:"candidate_id,omitempty"`
	Timestamp   string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyScoresUpdated tells connected dashboards that match scores
// changed for the given job. A nil job id means a pool-wide re-score.
func NotifyScoresUpdated(jobID uuid.UUID) {
	notify(DashboardEvent{Type: EventScoresUpdated, JobID: idOrEmpty(jobID)})
}

func NotifyFeedbackRecorded(candidateID, jobID uuid.UUID) {
	notify(DashboardEvent{
		Type:        EventFeedbackRecorded,
		CandidateID: idOrEmpty(candidateID),
		JobID:       idOrEmpty(jobID),
	})
}

func NotifyCandidateHired(candidateID, jobID uuid.UUID) {
	notify(DashboardEvent{
		Type:        EventCandidateHired,
		CandidateID: idOrEmpty(candidateID),
		JobID:       idOrEmpty(jobID),
	})
}

func notify(evt DashboardEvent) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func idOrEmpty(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
