package feedback

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"talent-sonar/internal/domain/candidate"
)

func TestToggle(t *testing.T) {
	cases := []struct {
		name    string
		current candidate.FeedbackValue
		value   candidate.FeedbackValue
		want    candidate.FeedbackValue
	}{
		{"set positive from none", candidate.FeedbackNone, candidate.FeedbackPositive, candidate.FeedbackPositive},
		{"set negative from none", candidate.FeedbackNone, candidate.FeedbackNegative, candidate.FeedbackNegative},
		{"repeat positive reverts", candidate.FeedbackPositive, candidate.FeedbackPositive, candidate.FeedbackNone},
		{"repeat negative reverts", candidate.FeedbackNegative, candidate.FeedbackNegative, candidate.FeedbackNone},
		{"switch vote", candidate.FeedbackPositive, candidate.FeedbackNegative, candidate.FeedbackNegative},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Toggle(tc.current, tc.value); got != tc.want {
				t.Fatalf("Toggle(%s, %s) = %s, want %s", tc.current, tc.value, got, tc.want)
			}
		})
	}
}

func TestToggle_TwiceReturnsToNone(t *testing.T) {
	state := candidate.FeedbackNone
	state = Toggle(state, candidate.FeedbackPositive)
	state = Toggle(state, candidate.FeedbackPositive)
	if state != candidate.FeedbackNone {
		t.Fatalf("double toggle should return to none, got %s", state)
	}
}

func TestNewEvents(t *testing.T) {
	candID, jobID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mq := NewMatchQualityEvent(candID, jobID, candidate.FeedbackPositive, now)
	if mq.Kind != EventMatchQuality || mq.Judgment != "positive" || !mq.RecordedAt.Equal(now) {
		t.Fatalf("unexpected match quality event: %+v", mq)
	}

	hire := NewHireEvent(candID, jobID, now)
	if hire.Kind != EventOutcomeTracking || hire.Judgment != "hired" {
		t.Fatalf("unexpected hire event: %+v", hire)
	}
	if hire.CandidateID != candID || hire.JobID != jobID {
		t.Fatalf("event must carry the pair ids: %+v", hire)
	}
}
