package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeInternal Type = "internal"
	TypePast     Type = "past"
	TypeUploaded Type = "uploaded"
)

func (t Type) Valid() bool {
	switch t {
	case TypeInternal, TypePast, TypeUploaded:
		return true
	}
	return false
}

type ProfileStatus string

const (
	ProfileComplete    ProfileStatus = "complete"
	ProfilePartial     ProfileStatus = "partial"
	ProfilePlaceholder ProfileStatus = "placeholder"
)

type EmploymentStatus string

const (
	EmploymentAvailable    EmploymentStatus = "available"
	EmploymentInterviewing EmploymentStatus = "interviewing"
	EmploymentHired        EmploymentStatus = "hired"
)

type FeedbackValue string

const (
	FeedbackPositive FeedbackValue = "positive"
	FeedbackNegative FeedbackValue = "negative"
	FeedbackNone     FeedbackValue = "none"
)

func (v FeedbackValue) Valid() bool {
	switch v {
	case FeedbackPositive, FeedbackNegative, FeedbackNone:
		return true
	}
	return false
}

// InternalProfile, PastProfile and UploadedProfile hold the
// variant-specific attributes. Exactly one of them is non-nil on a
// Candidate, matching its Type. The matching and ranking code operates
// on the shared fields only and never inspects these.
type InternalProfile struct {
	CurrentRole       string
	Department        string
	ExperienceYears   int
	PerformanceRating int
	CareerAspirations string
	DevelopmentGoals  string
	LearningAgility   int
}

type PastProfile struct {
	PreviousRoleAppliedFor string
	LastContactDate        string
	Notes                  string
}

type UploadedProfile struct {
	Summary         string
	ExperienceYears int
	FileName        string
}

type Candidate struct {
	ID     uuid.UUID
	Type   Type
	Name   string
	Email  string
	Skills []string

	Internal *InternalProfile
	Past     *PastProfile
	Uploaded *UploadedProfile

	// MatchScores and MatchRationales are keyed by job id and always
	// written together.
	MatchScores     map[uuid.UUID]int
	MatchRationales map[uuid.UUID]string
	Feedback        map[uuid.UUID]FeedbackValue

	ProfileStatus    ProfileStatus
	EmploymentStatus EmploymentStatus
	IsHiddenGem      bool

	CreatedAt time.Time
}

// Clone returns a deep copy so score merges can be expressed as
// whole-record replacement instead of in-place mutation.
func (c Candidate) Clone() Candidate {
	out := c

	out.Skills = append([]string(nil), c.Skills...)

	if c.MatchScores != nil {
		out.MatchScores = make(map[uuid.UUID]int, len(c.MatchScores))
		for k, v := range c.MatchScores {
			out.MatchScores[k] = v
		}
	}
	if c.MatchRationales != nil {
		out.MatchRationales = make(map[uuid.UUID]string, len(c.MatchRationales))
		for k, v := range c.MatchRationales {
			out.MatchRationales[k] = v
		}
	}
	if c.Feedback != nil {
		out.Feedback = make(map[uuid.UUID]FeedbackValue, len(c.Feedback))
		for k, v := range c.Feedback {
			out.Feedback[k] = v
		}
	}

	if c.Internal != nil {
		p := *c.Internal
		out.Internal = &p
	}
	if c.Past != nil {
		p := *c.Past
		out.Past = &p
	}
	if c.Uploaded != nil {
		p := *c.Uploaded
		out.Uploaded = &p
	}

	return out
}

// ScoreFor returns the stored score for the given job, with missing
// entries treated as 0.
func (c Candidate) ScoreFor(jobID uuid.UUID) int {
	if c.MatchScores == nil {
		return 0
	}
	return c.MatchScores[jobID]
}

func (c Candidate) FeedbackFor(jobID uuid.UUID) FeedbackValue {
	if c.Feedback == nil {
		return FeedbackNone
	}
	if v, ok := c.Feedback[jobID]; ok && v != "" {
		return v
	}
	return FeedbackNone
}
