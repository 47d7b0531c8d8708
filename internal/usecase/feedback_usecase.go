package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/feedback"
	"talent-sonar/internal/repository"
	"talent-sonar/internal/ws"
)

type FeedbackUsecase interface {
	RecordMatchFeedback(ctx context.Context, candidateID, jobID uuid.UUID, value candidate.FeedbackValue) (candidate.FeedbackValue, error)
	HireCandidate(ctx context.Context, candidateID, jobID uuid.UUID) (candidate.Candidate, error)
}

type Feedback struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	feedback   repository.FeedbackRepository
	logger     *zap.Logger
}

func NewFeedbackUsecase(candidates repository.CandidateRepository, jobs repository.JobRepository, fb repository.FeedbackRepository, logger *zap.Logger) *Feedback {
	return &Feedback{candidates: candidates, jobs: jobs, feedback: fb, logger: logger}
}

// RecordMatchFeedback applies the thumbs-up/down toggle for one
// candidate-job pair and appends a ledger event. Submitting the value
// the pair already holds reverts it to none. The stored match score is
// never touched.
func (u *Feedback) RecordMatchFeedback(ctx context.Context, candidateID, jobID uuid.UUID, value candidate.FeedbackValue) (candidate.FeedbackValue, error) {
	if value != candidate.FeedbackPositive && value != candidate.FeedbackNegative {
		return "", ErrInvalidInput
	}

	c, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		return "", mapCandidateErr(err)
	}
	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrJobNotFound
	}

	next := feedback.Toggle(c.FeedbackFor(jobID), value)
	if err := u.feedback.SetValue(ctx, candidateID, jobID, next); err != nil {
		return "", err
	}

	evt := feedback.NewMatchQualityEvent(candidateID, jobID, next, time.Now().UTC())
	if err := u.feedback.AppendEvent(ctx, evt); err != nil {
		return "", err
	}

	ws.NotifyFeedbackRecorded(candidateID, jobID)

	if u.logger != nil {
		u.logger.Info("match feedback recorded",
			zap.String("candidate_id", candidateID.String()),
			zap.String("job_id", jobID.String()),
			zap.String("value", string(next)),
		)
	}
	return next, nil
}

// HireCandidate marks the candidate hired for the job. The operation
// is unconditional: any candidate can be hired for any job regardless
// of score, current status or job lifecycle state.
func (u *Feedback) HireCandidate(ctx context.Context, candidateID, jobID uuid.UUID) (candidate.Candidate, error) {
	if _, err := u.candidates.FindByID(ctx, candidateID); err != nil {
		return candidate.Candidate{}, mapCandidateErr(err)
	}
	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return candidate.Candidate{}, err
	}
	if !exists {
		return candidate.Candidate{}, ErrJobNotFound
	}

	hired := candidate.EmploymentHired
	if err := u.candidates.Update(ctx, candidateID, repository.CandidateUpdate{EmploymentStatus: &hired}); err != nil {
		return candidate.Candidate{}, mapCandidateErr(err)
	}

	evt := feedback.NewHireEvent(candidateID, jobID, time.Now().UTC())
	if err := u.feedback.AppendEvent(ctx, evt); err != nil {
		return candidate.Candidate{}, err
	}

	ws.NotifyCandidateHired(candidateID, jobID)

	if u.logger != nil {
		u.logger.Info("candidate hired",
			zap.String("candidate_id", candidateID.String()),
			zap.String("job_id", jobID.String()),
		)
	}

	c, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		return candidate.Candidate{}, mapCandidateErr(err)
	}
	return c, nil
}

func mapCandidateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrCandidateNotFound) {
		return ErrCandidateNotFound
	}
	return err
}
