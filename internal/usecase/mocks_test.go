package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
	"talent-sonar/internal/feedback"
	"talent-sonar/internal/repository"
)

type mockJobRepo struct {
	jobs     []job.Job
	inserted []job.Job
	statuses map[uuid.UUID]job.Status
	err      error
}

func (m *mockJobRepo) Insert(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, j)
	m.jobs = append(m.jobs, j)
	return nil
}

func (m *mockJobRepo) FindByID(_ context.Context, jobID uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	for _, j := range m.jobs {
		if j.ID == jobID {
			if m.statuses != nil {
				if s, ok := m.statuses[jobID]; ok {
					j.Status = s
				}
			}
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) ExistsByID(_ context.Context, jobID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, j := range m.jobs {
		if j.ID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockJobRepo) List(context.Context, repository.JobFilter) ([]job.Job, error) {
	return m.jobs, m.err
}

func (m *mockJobRepo) UpdateStatus(_ context.Context, jobID uuid.UUID, status job.Status) error {
	if m.err != nil {
		return m.err
	}
	found := false
	for _, j := range m.jobs {
		if j.ID == jobID {
			found = true
		}
	}
	if !found {
		return repository.ErrJobNotFound
	}
	if m.statuses == nil {
		m.statuses = make(map[uuid.UUID]job.Status)
	}
	m.statuses[jobID] = status
	return nil
}

func (m *mockJobRepo) CountAll(context.Context) (int, error) {
	return len(m.jobs), m.err
}

type mockCandidateRepo struct {
	candidates []candidate.Candidate
	inserted   []candidate.Candidate
	updates    map[uuid.UUID][]repository.CandidateUpdate
	err        error
}

func (m *mockCandidateRepo) InsertBatch(_ context.Context, batch []candidate.Candidate) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, batch...)
	m.candidates = append(m.candidates, batch...)
	return nil
}

func (m *mockCandidateRepo) FindByID(_ context.Context, id uuid.UUID) (candidate.Candidate, error) {
	if m.err != nil {
		return candidate.Candidate{}, m.err
	}
	for _, c := range m.candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return candidate.Candidate{}, repository.ErrCandidateNotFound
}

func (m *mockCandidateRepo) ListAll(context.Context) ([]candidate.Candidate, error) {
	return m.candidates, m.err
}

func (m *mockCandidateRepo) ListByType(_ context.Context, t candidate.Type) ([]candidate.Candidate, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]candidate.Candidate, 0)
	for _, c := range m.candidates {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCandidateRepo) Update(_ context.Context, id uuid.UUID, upd repository.CandidateUpdate) error {
	if m.err != nil {
		return m.err
	}
	for i, c := range m.candidates {
		if c.ID != id {
			continue
		}
		if m.updates == nil {
			m.updates = make(map[uuid.UUID][]repository.CandidateUpdate)
		}
		m.updates[id] = append(m.updates[id], upd)
		if upd.EmploymentStatus != nil {
			m.candidates[i].EmploymentStatus = *upd.EmploymentStatus
		}
		if upd.IsHiddenGem != nil {
			m.candidates[i].IsHiddenGem = *upd.IsHiddenGem
		}
		if upd.Skills != nil {
			m.candidates[i].Skills = upd.Skills
		}
		return nil
	}
	return repository.ErrCandidateNotFound
}

type mockScoreRepo struct {
	upserts []repository.MatchScoreUpsert
	err     error
}

func (m *mockScoreRepo) Upsert(_ context.Context, u repository.MatchScoreUpsert) error {
	if m.err != nil {
		return m.err
	}
	m.upserts = append(m.upserts, u)
	return nil
}

func (m *mockScoreRepo) UpsertBatch(_ context.Context, batch []repository.MatchScoreUpsert) error {
	if m.err != nil {
		return m.err
	}
	m.upserts = append(m.upserts, batch...)
	return nil
}

type mockFeedbackRepo struct {
	values map[string]candidate.FeedbackValue
	events []feedback.Event
	err    error
}

func fbKey(candidateID, jobID uuid.UUID) string {
	return candidateID.String() + ":" + jobID.String()
}

func (m *mockFeedbackRepo) SetValue(_ context.Context, candidateID, jobID uuid.UUID, value candidate.FeedbackValue) error {
	if m.err != nil {
		return m.err
	}
	if m.values == nil {
		m.values = make(map[string]candidate.FeedbackValue)
	}
	m.values[fbKey(candidateID, jobID)] = value
	return nil
}

func (m *mockFeedbackRepo) AppendEvent(_ context.Context, evt feedback.Event) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, evt)
	return nil
}

type mockCache struct {
	store       map[string][]byte
	invalidated int
}

func (m *mockCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (m *mockCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }

func (m *mockCache) InvalidateScores(context.Context) error {
	m.invalidated++
	return nil
}
