package scoring

import (
	"github.com/google/uuid"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
	"talent-sonar/internal/domain/matching"
)

const (
	StrongThreshold = 70
	GoodThreshold   = 50
)

// JobMatchStats summarizes how the existing candidate pool scored
// against a newly added job.
type JobMatchStats struct {
	Strong int
	Good   int
	Total  int
}

// CandidateMatchStats summarizes how a batch of newly ingested
// candidates scored across all known jobs. A candidate counts in the
// tier of its best score.
type CandidateMatchStats struct {
	StrongMatch int
	GoodMatch   int
}

// ScoreAllForNewJob merges a heuristic score and rationale keyed by the
// new job's id into every candidate. Entries for other jobs are left
// untouched. The returned stats are computed over the candidate set as
// it existed before this job was added; the returned slice holds deep
// copies so callers can swap state atomically.
func ScoreAllForNewJob(j job.Job, candidates []candidate.Candidate) ([]candidate.Candidate, JobMatchStats) {
	stats := JobMatchStats{Total: len(candidates)}

	updated := make([]candidate.Candidate, 0, len(candidates))
	for _, c := range candidates {
		res := matching.Score(j.RequiredSkills, c.Skills)
		updated = append(updated, mergeScore(c, j.ID, res.Score, res.Rationale))

		switch {
		case res.Score >= StrongThreshold:
			stats.Strong++
		case res.Score >= GoodThreshold:
			stats.Good++
		}
	}

	return updated, stats
}

// ScoreAllForNewCandidates scores each new candidate against every
// known job, merging into the candidate's (possibly empty) score map.
func ScoreAllForNewCandidates(newCandidates []candidate.Candidate, jobs []job.Job) ([]candidate.Candidate, CandidateMatchStats) {
	var stats CandidateMatchStats

	scored := make([]candidate.Candidate, 0, len(newCandidates))
	for _, c := range newCandidates {
		out := c.Clone()
		best := 0
		for _, j := range jobs {
			res := matching.Score(j.RequiredSkills, out.Skills)
			out = mergeScore(out, j.ID, res.Score, res.Rationale)
			if res.Score > best {
				best = res.Score
			}
		}
		scored = append(scored, out)

		if len(jobs) == 0 {
			continue
		}
		switch {
		case best >= StrongThreshold:
			stats.StrongMatch++
		case best >= GoodThreshold:
			stats.GoodMatch++
		}
	}

	return scored, stats
}

// RescoreCandidate recomputes the heuristic entry for every given job.
// Used only when the re-score-on-edit policy is enabled.
func RescoreCandidate(c candidate.Candidate, jobs []job.Job) candidate.Candidate {
	out := c.Clone()
	for _, j := range jobs {
		res := matching.Score(j.RequiredSkills, out.Skills)
		out = mergeScore(out, j.ID, res.Score, res.Rationale)
	}
	return out
}

// mergeScore writes score and rationale together; one is never stored
// without the other.
func mergeScore(c candidate.Candidate, jobID uuid.UUID, score int, rationale string) candidate.Candidate {
	out := c.Clone()
	if out.MatchScores == nil {
		out.MatchScores = make(map[uuid.UUID]int)
	}
	if out.MatchRationales == nil {
		out.MatchRationales = make(map[uuid.UUID]string)
	}
	out.MatchScores[jobID] = score
	out.MatchRationales[jobID] = rationale
	return out
}
