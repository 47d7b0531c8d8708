package ranking

import (
	"sort"
	"strings"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
)

const (
	recommendedJobsLimit = 3
	recommendMinRatio    = 0.2
)

type RecommendedJob struct {
	Job   job.Job
	Score float64
}

// RecommendJobsForCandidate is the inverse-direction pass: for one
// candidate, rank open jobs by skill-overlap ratio, keep those above
// 0.2 and return the top 3. The ratio is computed on demand and never
// persisted; it is a simpler pass than the stored heuristic score.
func RecommendJobsForCandidate(c candidate.Candidate, jobs []job.Job) []RecommendedJob {
	if len(c.Skills) == 0 {
		return []RecommendedJob{}
	}

	candSet := lowerSet(c.Skills)

	out := make([]RecommendedJob, 0)
	for _, j := range jobs {
		if j.Status != job.StatusOpen {
			continue
		}
		jobSet := lowerSet(j.RequiredSkills)
		if len(jobSet) == 0 {
			continue
		}
		matched := 0
		for s := range jobSet {
			if _, ok := candSet[s]; ok {
				matched++
			}
		}
		score := float64(matched) / float64(len(jobSet))
		if score > recommendMinRatio {
			out = append(out, RecommendedJob{Job: j, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > recommendedJobsLimit {
		out = out[:recommendedJobsLimit]
	}
	return out
}

// Skill-overlap comparison here folds both sides to lowercase sets, so
// duplicated labels on either side do not inflate the ratio.
func lowerSet(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		out[strings.ToLower(s)] = struct{}{}
	}
	return out
}
