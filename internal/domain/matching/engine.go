package matching

import (
	"fmt"
	"math"
	"strings"
)

const (
	// BaselineScore is returned whenever either skill list is empty.
	// It marks "cannot evaluate", not "bad fit".
	BaselineScore = 10

	// MaxHeuristicScore caps the local heuristic. A perfect 100 is
	// reserved for AI-backed assessment.
	MaxHeuristicScore = 90

	baselineRationale  = "Initial profile check."
	noOverlapRationale = "Potential based on general profile."
)

type Result struct {
	Score     int
	Rationale string
	Matched   []string
}

// Intersect returns the elements of candidateSkills whose lowercase
// form appears in jobSkills, compared case-insensitively. Order and
// casing of candidateSkills are preserved. Empty inputs yield an empty
// result.
func Intersect(candidateSkills, jobSkills []string) []string {
	out := make([]string, 0, len(candidateSkills))
	if len(candidateSkills) == 0 || len(jobSkills) == 0 {
		return out
	}

	jobSet := make(map[string]struct{}, len(jobSkills))
	for _, s := range jobSkills {
		jobSet[strings.ToLower(s)] = struct{}{}
	}

	for _, s := range candidateSkills {
		if _, ok := jobSet[strings.ToLower(s)]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Score computes the deterministic heuristic match for a (job,
// candidate) pair from skill overlap. It is a pure function of its
// inputs and cannot fail.
func Score(jobSkills, candidateSkills []string) Result {
	if len(jobSkills) == 0 || len(candidateSkills) == 0 {
		return Result{Score: BaselineScore, Rationale: baselineRationale, Matched: []string{}}
	}

	matched := Intersect(candidateSkills, jobSkills)
	ratio := float64(len(matched)) / float64(len(jobSkills))

	raw := 15 + ratio*75
	if raw > MaxHeuristicScore {
		raw = MaxHeuristicScore
	}
	score := int(math.Round(raw))

	rationale := noOverlapRationale
	if len(matched) > 0 {
		top := matched
		if len(top) > 2 {
			top = top[:2]
		}
		rationale = fmt.Sprintf("Matches skills: %s...", strings.Join(top, ", "))
	}

	return Result{Score: score, Rationale: rationale, Matched: matched}
}
