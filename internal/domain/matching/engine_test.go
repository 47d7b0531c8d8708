package matching

import (
	"reflect"
	"strings"
	"testing"
)

func TestIntersect_CaseInsensitive(t *testing.T) {
	got := Intersect([]string{"React", "docker", "TYPESCRIPT"}, []string{"react", "TypeScript", "AWS"})
	want := []string{"React", "TYPESCRIPT"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestIntersect_EmptyInputs(t *testing.T) {
	if got := Intersect(nil, []string{"Go"}); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
	if got := Intersect([]string{"Go"}, nil); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
	if got := Intersect(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestScore_Baseline(t *testing.T) {
	for _, tc := range []struct {
		name      string
		job, cand []string
	}{
		{"empty job skills", nil, []string{"Go"}},
		{"empty candidate skills", []string{"Go"}, nil},
		{"both empty", nil, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := Score(tc.job, tc.cand)
			if res.Score != BaselineScore {
				t.Fatalf("expected score %d, got %d", BaselineScore, res.Score)
			}
			if res.Rationale != "Initial profile check." {
				t.Fatalf("unexpected rationale: %q", res.Rationale)
			}
		})
	}
}

func TestScore_PartialOverlap(t *testing.T) {
	job := []string{"React", "Node.js", "TypeScript", "AWS", "Agile", "Microservices"}
	cand := []string{"React", "TypeScript", "Docker"}

	res := Score(job, cand)

	// ratio 2/6 -> 15 + 25 = 40
	if res.Score != 40 {
		t.Fatalf("expected score 40, got %d", res.Score)
	}
	if !strings.Contains(res.Rationale, "React, TypeScript") {
		t.Fatalf("rationale should mention matched skills, got %q", res.Rationale)
	}
	if !strings.HasSuffix(res.Rationale, "...") {
		t.Fatalf("rationale should end with ellipsis, got %q", res.Rationale)
	}
}

func TestScore_FullOverlapCapped(t *testing.T) {
	job := []string{"Go", "PostgreSQL"}
	cand := []string{"Go", "PostgreSQL"}

	res := Score(job, cand)

	// ratio 1.0 -> raw 90, capped at 90, never 100
	if res.Score != MaxHeuristicScore {
		t.Fatalf("expected capped score %d, got %d", MaxHeuristicScore, res.Score)
	}
}

func TestScore_NoOverlap(t *testing.T) {
	res := Score([]string{"Go"}, []string{"Figma"})
	if res.Score != 15 {
		t.Fatalf("expected floor score 15, got %d", res.Score)
	}
	if res.Rationale != "Potential based on general profile." {
		t.Fatalf("unexpected rationale: %q", res.Rationale)
	}
}

func TestScore_Bounds(t *testing.T) {
	jobs := [][]string{
		{"A"}, {"A", "B"}, {"A", "B", "C"}, {"A", "B", "C", "D"},
	}
	cand := []string{"A", "C"}
	for _, job := range jobs {
		res := Score(job, cand)
		if res.Score < 15 || res.Score > 90 {
			t.Fatalf("score %d out of [15,90] for job %v", res.Score, job)
		}
	}
}

func TestScore_MonotonicInRatio(t *testing.T) {
	job := []string{"A", "B", "C", "D", "E"}
	cands := [][]string{
		{"X"}, {"A"}, {"A", "B"}, {"A", "B", "C"}, {"A", "B", "C", "D"}, {"A", "B", "C", "D", "E"},
	}
	prev := -1
	for _, cand := range cands {
		res := Score(job, cand)
		if res.Score < prev {
			t.Fatalf("score decreased from %d to %d for %v", prev, res.Score, cand)
		}
		prev = res.Score
	}
}

func TestScore_Deterministic(t *testing.T) {
	job := []string{"React", "AWS"}
	cand := []string{"react", "Terraform"}

	first := Score(job, cand)
	second := Score(job, cand)

	if first.Score != second.Score || first.Rationale != second.Rationale {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestScore_CasingInvariant(t *testing.T) {
	lower := Score([]string{"react", "aws"}, []string{"REACT"})
	upper := Score([]string{"REACT", "AWS"}, []string{"react"})
	if lower.Score != upper.Score {
		t.Fatalf("score should be casing-invariant: %d vs %d", lower.Score, upper.Score)
	}
}
