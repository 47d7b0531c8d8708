package ranking

import (
	"testing"

	"github.com/google/uuid"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
)

func openJob(title string, skills ...string) job.Job {
	return job.Job{ID: uuid.New(), Title: title, Status: job.StatusOpen, RequiredSkills: skills}
}

func TestRecommendJobsForCandidate_OpenJobsOnly(t *testing.T) {
	closed := openJob("closed", "Go")
	closed.Status = job.StatusClosed
	onHold := openJob("on hold", "Go")
	onHold.Status = job.StatusOnHold

	c := candidate.Candidate{ID: uuid.New(), Skills: []string{"Go"}}

	out := RecommendJobsForCandidate(c, []job.Job{closed, onHold, openJob("open", "Go")})

	if len(out) != 1 || out[0].Job.Title != "open" {
		t.Fatalf("only open jobs may be recommended, got %+v", out)
	}
}

func TestRecommendJobsForCandidate_ThresholdAndOrder(t *testing.T) {
	c := candidate.Candidate{ID: uuid.New(), Skills: []string{"go", "docker"}}

	jobs := []job.Job{
		openJob("full", "Go", "Docker"),            // 1.0
		openJob("half", "Go", "Kubernetes"),        // 0.5
		openJob("fifth", "Go", "B", "C", "D", "E"), // 0.2, excluded (strictly >)
		openJob("none", "Figma"),                   // 0
	}

	out := RecommendJobsForCandidate(c, jobs)

	if len(out) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(out))
	}
	if out[0].Job.Title != "full" || out[1].Job.Title != "half" {
		t.Fatalf("unexpected order: %s, %s", out[0].Job.Title, out[1].Job.Title)
	}
	if out[0].Score != 1.0 {
		t.Fatalf("expected score 1.0, got %f", out[0].Score)
	}
}

func TestRecommendJobsForCandidate_TopThree(t *testing.T) {
	c := candidate.Candidate{ID: uuid.New(), Skills: []string{"Go"}}
	jobs := []job.Job{
		openJob("a", "Go"), openJob("b", "Go"), openJob("c", "Go"), openJob("d", "Go"),
	}

	out := RecommendJobsForCandidate(c, jobs)

	if len(out) != 3 {
		t.Fatalf("expected top 3, got %d", len(out))
	}
}

func TestRecommendJobsForCandidate_NoSkills(t *testing.T) {
	out := RecommendJobsForCandidate(candidate.Candidate{ID: uuid.New()}, []job.Job{openJob("a", "Go")})
	if len(out) != 0 {
		t.Fatalf("candidate without skills gets no recommendations, got %+v", out)
	}
}

func TestRecommendJobsForCandidate_DedupedLabels(t *testing.T) {
	c := candidate.Candidate{ID: uuid.New(), Skills: []string{"Go", "go", "GO"}}
	jobs := []job.Job{openJob("dup", "Go", "Go", "Rust", "rust")}

	out := RecommendJobsForCandidate(c, jobs)

	// unique job skills {go, rust}, matched {go} -> 0.5
	if len(out) != 1 || out[0].Score != 0.5 {
		t.Fatalf("expected deduped ratio 0.5, got %+v", out)
	}
}
