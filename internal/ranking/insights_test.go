package ranking

import (
	"testing"

	"github.com/google/uuid"

	"talent-sonar/internal/domain/job"
)

func deptJob(dept string, status job.Status, skills ...string) job.Job {
	return job.Job{ID: uuid.New(), Department: dept, Status: status, RequiredSkills: skills}
}

func TestDepartmentSkillInsights_CountsAndOrder(t *testing.T) {
	jobs := []job.Job{
		deptJob("Technology", job.StatusOpen, "React", "AWS"),
		deptJob("Technology", job.StatusClosed, "AWS", "Docker"),
	}

	out := DepartmentSkillInsights(jobs)

	if len(out) != 1 {
		t.Fatalf("expected 1 department, got %d", len(out))
	}
	ins := out[0]
	if ins.Department != "Technology" {
		t.Fatalf("unexpected department %q", ins.Department)
	}
	if len(ins.TopSkills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(ins.TopSkills))
	}
	if ins.TopSkills[0].Skill != "AWS" || ins.TopSkills[0].Count != 2 {
		t.Fatalf("expected AWS first with count 2, got %+v", ins.TopSkills[0])
	}
	// ties broken by first-seen order
	if ins.TopSkills[1].Skill != "React" || ins.TopSkills[2].Skill != "Docker" {
		t.Fatalf("unexpected tie order: %+v", ins.TopSkills)
	}
}

func TestDepartmentSkillInsights_CaseSensitiveLabels(t *testing.T) {
	jobs := []job.Job{
		deptJob("Design", job.StatusOpen, "figma", "Figma"),
	}

	out := DepartmentSkillInsights(jobs)

	if len(out[0].TopSkills) != 2 {
		t.Fatalf("labels must be counted case-sensitively, got %+v", out[0].TopSkills)
	}
}

func TestDepartmentSkillInsights_SkipsEmptyDepartment(t *testing.T) {
	jobs := []job.Job{
		deptJob("", job.StatusOpen, "Go"),
		deptJob("Ops", job.StatusOpen, "Terraform"),
	}

	out := DepartmentSkillInsights(jobs)

	if len(out) != 1 || out[0].Department != "Ops" {
		t.Fatalf("jobs without department must be excluded, got %+v", out)
	}
}

func TestDepartmentSkillInsights_TopFive(t *testing.T) {
	jobs := []job.Job{
		deptJob("Technology", job.StatusOpen, "A", "B", "C", "D", "E", "F", "G"),
		deptJob("Technology", job.StatusOnHold, "G"),
	}

	out := DepartmentSkillInsights(jobs)

	skills := out[0].TopSkills
	if len(skills) != 5 {
		t.Fatalf("expected top 5, got %d", len(skills))
	}
	if skills[0].Skill != "G" || skills[0].Count != 2 {
		t.Fatalf("expected G first with count 2, got %+v", skills[0])
	}
}

func TestMaxSkillCount(t *testing.T) {
	insights := []DepartmentInsight{
		{Department: "A", TopSkills: []SkillCount{{Skill: "Go", Count: 3}}},
		{Department: "B", TopSkills: []SkillCount{{Skill: "React", Count: 5}}},
	}
	if got := MaxSkillCount(insights); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}
