package ranking

import (
	"sort"

	"talent-sonar/internal/domain/job"
)

const topSkillsPerDepartment = 5

type SkillCount struct {
	Skill string
	Count int
}

type DepartmentInsight struct {
	Department string
	TopSkills  []SkillCount
}

// DepartmentSkillInsights groups jobs by department and counts
// required-skill labels across all of its jobs regardless of status.
// Labels are counted case-sensitively as written on the requisition,
// unlike match scoring which folds case. Jobs without a department are
// excluded. Each department reports its top 5 skills by count, with
// ties broken by first appearance.
func DepartmentSkillInsights(jobs []job.Job) []DepartmentInsight {
	type deptAgg struct {
		counts map[string]int
		order  []string
	}

	byDept := make(map[string]*deptAgg)
	deptOrder := make([]string, 0)

	for _, j := range jobs {
		if j.Department == "" {
			continue
		}
		agg, ok := byDept[j.Department]
		if !ok {
			agg = &deptAgg{counts: make(map[string]int)}
			byDept[j.Department] = agg
			deptOrder = append(deptOrder, j.Department)
		}
		for _, skill := range j.RequiredSkills {
			if _, seen := agg.counts[skill]; !seen {
				agg.order = append(agg.order, skill)
			}
			agg.counts[skill]++
		}
	}

	out := make([]DepartmentInsight, 0, len(byDept))
	for _, dept := range deptOrder {
		agg := byDept[dept]

		skills := make([]SkillCount, 0, len(agg.order))
		for _, s := range agg.order {
			skills = append(skills, SkillCount{Skill: s, Count: agg.counts[s]})
		}
		sort.SliceStable(skills, func(i, j int) bool {
			return skills[i].Count > skills[j].Count
		})
		if len(skills) > topSkillsPerDepartment {
			skills = skills[:topSkillsPerDepartment]
		}

		out = append(out, DepartmentInsight{Department: dept, TopSkills: skills})
	}
	return out
}

// MaxSkillCount returns the highest count across all departments. The
// presentation layer uses it for relative bar scaling.
func MaxSkillCount(insights []DepartmentInsight) int {
	max := 0
	for _, ins := range insights {
		for _, sc := range ins.TopSkills {
			if sc.Count > max {
				max = sc.Count
			}
		}
	}
	return max
}
