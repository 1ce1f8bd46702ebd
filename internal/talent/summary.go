package talent

import "sort"

const topSkillsCount = 3

// Summary aggregates pipeline analytics across the whole candidate collection.
type Summary struct {
	Stages    []StageCount
	TopSkills []SkillCount
}

type StageCount struct {
	Stage string
	Count int
}

type SkillCount struct {
	Skill string
	Count int
}

// Summarize counts candidates per pipeline stage and ranks the most frequent
// skills. Stages keep first-seen order; candidates without a stage count under
// StageUnknown. Skill ties keep first-seen order as well.
func Summarize(c *Candidates) *Summary {
	stageCounts := make(map[string]int)
	stageOrder := make([]string, 0)
	skillCounts := make(map[string]int)
	skillOrder := make([]string, 0)

	for _, candidate := range c.Items {
		stage := candidate.Stage
		if stage == "" {
			stage = StageUnknown
		}

		if _, seen := stageCounts[stage]; !seen {
			stageOrder = append(stageOrder, stage)
		}
		stageCounts[stage]++

		for _, skill := range candidate.Skills {
			if _, seen := skillCounts[skill]; !seen {
				skillOrder = append(skillOrder, skill)
			}
			skillCounts[skill]++
		}
	}

	summary := &Summary{
		Stages:    make([]StageCount, 0, len(stageOrder)),
		TopSkills: make([]SkillCount, 0, len(skillOrder)),
	}

	for _, stage := range stageOrder {
		summary.Stages = append(summary.Stages, StageCount{Stage: stage, Count: stageCounts[stage]})
	}

	for _, skill := range skillOrder {
		summary.TopSkills = append(summary.TopSkills, SkillCount{Skill: skill, Count: skillCounts[skill]})
	}

	sort.SliceStable(summary.TopSkills, func(i, j int) bool {
		return summary.TopSkills[i].Count > summary.TopSkills[j].Count
	})

	if len(summary.TopSkills) > topSkillsCount {
		summary.TopSkills = summary.TopSkills[:topSkillsCount]
	}

	return summary
}
