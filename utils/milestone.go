package utils

import "github.com/elC0mpa/intra-logtime/model"

// MilestoneLabel returns the label of the highest milestone reached by hours, or "" when none is
func MilestoneLabel(hours float64, milestones []model.Milestone) string {
	label := ""
	best := -1.0
	for _, m := range milestones {
		if hours >= m.Hours && m.Hours > best {
			best = m.Hours
			label = m.Label
		}
	}
	return label
}
