package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/spigell/hr-agent/internal/talent"
)

// Criteria is the scoring vocabulary for one search. Pointer fields mean
// "no constraint" when nil.
type Criteria struct {
	RequiredSkills         []string
	Location               string
	MinExp                 *int
	MaxExp                 *int
	AvailabilityWindowDays *int
}

// Score rates one candidate against the criteria. Rules are additive and
// independent; each triggered rule appends one human-readable reason. The
// reference date is injected so scoring stays deterministic.
//
// Points: +2 per matched required skill (one combined reason), +1 exact
// location match, +1 experience within the min/max range with a year of slack
// on both ends, +1 availability date within the window counted from today.
func Score(c *talent.Candidate, crit Criteria, today time.Time) (int, []string) {
	score := 0
	reasons := []string{}

	if len(crit.RequiredSkills) > 0 {
		matched := make([]string, 0, len(crit.RequiredSkills))
		for _, skill := range crit.RequiredSkills {
			if c.HasSkill(skill) {
				matched = append(matched, skill)
			}
		}

		if len(matched) > 0 {
			pts := 2 * len(matched)
			score += pts
			reasons = append(reasons, fmt.Sprintf("%s match (+%d)", strings.Join(matched, "+"), pts))
		}
	}

	if crit.Location != "" && strings.EqualFold(crit.Location, c.Location) {
		score++
		reasons = append(reasons, fmt.Sprintf("%s (+1)", crit.Location))
	}

	if crit.MinExp != nil && crit.MaxExp != nil {
		exp := c.ExperienceYears
		if exp >= *crit.MinExp-1 && exp <= *crit.MaxExp+1 {
			score++
			reasons = append(reasons, fmt.Sprintf("%dy fits (±1) (+1)", exp))
		}
	}

	// A zero-day window disables the rule, same as no window at all.
	if crit.AvailabilityWindowDays != nil && *crit.AvailabilityWindowDays != 0 {
		// Unparsable or missing dates silently fail the rule.
		if avail, err := time.Parse(time.DateOnly, c.AvailabilityDate); err == nil {
			delta := daysBetween(today, avail)
			if delta >= 0 && delta <= *crit.AvailabilityWindowDays {
				score++
				reasons = append(reasons, fmt.Sprintf("available in %dd (+1)", delta))
			}
		}
	}

	return score, reasons
}

// daysBetween counts calendar days from one date to another, ignoring the
// time of day and zone of the reference date.
func daysBetween(from, to time.Time) int {
	y, m, d := from.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return int(to.Sub(start).Hours() / 24)
}
