package talent

import "fmt"

// StageUnknown is the pipeline stage assumed for candidates without one.
const StageUnknown = "UNKNOWN"

type Candidates struct {
	Items []*Candidate
}

type Candidate struct {
	FirstName        string   `json:"firstName,omitempty"`
	LastName         string   `json:"lastName,omitempty"`
	Location         string   `json:"location,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	ExperienceYears  int      `json:"experienceYears,omitempty"`
	AvailabilityDate string   `json:"availabilityDate,omitempty"`
	Stage            string   `json:"stage,omitempty"`
}

func (c *Candidate) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// HasSkill reports whether the candidate lists the skill verbatim.
func (c *Candidate) HasSkill(skill string) bool {
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

// At returns the candidate at the given 1-based position, or nil when the
// position is out of range. Positions are the only identity candidates have.
func (c *Candidates) At(pos int) *Candidate {
	if pos < 1 || pos > len(c.Items) {
		return nil
	}
	return c.Items[pos-1]
}

// Resolve maps 1-based positions to candidates, silently dropping positions
// that no longer exist. Order is preserved.
func (c *Candidates) Resolve(positions []int) []*Candidate {
	resolved := make([]*Candidate, 0, len(positions))
	for _, pos := range positions {
		if candidate := c.At(pos); candidate != nil {
			resolved = append(resolved, candidate)
		}
	}
	return resolved
}
