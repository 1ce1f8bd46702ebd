package talent

import "strings"

type Jobs struct {
	Items []*Job
}

type Job struct {
	Title          string   `json:"title,omitempty"`
	Location       string   `json:"location,omitempty"`
	SkillsRequired []string `json:"skillsRequired,omitempty"`
	JDSnippet      string   `json:"jdSnippet,omitempty"`
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

// FindByTitle returns the first job whose title equals the given one,
// ignoring case.
func (j *Jobs) FindByTitle(title string) *Job {
	for _, job := range j.Items {
		if strings.EqualFold(job.Title, title) {
			return job
		}
	}

	return nil
}

// FindByRole returns the first job whose title contains the role keyword,
// ignoring case. Used to derive required skills for role-only searches.
func (j *Jobs) FindByRole(role string) *Job {
	key := strings.ToLower(role)
	for _, job := range j.Items {
		if strings.Contains(strings.ToLower(job.Title), key) {
			return job
		}
	}

	return nil
}
