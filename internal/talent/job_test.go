package talent

import "testing"

func jobsFixture() *Jobs {
	return &Jobs{Items: []*Job{
		{Title: "Frontend Intern", Location: "Casablanca", SkillsRequired: []string{"React", "JS"}},
		{Title: "Backend Junior Engineer", Location: "Rabat", SkillsRequired: []string{"Python", "SQL"}},
		{Title: "Full-Stack Trainee", Location: "Tangier", SkillsRequired: []string{"JS", "Node"}},
	}}
}

func TestJobsLen(t *testing.T) {
	t.Parallel()

	if got := jobsFixture().Len(); got != 3 {
		t.Fatalf("expected 3 jobs, got %d", got)
	}
	if got := (&Jobs{}).Len(); got != 0 {
		t.Fatalf("expected 0 jobs, got %d", got)
	}
}

func TestJobsFindByTitle(t *testing.T) {
	t.Parallel()

	jobs := jobsFixture()

	job := jobs.FindByTitle("frontend intern")
	if job == nil || job.Location != "Casablanca" {
		t.Fatalf("expected the Casablanca posting, got %+v", job)
	}

	// Equality only; a partial title is not a match.
	if job := jobs.FindByTitle("Frontend"); job != nil {
		t.Fatalf("expected no match for a partial title, got %+v", job)
	}
}

func TestJobsFindByRole(t *testing.T) {
	t.Parallel()

	jobs := jobsFixture()

	tests := []struct {
		name   string
		role   string
		expect string
	}{
		{"substring match", "intern", "Frontend Intern"},
		{"case insensitive", "JUNIOR", "Backend Junior Engineer"},
		{"first match wins", "e", "Frontend Intern"},
		{"no match", "designer", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job := jobs.FindByRole(tt.role)
			if tt.expect == "" {
				if job != nil {
					t.Fatalf("expected no match, got %+v", job)
				}
				return
			}
			if job == nil || job.Title != tt.expect {
				t.Fatalf("expected %q, got %+v", tt.expect, job)
			}
		})
	}
}
