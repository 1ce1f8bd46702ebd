package outreach

import (
	"strings"
	"testing"

	"github.com/spigell/hr-agent/internal/talent"
)

func testJob() *talent.Job {
	return &talent.Job{
		Title:          "Frontend Intern",
		Location:       "Casablanca",
		SkillsRequired: []string{"React", "JS", "CSS"},
		JDSnippet:      "Join our product squad.",
	}
}

func TestDraftNoRecipients(t *testing.T) {
	t.Parallel()

	email := Draft(nil, testJob(), "Frontend Intern", ToneFriendly)

	if email.Subject != "" || email.Text != "" {
		t.Fatalf("expected an empty draft, got %+v", email)
	}
}

func TestDraftSingleRecipientIsPersonalized(t *testing.T) {
	t.Parallel()

	recipients := []*talent.Candidate{{FirstName: "Amina", LastName: "Benali"}}

	email := Draft(recipients, testJob(), "Frontend Intern", ToneFriendly)

	if email.Subject != "Amina, quick chat about a Frontend Intern opportunity?" {
		t.Fatalf("unexpected subject: %q", email.Subject)
	}
	if !strings.HasPrefix(email.Text, "Hi Amina,\n") {
		t.Fatalf("expected personalized greeting, got %q", email.Text)
	}
}

func TestDraftMultipleRecipientsAreGeneric(t *testing.T) {
	t.Parallel()

	recipients := []*talent.Candidate{
		{FirstName: "Amina"},
		{FirstName: "Salma"},
	}

	email := Draft(recipients, testJob(), "Frontend Intern", ToneFriendly)

	if email.Subject != "Quick chat about a Frontend Intern opportunity?" {
		t.Fatalf("unexpected subject: %q", email.Subject)
	}
	if !strings.HasPrefix(email.Text, "Hi there,\n") {
		t.Fatalf("expected generic greeting, got %q", email.Text)
	}
}

func TestDraftBodyStructure(t *testing.T) {
	t.Parallel()

	recipients := []*talent.Candidate{{FirstName: "Amina"}}

	email := Draft(recipients, testJob(), "Frontend Intern", ToneConcise)

	lines := strings.Split(email.Text, "\n")
	expect := []string{
		"Hi Amina,",
		"",
		"I'm reaching out about a Frontend Intern role in Casablanca.",
		"Join our product squad.",
		"Nice-to-have: React, JS, CSS.",
		"",
		"Would you be open to a quick chat this week? I’d love to learn more about your interests.",
		"",
		"Thanks,",
		"Soukaina",
	}

	if len(lines) != len(expect) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(expect), len(lines), email.Text)
	}
	for i, line := range expect {
		if lines[i] != line {
			t.Fatalf("line %d: expected %q, got %q", i, line, lines[i])
		}
	}
}

func TestDraftWithoutJob(t *testing.T) {
	t.Parallel()

	recipients := []*talent.Candidate{{FirstName: "Amina"}}

	email := Draft(recipients, nil, "Opportunity", ToneFriendly)

	if !strings.Contains(email.Text, "a Opportunity role in our team.") {
		t.Fatalf("expected the generic team line, got %q", email.Text)
	}
	if strings.Contains(email.Text, "Nice-to-have") {
		t.Fatalf("did not expect a skills line without a job, got %q", email.Text)
	}
}

func TestDraftToneSelectsClosing(t *testing.T) {
	t.Parallel()

	recipients := []*talent.Candidate{{FirstName: "Amina"}}

	tests := []struct {
		name    string
		tone    string
		closing string
	}{
		{"friendly", ToneFriendly, "Cheers,\nSoukaina — Talent Team"},
		{"formal", ToneFormal, "Kind regards,\nSoukaina\nTalent Acquisition"},
		{"concise", ToneConcise, "Thanks,\nSoukaina"},
		{"unknown falls back to friendly", "sarcastic", "Cheers,\nSoukaina — Talent Team"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email := Draft(recipients, testJob(), "Frontend Intern", tt.tone)

			if !strings.HasSuffix(email.Text, tt.closing) {
				t.Fatalf("expected closing %q, got %q", tt.closing, email.Text)
			}
		})
	}
}

func TestReplaceClosing(t *testing.T) {
	t.Parallel()

	recipients := []*talent.Candidate{{FirstName: "Amina"}}
	email := Draft(recipients, testJob(), "Frontend Intern", ToneConcise)

	email.ReplaceClosing("Best,\nTeam")

	if !strings.HasSuffix(email.Text, "\n\nBest,\nTeam") {
		t.Fatalf("expected replaced closing after the last blank line, got %q", email.Text)
	}
	if strings.Contains(email.Text, "Thanks,") {
		t.Fatalf("expected the old closing to be gone, got %q", email.Text)
	}
}

func TestReplaceClosingWithoutBlankLineAppends(t *testing.T) {
	t.Parallel()

	email := &Email{Text: "line one\nline two"}

	email.ReplaceClosing("Bye")

	if email.Text != "line one\nline two\nBye" {
		t.Fatalf("unexpected text: %q", email.Text)
	}
}

func TestSetSubject(t *testing.T) {
	t.Parallel()

	email := &Email{Subject: "old"}
	email.SetSubject("new")

	if email.Subject != "new" {
		t.Fatalf("expected subject %q, got %q", "new", email.Subject)
	}
}
