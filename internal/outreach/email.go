// Package outreach drafts recruiting emails and renders their HTML preview.
// Nothing here sends anything; the draft is plain text the session holds and
// edits until the user is happy with it.
package outreach

import (
	"fmt"
	"strings"

	"github.com/spigell/hr-agent/internal/talent"
)

const (
	ToneFriendly = "friendly"
	ToneFormal   = "formal"
	ToneConcise  = "concise"
)

var closings = map[string]string{
	ToneFriendly: "Cheers,\nSoukaina — Talent Team",
	ToneFormal:   "Kind regards,\nSoukaina\nTalent Acquisition",
	ToneConcise:  "Thanks,\nSoukaina",
}

const callToAction = "Would you be open to a quick chat this week? I’d love to learn more about your interests."

// Email is one drafted message. Text is the newline-delimited plain body.
type Email struct {
	Subject string
	Text    string
}

// Draft builds an outreach email for the recipients. With no recipients it
// returns an empty draft rather than an error. A single recipient gets a
// personalized subject and greeting; more than one gets the generic form.
// Unknown tones fall back to friendly. The job may be nil when no posting
// matched the requested title.
func Draft(recipients []*talent.Candidate, job *talent.Job, jobTitle, tone string) *Email {
	if len(recipients) == 0 {
		return &Email{}
	}

	var subject, greeting string
	if len(recipients) == 1 {
		first := recipients[0].FirstName
		subject = fmt.Sprintf("%s, quick chat about a %s opportunity?", first, jobTitle)
		greeting = fmt.Sprintf("Hi %s,", first)
	} else {
		subject = fmt.Sprintf("Quick chat about a %s opportunity?", jobTitle)
		greeting = "Hi there,"
	}

	closing, ok := closings[tone]
	if !ok {
		closing = closings[ToneFriendly]
	}

	where := "our team"
	if job != nil {
		where = job.Location
	}

	lines := []string{
		greeting,
		"",
		fmt.Sprintf("I'm reaching out about a %s role in %s.", jobTitle, where),
	}

	if job != nil && job.JDSnippet != "" {
		lines = append(lines, job.JDSnippet)
	}
	if job != nil && len(job.SkillsRequired) > 0 {
		lines = append(lines, fmt.Sprintf("Nice-to-have: %s.", strings.Join(job.SkillsRequired, ", ")))
	}

	lines = append(lines,
		"",
		callToAction,
		"",
		closing,
	)

	return &Email{
		Subject: subject,
		Text:    strings.Join(lines, "\n"),
	}
}

func (e *Email) SetSubject(subject string) {
	e.Subject = subject
}

// ReplaceClosing swaps everything after the last blank line of the body for
// the given closing. A body without a blank line keeps all its lines and gets
// the closing appended.
func (e *Email) ReplaceClosing(closing string) {
	parts := strings.Split(e.Text, "\n")

	lastBlank := len(parts) - 1
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "" {
			lastBlank = i
			break
		}
	}

	e.Text = strings.Join(append(parts[:lastBlank+1], closing), "\n")
}
