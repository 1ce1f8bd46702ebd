// Package session routes free-text commands to the search, shortlist,
// outreach and analytics operations, holding the conversational context
// between them.
package session

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/hr-agent/internal/logger"
	"github.com/spigell/hr-agent/internal/outreach"
	"github.com/spigell/hr-agent/internal/query"
	"github.com/spigell/hr-agent/internal/search"
	"github.com/spigell/hr-agent/internal/store"
	"github.com/spigell/hr-agent/internal/talent"

	"go.uber.org/zap"
)

// ErrQuit signals that the user asked to end the session. The loop owner
// treats it as a clean shutdown, not a failure.
var ErrQuit = errors.New("quit requested")

const (
	defaultJobTitle = "Opportunity"

	queryLogLimit = 120
)

var (
	displayNumRe = regexp.MustCompile(`#(\d+)`)
	anyNumRe     = regexp.MustCompile(`#?(\d+)`)

	quotedNameRe = regexp.MustCompile(`(?i)as\s+"([^"]+)"`)
	forTargetRe  = regexp.MustCompile(`(?i)for\s+"([^"]+)"`)
	jobTitleRe   = regexp.MustCompile(`(?i)job\s+"([^"]+)"`)
	toneRe       = regexp.MustCompile(`(?i)in\s+(friendly|formal|concise)\s+tone`)
	newSubjectRe = regexp.MustCompile(`(?i)subject to\s+"([^"]+)"`)
	newClosingRe = regexp.MustCompile(`(?i)closing to\s+"([^"]+)"`)
)

// Config carries the tunables a session needs.
type Config struct {
	TopN        int
	DefaultTone string
}

// Deps aggregates the collaborators shared by all handlers.
type Deps struct {
	Store    *store.Store
	Searcher *search.Searcher
	Logger   *zap.Logger
	Out      io.Writer
}

// Session is one interactive conversation. It remembers the last search
// results and the last drafted email so follow-up commands can refer back to
// them.
type Session struct {
	cfg      *Config
	store    *store.Store
	searcher *search.Searcher
	logger   *zap.Logger
	out      io.Writer

	lastSearch *search.Results
	lastEmail  *outreach.Email
}

func New(cfg *Config, deps *Deps) *Session {
	return &Session{
		cfg:      cfg,
		store:    deps.Store,
		searcher: deps.Searcher,
		logger:   deps.Logger,
		out:      deps.Out,
	}
}

// Dispatch classifies one input line and runs the matching handler. Empty
// lines are ignored. The returned error is ErrQuit on a quit command or a
// command failure the caller should report; handlers that merely found
// nothing print their message and return nil.
func (s *Session) Dispatch(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	intent := Classify(line)

	log := logger.WithFields(s.logger, logger.StringFields(
		logger.StringField{Key: logger.FieldIntent, Value: string(intent)},
		logger.StringField{Key: logger.FieldQuery, Value: logger.TruncateForLog(line, queryLogLimit)},
	)...)
	log.Debug("dispatching command")

	switch intent {
	case IntentQuit:
		fmt.Fprintln(s.out, "Bye.")
		return ErrQuit
	case IntentSearch:
		return s.handleSearch(line)
	case IntentSave:
		return s.handleSave(line)
	case IntentEmail:
		return s.handleEmail(line)
	case IntentEditEmail:
		return s.handleEditEmail(line)
	case IntentAnalytics:
		return s.handleAnalytics()
	default:
		fmt.Fprintln(s.out, "I didn't understand. Try: Find React interns in Casablanca, 0–2 years, available this month")
		return nil
	}
}

// handleSearch parses the query, ranks candidates and prints the listing.
// Each line shows both the display number (position in this result list) and
// the underlying collection index; saving uses the former, the store keeps
// the latter.
func (s *Session) handleSearch(q string) error {
	filter := query.Parse(q)
	results := s.searcher.Search(filter, s.cfg.TopN)
	s.lastSearch = results

	if results.Len() == 0 {
		fmt.Fprintln(s.out, "No matches found.")
	} else {
		for i, r := range results.Items {
			c := r.Candidate
			fmt.Fprintf(s.out, "#%d (idx %d): %s — %s — %dy — skills: %s\n",
				i+1, r.Index, c.FullName(), c.Location, c.ExperienceYears, strings.Join(c.Skills, ", "))
			fmt.Fprintf(s.out, "   Why: %s\n", r.Reason)
		}
	}

	fmt.Fprintln(s.out, `Tip: Save #1 #3 as "Name-Here"`)

	return nil
}

// handleSave persists a shortlist named in the command. The #N tokens are
// display numbers from the last search and are mapped to underlying candidate
// indices before saving; out-of-range numbers are dropped.
func (s *Session) handleSave(q string) error {
	nameMatch := quotedNameRe.FindStringSubmatch(q)
	nums := displayNumRe.FindAllStringSubmatch(q, -1)

	if nameMatch == nil || len(nums) == 0 {
		fmt.Fprintln(s.out, `Usage: Save #1 #3 as "Shortlist-Name" (use # from last search)`)
		return nil
	}

	name := nameMatch[1]

	var last []*search.Result
	if s.lastSearch != nil {
		last = s.lastSearch.Items
	}

	mapped := make([]int, 0, len(nums))
	for _, m := range nums {
		i, _ := strconv.Atoi(m[1])
		if i >= 1 && i <= len(last) {
			mapped = append(mapped, last[i-1].Index)
		}
	}

	if len(mapped) == 0 {
		fmt.Fprintln(s.out, "Nothing saved; numbers out of range.")
		return nil
	}

	if err := s.store.SaveShortlist(name, mapped); err != nil {
		return fmt.Errorf("saving shortlist %q: %w", name, err)
	}

	fmt.Fprintf(s.out, "Shortlist %q saved with indices: %v\n", name, mapped)

	return nil
}

// handleEmail drafts an outreach email and previews it. Recipients come from
// a quoted shortlist name or from raw #N tokens; bare numbers address the
// stored collection directly, not the last search listing.
func (s *Session) handleEmail(q string) error {
	var target string
	if m := forTargetRe.FindStringSubmatch(q); m != nil {
		target = m[1]
	} else {
		nums := make([]string, 0)
		for _, m := range displayNumRe.FindAllStringSubmatch(q, -1) {
			nums = append(nums, m[1])
		}
		target = strings.Join(nums, ",")
	}

	jobTitle := defaultJobTitle
	if m := jobTitleRe.FindStringSubmatch(q); m != nil {
		jobTitle = m[1]
	}

	tone := s.cfg.DefaultTone
	if m := toneRe.FindStringSubmatch(q); m != nil {
		tone = strings.ToLower(m[1])
	}

	recipients := s.resolveRecipients(target)

	jobs, err := s.store.Jobs()
	if err != nil {
		s.logger.Debug("using empty jobs", zap.Error(err))
	}
	job := jobs.FindByTitle(jobTitle)

	email := outreach.Draft(recipients, job, jobTitle, tone)
	s.lastEmail = email

	if err := s.preview(email); err != nil {
		return err
	}

	fmt.Fprintln(s.out, `Edit subject or closing? Example: Change the subject to "New subject"`)

	return nil
}

// resolveRecipients turns a shortlist name or a comma-separated index string
// into candidates. Indices that fell off the collection are dropped silently.
func (s *Session) resolveRecipients(target string) []*talent.Candidate {
	candidates, err := s.store.Candidates()
	if err != nil {
		s.logger.Debug("using empty candidates", zap.Error(err))
	}

	lists, err := s.store.Shortlists()
	if err != nil {
		s.logger.Debug("using empty shortlists", zap.Error(err))
	}

	indices, ok := lists.Indices(target)
	if !ok {
		for _, m := range anyNumRe.FindAllStringSubmatch(target, -1) {
			n, _ := strconv.Atoi(m[1])
			indices = append(indices, n)
		}
	}

	return candidates.Resolve(indices)
}

// handleEditEmail mutates the last drafted email and re-previews it. Without
// a draft in context there is nothing to edit and no state changes.
func (s *Session) handleEditEmail(q string) error {
	if s.lastEmail == nil {
		fmt.Fprintln(s.out, "No email in context. Draft one first.")
		return nil
	}

	if m := newSubjectRe.FindStringSubmatch(q); m != nil {
		s.lastEmail.SetSubject(m[1])
	}
	if m := newClosingRe.FindStringSubmatch(q); m != nil {
		s.lastEmail.ReplaceClosing(m[1])
	}

	return s.preview(s.lastEmail)
}

func (s *Session) preview(email *outreach.Email) error {
	html, err := email.HTML()
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Subject:", email.Subject)
	fmt.Fprintln(s.out, "----- HTML PREVIEW BEGIN -----")
	fmt.Fprintln(s.out, html)
	fmt.Fprintln(s.out, "----- HTML PREVIEW END -----")

	return nil
}

// handleAnalytics prints pipeline stage counts and the most frequent skills.
func (s *Session) handleAnalytics() error {
	candidates, err := s.store.Candidates()
	if err != nil {
		s.logger.Debug("using empty candidates", zap.Error(err))
	}

	summary := talent.Summarize(candidates)

	stages := make([]string, 0, len(summary.Stages))
	for _, sc := range summary.Stages {
		stages = append(stages, fmt.Sprintf("%s=%d", sc.Stage, sc.Count))
	}

	skills := make([]string, 0, len(summary.TopSkills))
	for _, sk := range summary.TopSkills {
		skills = append(skills, fmt.Sprintf("%s(%d)", sk.Skill, sk.Count))
	}

	fmt.Fprintln(s.out, "Pipeline by stage:", strings.Join(stages, ", "))
	fmt.Fprintln(s.out, "Top skills:", strings.Join(skills, ", "))

	return nil
}
