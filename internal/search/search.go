package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spigell/hr-agent/internal/query"
	"github.com/spigell/hr-agent/internal/store"
	"github.com/spigell/hr-agent/internal/talent"

	"go.uber.org/zap"
)

const defaultTopN = 5

// Searcher runs filters across the whole candidate collection. Documents are
// loaded fresh on every search.
type Searcher struct {
	store  *store.Store
	logger *zap.Logger

	// Now supplies the reference date for availability scoring. Tests
	// override it to pin results to a fixed day.
	Now func() time.Time
}

func New(s *store.Store, logger *zap.Logger) *Searcher {
	return &Searcher{
		store:  s,
		logger: logger,
		Now:    time.Now,
	}
}

type Results struct {
	Items []*Result
}

// Result pairs a candidate with its score for one search. Index is the
// candidate's 1-based position in the stored collection, not its position in
// the result list.
type Result struct {
	Index     int
	Candidate *talent.Candidate
	Score     int
	Reason    string
}

func (r *Results) Len() int {
	return len(r.Items)
}

// Search scores every candidate against the filter and returns the topN best
// matches, best first. Candidates scoring zero are dropped; ties keep their
// collection order. A search never fails: missing documents score against
// empty collections.
func (s *Searcher) Search(f *query.Filter, topN int) *Results {
	candidates, err := s.store.Candidates()
	if err != nil {
		s.logger.Debug("using empty candidates", zap.Error(err))
	}

	jobs, err := s.store.Jobs()
	if err != nil {
		s.logger.Debug("using empty jobs", zap.Error(err))
	}

	required := append([]string{}, f.Skills...)
	if len(required) == 0 && f.Role != "" {
		if job := jobs.FindByRole(f.Role); job != nil {
			required = job.SkillsRequired
		}
	}

	crit := Criteria{
		RequiredSkills:         required,
		Location:               f.Location,
		MinExp:                 f.MinExp,
		MaxExp:                 f.MaxExp,
		AvailabilityWindowDays: f.AvailabilityWindowDays,
	}

	today := s.Now()

	results := &Results{}
	for idx, candidate := range candidates.Items {
		score, reasons := Score(candidate, crit, today)
		if score <= 0 {
			continue
		}

		reason := fmt.Sprintf("score %d", score)
		if len(reasons) > 0 {
			reason = fmt.Sprintf("%s → score %d", strings.Join(reasons, ", "), score)
		}

		results.Items = append(results.Items, &Result{
			Index:     idx + 1,
			Candidate: candidate,
			Score:     score,
			Reason:    reason,
		})
	}

	sort.SliceStable(results.Items, func(i, j int) bool {
		return results.Items[i].Score > results.Items[j].Score
	})

	if topN < 1 {
		topN = defaultTopN
	}
	if len(results.Items) > topN {
		results.Items = results.Items[:topN]
	}

	s.logger.Info("search completed",
		zap.Int("candidates", candidates.Len()),
		zap.Int("jobs", jobs.Len()),
		zap.Int("matches", results.Len()),
		zap.Strings("required_skills", required),
	)

	return results
}
