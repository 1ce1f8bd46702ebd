// Package query turns free-text recruiting requests into structured filters.
//
// Parsing is an ordered list of extraction rules applied left-to-right over
// the lowercased input. Every rule is a heuristic: it either fills its filter
// fields or leaves them unset. Parse never fails; a query matching nothing
// yields an all-empty filter, which downstream code treats as "no constraint".
package query

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter is the structured search criteria derived from one query. Pointer
// fields distinguish "not mentioned" from a genuine zero.
type Filter struct {
	Role                   string
	Skills                 []string
	Location               string
	MinExp                 *int
	MaxExp                 *int
	AvailabilityWindowDays *int
}

type rule struct {
	name  string
	apply func(t string, f *Filter)
}

// Rules run in this order. The order matters only for readability today, but
// keeping it explicit makes the precedence inside each extractor testable on
// its own.
var rules = []rule{
	{"role", extractRole},
	{"location", extractLocation},
	{"experience", extractExperience},
	{"skills", extractSkills},
	{"availability", extractAvailability},
}

var (
	roleRe = regexp.MustCompile(`(intern|junior|frontend|backend|full[- ]?stack|react\s*ui|trainee)`)

	// "in <word>" with a character class wide enough for accented city names.
	locationRe = regexp.MustCompile(`\bin\s+([a-zéèêîïâàç-]+)`)

	expRangeRe  = regexp.MustCompile(`(\d+)\s*[-–]\s*(\d+)\s*(?:years?|y)`)
	expSingleRe = regexp.MustCompile(`(\d+)\s*(?:years?|y)`)

	availDaysRe = regexp.MustCompile(`available\s*(?:in)?\s*(\d+)\s*days`)
)

// knownCities is the fallback gazetteer when the query has no "in <word>"
// phrase. First hit wins.
var knownCities = []string{
	"casablanca", "rabat", "marrakesh", "marrakech", "tangier", "fes", "agadir",
}

// Parse extracts rough filters from free text.
func Parse(text string) *Filter {
	t := strings.ToLower(strings.TrimSpace(text))

	filter := &Filter{}
	for _, r := range rules {
		r.apply(t, filter)
	}

	return filter
}

// extractRole keeps the first role keyword found. Roles never combine.
func extractRole(t string, f *Filter) {
	if m := roleRe.FindString(t); m != "" {
		f.Role = m
	}
}

// extractLocation prefers an explicit "in <word>" phrase over the gazetteer.
func extractLocation(t string, f *Filter) {
	// Casers are stateful, so build one per call instead of sharing.
	caser := cases.Title(language.Und)

	if m := locationRe.FindStringSubmatch(t); m != nil {
		f.Location = caser.String(strings.TrimSpace(m[1]))
		return
	}

	for _, city := range knownCities {
		if strings.Contains(t, city) {
			f.Location = caser.String(city)
			return
		}
	}
}

// extractExperience handles "0-2 years" ranges first; a lone "2 years" is
// treated as a range of v-1..v, assuming a year of fuzziness around the
// stated value.
func extractExperience(t string, f *Filter) {
	if m := expRangeRe.FindStringSubmatch(t); m != nil {
		f.MinExp = atoiPtr(m[1])
		f.MaxExp = atoiPtr(m[2])
		return
	}

	if m := expSingleRe.FindStringSubmatch(t); m != nil {
		v, _ := strconv.Atoi(m[1])
		f.MinExp = intPtr(max(0, v-1))
		f.MaxExp = intPtr(v)
	}
}

// extractAvailability maps availability phrases to a day window. "this month"
// short-circuits to 30 days; otherwise an explicit "available in N days"
// count applies, and a later "available next month" phrase overwrites it
// with 45. The overwrite order is part of the observable behavior.
func extractAvailability(t string, f *Filter) {
	if strings.Contains(t, "available this month") || strings.Contains(t, "this month") {
		f.AvailabilityWindowDays = intPtr(30)
		return
	}

	if m := availDaysRe.FindStringSubmatch(t); m != nil {
		f.AvailabilityWindowDays = atoiPtr(m[1])
	}

	if strings.Contains(t, "available next month") {
		f.AvailabilityWindowDays = intPtr(45)
	}
}

func atoiPtr(s string) *int {
	v, _ := strconv.Atoi(s)
	return intPtr(v)
}

func intPtr(v int) *int {
	return &v
}
