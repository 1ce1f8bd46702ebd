package query

import (
	"regexp"
	"strings"
)

// skillRe is the technology vocabulary the parser recognizes anywhere in the
// query text.
var skillRe = regexp.MustCompile(`\b(react|javascript|js|typescript|ts|html|css|git|python|flask|sql|django|redux|node|next\.?js|tailwind)\b`)

// skillNormalizations maps irregular vocabulary tokens to their canonical
// display form. Tokens not listed here are capitalized when longer than two
// characters and uppercased otherwise.
var skillNormalizations = map[string]string{
	"javascript": "JS",
	"ts":         "TypeScript",
	"next.js":    "Next.js",
	"nextjs":     "Next.js",
}

// extractSkills scans for vocabulary tokens, keeping first-seen order and
// dropping duplicates after normalization.
func extractSkills(t string, f *Filter) {
	for _, token := range skillRe.FindAllString(t, -1) {
		skill := normalizeSkill(token)
		if !contains(f.Skills, skill) {
			f.Skills = append(f.Skills, skill)
		}
	}
}

func normalizeSkill(token string) string {
	token = strings.ToLower(token)
	if canonical, ok := skillNormalizations[token]; ok {
		return canonical
	}

	var skill string
	if len(token) > 2 {
		skill = strings.ToUpper(token[:1]) + token[1:]
	} else {
		skill = strings.ToUpper(token)
	}

	// Compatibility fixup carried over from the first version of the
	// vocabulary, where "js" could surface capitalized instead of
	// uppercased.
	if skill == "Js" {
		skill = "JS"
	}

	return skill
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
