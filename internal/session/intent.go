package session

import "strings"

// Intent is the single action a free-text command maps to.
type Intent string

const (
	IntentSearch    Intent = "search"
	IntentSave      Intent = "save"
	IntentEmail     Intent = "email"
	IntentEditEmail Intent = "edit_email"
	IntentAnalytics Intent = "analytics"
	IntentQuit      Intent = "quit"
	IntentUnknown   Intent = "unknown"
)

type intentRule struct {
	intent Intent
	match  func(t string) bool
}

// intentRules run top to bottom over the lowercased input; the first match
// wins. The checks overlap ("save a draft" could mean two things), so the
// order is part of the contract.
var intentRules = []intentRule{
	{IntentSearch, func(t string) bool {
		return strings.Contains(t, "find") || strings.Contains(t, "search") || strings.Contains(t, "look for")
	}},
	{IntentSave, func(t string) bool {
		return strings.HasPrefix(t, "save ") || strings.Contains(t, " save ")
	}},
	{IntentEmail, func(t string) bool {
		return strings.HasPrefix(t, "draft ") || strings.Contains(t, "draft outreach email") || strings.HasPrefix(t, "email ")
	}},
	{IntentEditEmail, func(t string) bool {
		return strings.HasPrefix(t, "change the subject") || strings.Contains(t, "edit subject") || strings.Contains(t, "closing")
	}},
	{IntentAnalytics, func(t string) bool {
		return strings.Contains(t, "analytics")
	}},
	{IntentQuit, func(t string) bool {
		return t == "quit" || t == "exit"
	}},
}

// Classify maps one input line to an intent.
func Classify(text string) Intent {
	t := strings.ToLower(text)
	for _, r := range intentRules {
		if r.match(t) {
			return r.intent
		}
	}

	return IntentUnknown
}
