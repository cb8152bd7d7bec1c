package risk

import (
	"os"
	"strings"
)

// DefaultCrisisKeywords returns the built-in high-risk phrase list.
// Presence of any of these as a substring overrides the numeric risk
// formula entirely.
func DefaultCrisisKeywords() []string {
	return []string{"suicide", "hopeless", "unsafe", "end my life", "self-harm"}
}

// LoadCrisisKeywords reads an optional comma-separated override from the
// MINDGUARD_CRISIS_KEYWORDS environment variable, falling back to the
// built-in list.
func LoadCrisisKeywords() []string {
	v := os.Getenv("MINDGUARD_CRISIS_KEYWORDS")
	if v == "" {
		return DefaultCrisisKeywords()
	}
	var keywords []string
	for _, part := range strings.Split(v, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			keywords = append(keywords, part)
		}
	}
	if len(keywords) == 0 {
		return DefaultCrisisKeywords()
	}
	return keywords
}

// ContainsCrisisKeyword reports whether the lower-cased text contains any
// of the given keywords as a substring.
func ContainsCrisisKeyword(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
