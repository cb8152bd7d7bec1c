package risk

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DefaultTip is returned for any emotion label without a table entry.
const DefaultTip = "Take a break and focus on self-care."

// AdviceTable maps an emotion label to an ordered list of coping tips.
// It is built once at startup and never mutated afterwards.
type AdviceTable map[string][]string

// DefaultAdviceTable returns the built-in coping tips per emotion.
func DefaultAdviceTable() AdviceTable {
	return AdviceTable{
		"sadness": {
			"Take a 5-minute break and breathe deeply.",
			"Talk to a friend or a trusted adult.",
			"Write down your thoughts in a journal.",
		},
		"fear": {
			"Practice grounding techniques (5 senses exercise).",
			"List what is in your control.",
			"Take slow, deep breaths.",
		},
		"anger": {
			"Take a short walk to release tension.",
			"Try writing your feelings in a notebook.",
			"Count to 10 before reacting.",
		},
		"joy": {
			"Share your happiness with someone you care about.",
			"Keep a gratitude journal.",
			"Celebrate small wins!",
		},
		"surprise": {
			"Take a moment to process the situation.",
			"Reflect on what this means for you.",
			"Share your thoughts with someone you trust.",
		},
		"neutral": {
			"Reflect on your day and plan one positive activity.",
			"Take a short break to reset your focus.",
		},
	}
}

// LoadAdviceTable reads an optional JSON table override from the file
// named by MINDGUARD_ADVICE_FILE, falling back to the built-in table.
// The file holds a {"label": ["tip", ...]} object.
func LoadAdviceTable() (AdviceTable, error) {
	path := os.Getenv("MINDGUARD_ADVICE_FILE")
	if path == "" {
		return DefaultAdviceTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading advice file: %w", err)
	}
	var table AdviceTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing advice file: %w", err)
	}

	normalized := make(AdviceTable, len(table))
	for label, tips := range table {
		normalized[strings.ToLower(label)] = tips
	}
	return normalized, nil
}

// TipsFor returns the coping tips for an emotion label. Total: every
// input produces a non-empty list, unknown labels get the default tip.
func (t AdviceTable) TipsFor(label string) []string {
	if tips, ok := t[strings.ToLower(label)]; ok && len(tips) > 0 {
		return tips
	}
	return []string{DefaultTip}
}
