package intent

import "strings"

// Text-matching helpers shared by the detectors. Input text arrives
// case-folded from the OCR stage, so all cue lists are lower-case.

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// keywordScore adds weight once per matched keyword.
func keywordScore(text string, keywords []string, weight float64) float64 {
	score := 0.0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			score += weight
		}
	}
	return score
}

// afterFirstCue returns the text following the first cue (in cue-list
// order) that occurs in s, and whether any cue matched. Cues are tried in
// the given order so more specific phrases must be listed first.
func afterFirstCue(s string, cues []string) (string, bool) {
	for _, cue := range cues {
		if idx := strings.Index(s, cue); idx >= 0 {
			return s[idx+len(cue):], true
		}
	}
	return "", false
}

// cutAtAny truncates s at the earliest occurrence of any stop marker.
func cutAtAny(s string, stops []string) string {
	cut := len(s)
	for _, stop := range stops {
		if idx := strings.Index(s, stop); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return s[:cut]
}

// stripAnyPrefix removes the first matching prefix, if any.
func stripAnyPrefix(s string, prefixes []string) string {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return s[len(p):]
		}
	}
	return s
}

// cleanFragment trims surrounding whitespace and stray punctuation left
// over from cue-based slicing.
func cleanFragment(s string) string {
	return strings.Trim(s, " \t\n,.;:!?-")
}
