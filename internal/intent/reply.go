package intent

import (
	"regexp"
	"strings"
)

// replyDetector recognizes a filled-in response to a prior system-issued
// document: circled/checked option letters, an optional reference code
// corroborating which document is being answered, and free-form commentary.
type replyDetector struct{}

// referenceCodeRe matches codes printed on outbound documents, e.g. "fx-20431".
var referenceCodeRe = regexp.MustCompile(`\b[a-z]{2,5}-\d{3,10}\b`)

// bareOptionLineRe matches a line that is nothing but an option letter,
// possibly with list punctuation, e.g. "a", "b)", "(c)".
var bareOptionLineRe = regexp.MustCompile(`^\(?[a-z]\)?[.:]?$`)

func (replyDetector) Kind() Kind { return KindReply }

func (replyDetector) Detect(in RawInput) Candidate {
	params := map[string]any{}
	score := 0.0

	selections := selectedLetters(in.Annotations)
	if len(selections) > 0 {
		params["selectedOptions"] = selections
		score += replySelectionWeight
		score += float64(len(selections)-1) * replyPerExtraSelection
	}

	refCode := referenceCodeRe.FindString(in.NormalizedText)

	freeform := freeformLines(in.NormalizedText)
	if freeform != "" {
		params["freeformText"] = freeform
		score += replyFreeformWeight
	}

	// Without a selection or commentary there is no reply; a reference
	// code alone only corroborates, it never carries the intent.
	if len(selections) == 0 && freeform == "" {
		return Candidate{Intent: KindReply, Confidence: 0, Parameters: map[string]any{}}
	}

	if refCode != "" {
		params["referenceCode"] = refCode
		score += replyReferenceCodeWeight
	}

	return Candidate{Intent: KindReply, Confidence: clamp(score), Parameters: params}
}

// freeformLines joins the non-trivial text lines, excluding bare option
// letters and reference-code lines.
func freeformLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || bareOptionLineRe.MatchString(line) {
			continue
		}
		if referenceCodeRe.MatchString(line) && len(line) <= len(referenceCodeRe.FindString(line))+4 {
			continue
		}
		if len(line) <= 3 {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
