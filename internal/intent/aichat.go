package intent

import "strings"

// aiChatDetector recognizes general inquiries addressed to the assistant.
type aiChatDetector struct{}

var interrogatives = []string{
	"what", "why", "how", "when", "where", "who", "which",
	"can you", "could you", "is", "are", "do", "does", "should",
}

var askCues = []string{"ask ", "help me", "please tell me", "i want to know", "question"}

// questionLeadIns are stripped from the front of the extracted question.
var questionLeadIns = []string{
	"please tell me ",
	"i want to know ",
	"help me with ",
	"help me ",
	"question: ",
	"question ",
	"ask ",
}

func (aiChatDetector) Kind() Kind { return KindAiChat }

func (aiChatDetector) Detect(in RawInput) Candidate {
	text := in.NormalizedText
	params := map[string]any{}
	score := 0.0

	if strings.Contains(text, "?") {
		score += aiChatQuestionMarkWeight
	}
	for _, w := range interrogatives {
		if strings.HasPrefix(text, w+" ") || strings.HasPrefix(text, w+"?") {
			score += aiChatInterrogativeWeight
			break
		}
	}
	if containsAny(text, askCues...) {
		score += aiChatAskCueWeight
	}

	// Only attach the question once there is more evidence than stray
	// punctuation.
	if score > aiChatQuestionMinConfidence {
		if q := cleanFragment(stripAnyPrefix(text, questionLeadIns)); q != "" {
			params["question"] = q
		}
	}

	return Candidate{Intent: KindAiChat, Confidence: clamp(score), Parameters: params}
}
