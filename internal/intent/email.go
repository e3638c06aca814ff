package intent

import (
	"regexp"
	"strings"
)

// emailDetector recognizes requests to send a message to somebody, either
// by address or by name, with optional subject and body.
type emailDetector struct{}

var emailKeywords = []string{"email", "send", "write", "message", "letter"}

var emailAddrRe = regexp.MustCompile(`[a-z0-9][a-z0-9._%+-]*@[a-z0-9][a-z0-9.-]*\.[a-z]{2,}`)

// recipientCues precede a name-like recipient. More specific phrases first.
var recipientCues = []string{
	"send an email to",
	"send email to",
	"send a mail to",
	"send a message to",
	"email to",
	"mail to",
	"write to",
	"send to",
	"contact",
	"tell",
}

var recipientStops = []string{",", ".", ";", "!", "?", " about", " regarding", " that ", " saying", " and "}

// recipientPronouns are rejected as recipient names: they point back at a
// recipient already named elsewhere in the sentence.
var recipientPronouns = map[string]bool{
	"them": true, "him": true, "her": true, "me": true,
	"us": true, "it": true, "everyone": true, "someone": true,
}

var subjectCues = []string{"subject:", "subject ", "regarding ", "about ", "re:"}
var subjectStops = []string{",", ".", ";", "!", "?", " tell ", " say "}

var bodyCues = []string{
	"tell them that", "tell them to", "tell them",
	"tell him", "tell her",
	"say that", "saying", "say",
	"write that",
}

func (emailDetector) Kind() Kind { return KindEmail }

func (emailDetector) Detect(in RawInput) Candidate {
	text := in.NormalizedText
	params := map[string]any{}
	score := keywordScore(text, emailKeywords, emailKeywordWeight)

	// Recipient: an address-like token wins over a name after a cue.
	var recipient string
	if addr := emailAddrRe.FindString(text); addr != "" {
		params["recipientEmail"] = addr
		recipient = addr
		score += emailRecipientWeight
	} else if name := extractRecipientName(text); name != "" {
		params["recipientName"] = name
		recipient = name
		score += emailRecipientWeight
	}

	var subject string
	if rest, ok := afterFirstCue(text, subjectCues); ok {
		subject = cleanFragment(cutAtAny(rest, subjectStops))
		if subject != "" {
			params["subject"] = subject
			score += emailSubjectWeight
		}
	}

	body := ""
	if rest, ok := afterFirstCue(text, bodyCues); ok {
		body = cleanFragment(rest)
	}
	if body == "" && recipient != "" {
		body = implicitBody(text, recipient, subject)
	}
	if body != "" {
		params["body"] = body
		score += emailBodyWeight
	}

	return Candidate{Intent: KindEmail, Confidence: clamp(score), Parameters: params}
}

func extractRecipientName(text string) string {
	rest, ok := afterFirstCue(text, recipientCues)
	if !ok {
		return ""
	}
	name := cleanFragment(cutAtAny(rest, recipientStops))
	if name == "" {
		return ""
	}
	words := strings.Fields(name)
	if len(words) == 0 || recipientPronouns[words[0]] {
		return ""
	}
	// A long tail after the cue is the message, not the name.
	if len(words) > 2 {
		return words[0]
	}
	return name
}

// implicitBody treats the sentence remainder after the recipient mention
// (and the subject phrase, when one was extracted) as the message body,
// provided it is more than a short stray word.
func implicitBody(text, recipient, subject string) string {
	idx := strings.Index(text, recipient)
	if idx < 0 {
		return ""
	}
	rest := text[idx+len(recipient):]
	if subject != "" {
		if j := strings.Index(rest, subject); j >= 0 {
			rest = rest[j+len(subject):]
		}
	}
	rest = cleanFragment(rest)
	if len(rest) <= implicitBodyMinLength || !strings.Contains(rest, " ") {
		return ""
	}
	return rest
}
