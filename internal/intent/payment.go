package intent

import "regexp"

// paymentDetector recognizes payment-method registration requests and
// classifies the method. Card numbers are captured in masked form only;
// the raw digit sequence never reaches the parameter map.
type paymentDetector struct{}

var paymentKeywords = []string{"payment", "pay by", "pay with", "register", "billing"}

var creditCardCues = []string{"credit card", "card number", "visa", "mastercard", "credit"}
var convenienceCues = []string{"convenience store", "konbini", "barcode", "pay at store", "store payment"}

var cardNumberRe = regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?(\d{4})\b`)

func (paymentDetector) Kind() Kind { return KindPaymentRegistration }

func (paymentDetector) Detect(in RawInput) Candidate {
	text := in.NormalizedText
	params := map[string]any{}
	score := keywordScore(text, paymentKeywords, paymentKeywordWeight)

	// Method classification. Credit-card phrasing is checked first: it is
	// the more specific signal when both families of cues appear.
	switch {
	case containsAny(text, creditCardCues...):
		params["paymentMethod"] = "credit_card"
		score += paymentMethodWeight
	case containsAny(text, convenienceCues...):
		params["paymentMethod"] = "convenience_store"
		score += paymentMethodWeight
	}

	if m := cardNumberRe.FindStringSubmatch(text); m != nil {
		params["cardNumber"] = "****-****-****-" + m[1]
		score += paymentCardNumberWeight
	}

	return Candidate{Intent: KindPaymentRegistration, Confidence: clamp(score), Parameters: params}
}
