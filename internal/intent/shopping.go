package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// shoppingDetector recognizes purchase requests: a product query, optional
// quantity and delivery preference, and circled/checked product letters
// from a prior catalogue page.
type shoppingDetector struct{}

var shoppingKeywords = []string{"buy", "purchase", "order", "shopping"}

// productCues precede the product query. More specific phrases first.
var productCues = []string{
	"looking for",
	"buy",
	"purchase",
	"order",
	"find me",
	"find",
	"need",
	"want",
	"get me",
}

var productStops = []string{",", ".", ";", "!", "?", " for ", " with ", " and ", " x "}

var productArticles = []string{"a ", "an ", "the ", "some ", "me "}

var (
	quantityRe  = regexp.MustCompile(`\b(\d{1,3})\s*(?:of|x|pieces|pcs|units)\b`)
	quantityXRe = regexp.MustCompile(`\bx\s*(\d{1,3})\b`)
)

var expressCues = []string{"express", "overnight", "as soon as possible", "asap", "urgent", "rush", "fastest"}
var standardCues = []string{"standard shipping", "regular shipping", "normal shipping", "no rush", "whenever"}

func (shoppingDetector) Kind() Kind { return KindShopping }

func (shoppingDetector) Detect(in RawInput) Candidate {
	text := in.NormalizedText
	params := map[string]any{}
	score := keywordScore(text, shoppingKeywords, shoppingKeywordWeight)

	if rest, ok := afterFirstCue(text, productCues); ok {
		product := cleanFragment(cutAtAny(rest, productStops))
		product = strings.TrimSpace(stripAnyPrefix(product, productArticles))
		// Drop a leading quantity phrase: "2 of the ceramic mugs".
		product = strings.TrimLeft(product, "0123456789 ")
		product = strings.TrimSpace(stripAnyPrefix(product, []string{"pieces of ", "pcs of ", "of ", "x "}))
		product = strings.TrimSpace(stripAnyPrefix(product, productArticles))
		if product != "" {
			params["productQuery"] = product
			score += shoppingProductWeight
		}
	}

	if qty, ok := extractQuantity(text); ok {
		params["quantity"] = qty
		score += shoppingQuantityWeight
	}

	if pref := deliveryPreference(text); pref != "" {
		params["deliveryPreference"] = pref
		score += shoppingDeliveryWeight
	}

	// Visual selection overrides/augments text: a circled or checked
	// letter points at a lettered product option.
	if ids := selectedLetters(in.Annotations); len(ids) > 0 {
		params["selectedProductIds"] = ids
		score += shoppingSelectionWeight
	}

	return Candidate{Intent: KindShopping, Confidence: clamp(score), Parameters: params}
}

func extractQuantity(text string) (int, bool) {
	m := quantityRe.FindStringSubmatch(text)
	if m == nil {
		m = quantityXRe.FindStringSubmatch(text)
	}
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func deliveryPreference(text string) string {
	// Standard phrases first: "no rush" must not trip the "rush" cue.
	if containsAny(text, standardCues...) {
		return "standard"
	}
	if containsAny(text, expressCues...) {
		return "express"
	}
	if containsAny(text, "ship", "deliver") {
		return "standard"
	}
	return ""
}

// selectedLetters collects the distinct option letters from selection
// markers, upper-cased, in annotation order.
func selectedLetters(annotations []VisualAnnotation) []string {
	var out []string
	seen := map[string]bool{}
	for _, a := range annotations {
		if !isSelectionMarker(a) {
			continue
		}
		letter := strings.ToUpper(a.AssociatedText)
		if !seen[letter] {
			seen[letter] = true
			out = append(out, letter)
		}
	}
	return out
}
