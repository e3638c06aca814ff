package intent

import "sort"

// alternativeReasons are the fixed human-readable explanations attached to
// surfaced alternatives, keyed by intent kind.
var alternativeReasons = map[Kind]string{
	KindEmail:               "contains email-related keywords or recipient information",
	KindShopping:            "contains purchase-intent keywords or product references",
	KindAiChat:              "contains question phrasing or an explicit inquiry",
	KindPaymentRegistration: "contains payment-method keywords",
	KindReply:               "contains selected options or commentary on a prior document",
}

// aggregate fans the candidate list back into a single result: the
// strict-max candidate wins, exact ties resolve to the earlier candidate,
// and losing candidates above the surfacing bar become alternatives.
func aggregate(candidates []Candidate, annotationCount int) ExtractionResult {
	primaryIdx := 0
	for i, c := range candidates {
		if c.Confidence > candidates[primaryIdx].Confidence {
			primaryIdx = i
		}
	}
	primary := candidates[primaryIdx]

	var alternatives []AlternativeIntent
	for i, c := range candidates {
		if i == primaryIdx || c.Confidence <= alternativeMinConfidence {
			continue
		}
		alternatives = append(alternatives, AlternativeIntent{
			Intent:     c.Intent,
			Confidence: clamp(c.Confidence),
			Reason:     alternativeReasons[c.Intent],
		})
	}
	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Confidence > alternatives[j].Confidence
	})
	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}

	context := contextTextOnly
	if annotationCount > 0 {
		context = contextWithAnnotations
	}

	params := primary.Parameters
	if params == nil {
		params = map[string]any{}
	}

	confidence := clamp(primary.Confidence)
	return ExtractionResult{
		Intent:     primary.Intent,
		Confidence: confidence,
		Parameters: params,
		ConfidenceBreakdown: ConfidenceBreakdown{
			// Overall deliberately equals the intent-classification
			// confidence; the other components are explanatory only.
			Overall: confidence,
			ByComponent: ComponentConfidence{
				IntentClassification: confidence,
				ParameterExtraction:  Completeness(primary.Intent, params),
				ContextUnderstanding: context,
			},
		},
		AlternativeIntents: alternatives,
	}
}
