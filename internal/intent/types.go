package intent

// Kind is the closed set of actions a sender can request. New kinds are
// added by registering a new Detector, never by editing the aggregator.
type Kind string

const (
	KindEmail               Kind = "email"
	KindShopping            Kind = "shopping"
	KindAiChat              Kind = "ai_chat"
	KindPaymentRegistration Kind = "payment_registration"
	KindReply               Kind = "reply"
)

// AnnotationKind identifies a hand-drawn mark detected on the document.
type AnnotationKind string

const (
	AnnotationCircle    AnnotationKind = "circle"
	AnnotationCheckmark AnnotationKind = "checkmark"
	AnnotationArrow     AnnotationKind = "arrow"
	AnnotationUnderline AnnotationKind = "underline"
)

// VisualAnnotation is one detected mark from the upstream annotation stage.
// Read-only here; Confidence is the upstream detector's own estimate.
type VisualAnnotation struct {
	Kind           AnnotationKind `json:"kind"`
	AssociatedText string         `json:"associated_text,omitempty"`
	Confidence     float64        `json:"confidence"`
}

// RawInput is the multi-modal reconstruction of one document: machine-read
// text (already case-folded and trimmed upstream) plus the detected marks.
// Owned transiently by one extraction call, never mutated.
type RawInput struct {
	NormalizedText string             `json:"normalized_text"`
	Annotations    []VisualAnnotation `json:"annotations"`
}

// Candidate is one detector's independent scoring of the input.
type Candidate struct {
	Intent     Kind           `json:"intent"`
	Confidence float64        `json:"confidence"`
	Parameters map[string]any `json:"parameters"`
}

// AlternativeIntent is a non-winning candidate plausible enough to surface
// to the caller for disambiguation.
type AlternativeIntent struct {
	Intent     Kind    `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// ComponentConfidence decomposes the decision confidence for diagnostics.
type ComponentConfidence struct {
	IntentClassification float64 `json:"intent_classification"`
	ParameterExtraction  float64 `json:"parameter_extraction"`
	ContextUnderstanding float64 `json:"context_understanding"`
}

// ConfidenceBreakdown is diagnostic only: Overall always equals the primary
// candidate's confidence, the components explain it but never re-rank.
type ConfidenceBreakdown struct {
	Overall     float64             `json:"overall"`
	ByComponent ComponentConfidence `json:"by_component"`
}

// ExtractionResult is the sole externally visible artifact of an extraction.
// Immutable once constructed.
type ExtractionResult struct {
	Intent              Kind                `json:"intent"`
	Confidence          float64             `json:"confidence"`
	Parameters          map[string]any      `json:"parameters"`
	ConfidenceBreakdown ConfidenceBreakdown `json:"confidence_breakdown"`
	AlternativeIntents  []AlternativeIntent `json:"alternative_intents"`
}

// isSelectionMarker reports whether the annotation signals a circled or
// checked lettered option: circle/checkmark kind, a single A-Z letter as
// associated text, and upstream confidence above the selection bar.
func isSelectionMarker(a VisualAnnotation) bool {
	if a.Kind != AnnotationCircle && a.Kind != AnnotationCheckmark {
		return false
	}
	if a.Confidence <= selectionMarkerMinConfidence {
		return false
	}
	return isOptionLetter(a.AssociatedText)
}

// isOptionLetter reports whether s is a single option letter. Upstream
// normalization lower-cases text, so both cases are accepted.
func isOptionLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
