package intent

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Engine fans the input out to every registered detector, aggregates the
// candidates into a single ExtractionResult, and emits one audit record.
// It holds no mutable state and is safe to share across concurrent calls.
type Engine struct {
	detectors []Detector
	sink      AuditSink
	logger    *slog.Logger
}

// NewEngine builds the engine with the default detector registry. The
// registration order (email, shopping, ai_chat, payment_registration,
// reply) is fixed: it decides exact confidence ties.
func NewEngine(sink AuditSink, logger *slog.Logger) *Engine {
	if sink == nil {
		sink = NopSink{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		detectors: defaultDetectors(),
		sink:      sink,
		logger:    logger,
	}
}

// Extract decides what action the sender wants performed. Degenerate input
// (empty text, no annotations) is valid and yields a zero-confidence
// result, never an error. The result is deterministic in (text,
// annotations, existing); only the audit side-channel carries wall-clock
// values.
func (e *Engine) Extract(ctx context.Context, text string, annotations []VisualAnnotation, existing *ExtractionResult) ExtractionResult {
	in := RawInput{NormalizedText: text, Annotations: annotations}

	// Detectors are independent pure computations; run them fanned out
	// and collect by registration index so ordering stays stable.
	candidates := make([]Candidate, len(e.detectors))
	var wg sync.WaitGroup
	for i, d := range e.detectors {
		wg.Add(1)
		go func(i int, d Detector) {
			defer wg.Done()
			candidates[i] = d.Detect(in)
		}(i, d)
	}
	wg.Wait()

	result := aggregate(candidates, len(annotations))

	// Carry forward parameters from a prior pass over the same
	// interpretation session when this pass did not re-extract them.
	// Detectors never see the prior result.
	if existing != nil && existing.Intent == result.Intent {
		for k, v := range existing.Parameters {
			if _, ok := result.Parameters[k]; !ok {
				result.Parameters[k] = v
			}
		}
		result.ConfidenceBreakdown.ByComponent.ParameterExtraction = Completeness(result.Intent, result.Parameters)
	}

	rec := AuditRecord{
		ID:              uuid.New(),
		CreatedAt:       time.Now().UTC(),
		Intent:          result.Intent,
		Confidence:      result.Confidence,
		Parameters:      result.Parameters,
		Breakdown:       result.ConfidenceBreakdown,
		Alternatives:    result.AlternativeIntents,
		Candidates:      candidates,
		AnnotationCount: len(annotations),
		TextLength:      len(text),
	}
	if err := e.sink.LogDecision(ctx, rec); err != nil {
		e.logger.Error("audit write failed", "decision_id", rec.ID, "error", err)
	}

	e.logger.Debug("intent extracted",
		"intent", result.Intent,
		"confidence", result.Confidence,
		"alternatives", len(result.AlternativeIntents),
	)

	return result
}
