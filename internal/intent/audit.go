package intent

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuditRecord summarizes one extraction decision for offline quality
// monitoring: the chosen intent, the breakdown, and every raw candidate
// score. It is the only artifact that carries a timestamp or identity.
type AuditRecord struct {
	ID              uuid.UUID           `json:"id"`
	CreatedAt       time.Time           `json:"created_at"`
	Intent          Kind                `json:"intent"`
	Confidence      float64             `json:"confidence"`
	Parameters      map[string]any      `json:"parameters"`
	Breakdown       ConfidenceBreakdown `json:"breakdown"`
	Alternatives    []AlternativeIntent `json:"alternatives"`
	Candidates      []Candidate         `json:"candidates"`
	AnnotationCount int                 `json:"annotation_count"`
	TextLength      int                 `json:"text_length"`
}

// AuditSink receives one record per extraction. A sink failure is the
// caller's observability problem, never the extraction's: the engine logs
// it and returns the result regardless.
type AuditSink interface {
	LogDecision(ctx context.Context, rec AuditRecord) error
}

// NopSink discards audit records. Used when no durable sink is configured.
type NopSink struct{}

func (NopSink) LogDecision(context.Context, AuditRecord) error { return nil }
