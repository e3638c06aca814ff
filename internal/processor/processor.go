package processor

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/twotaco/faxi/internal/bus"
	"github.com/twotaco/faxi/internal/intent"
)

// ScannedDocument is the event payload from the OCR + annotation stage for
// one scanned page. NormalizedText arrives already case-folded and trimmed.
type ScannedDocument struct {
	DocumentID     string                    `json:"document_id"`
	Page           int                       `json:"page"`
	NormalizedText string                    `json:"normalized_text"`
	Annotations    []intent.VisualAnnotation `json:"annotations"`
	FinalPage      bool                      `json:"final_page"`
}

// IntentExtracted is published for downstream automation once a page has
// been interpreted.
type IntentExtracted struct {
	DocumentID string                  `json:"document_id"`
	Page       int                     `json:"page"`
	Result     intent.ExtractionResult `json:"result"`
}

// ClarificationNeeded is published instead of acting when the decision
// confidence is below the clarify threshold.
type ClarificationNeeded struct {
	DocumentID   string                     `json:"document_id"`
	Page         int                        `json:"page"`
	Intent       intent.Kind                `json:"intent"`
	Confidence   float64                    `json:"confidence"`
	Alternatives []intent.AlternativeIntent `json:"alternatives"`
}

// Publisher is the slice of the bus client the processor needs.
type Publisher interface {
	Publish(subject string, data any) error
}

// Processor routes scanned-document events through the intent engine and
// fans the decision back out on the bus.
type Processor struct {
	engine           *intent.Engine
	publisher        Publisher
	logger           *slog.Logger
	clarifyThreshold float64

	// Multi-page faxes share one interpretation session: the previous
	// page's result is carried forward so parameters accumulate.
	mu       sync.Mutex
	sessions map[string]*intent.ExtractionResult // keyed by document ID
}

func New(engine *intent.Engine, publisher Publisher, clarifyThreshold float64, logger *slog.Logger) *Processor {
	return &Processor{
		engine:           engine,
		publisher:        publisher,
		logger:           logger,
		clarifyThreshold: clarifyThreshold,
		sessions:         make(map[string]*intent.ExtractionResult),
	}
}

// HandleDocumentScanned is the NATS handler for faxi.document.scanned.
func (p *Processor) HandleDocumentScanned(subject string, data []byte) {
	ctx := context.Background()

	var doc ScannedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		p.logger.Error("failed to parse scanned document event", "error", err)
		return
	}

	p.mu.Lock()
	existing := p.sessions[doc.DocumentID]
	p.mu.Unlock()

	result := p.engine.Extract(ctx, doc.NormalizedText, doc.Annotations, existing)

	p.logger.Info("document interpreted",
		"document_id", doc.DocumentID,
		"page", doc.Page,
		"intent", result.Intent,
		"confidence", result.Confidence,
	)

	p.mu.Lock()
	if doc.FinalPage {
		delete(p.sessions, doc.DocumentID)
	} else {
		p.sessions[doc.DocumentID] = &result
	}
	p.mu.Unlock()

	if result.Confidence < p.clarifyThreshold {
		evt := ClarificationNeeded{
			DocumentID:   doc.DocumentID,
			Page:         doc.Page,
			Intent:       result.Intent,
			Confidence:   result.Confidence,
			Alternatives: result.AlternativeIntents,
		}
		if err := p.publisher.Publish(bus.SubjectClarification, evt); err != nil {
			p.logger.Error("failed to publish clarification event", "document_id", doc.DocumentID, "error", err)
		}
		return
	}

	evt := IntentExtracted{
		DocumentID: doc.DocumentID,
		Page:       doc.Page,
		Result:     result,
	}
	if err := p.publisher.Publish(bus.SubjectIntentExtracted, evt); err != nil {
		p.logger.Error("failed to publish intent event", "document_id", doc.DocumentID, "error", err)
	}
}
