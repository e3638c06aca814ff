package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twotaco/faxi/internal/intent"
)

// LogDecision persists one extraction decision and all raw candidate
// scores. Tables: intent_decisions, intent_candidates.
func (s *Store) LogDecision(ctx context.Context, rec intent.AuditRecord) error {
	paramsJSON, err := json.Marshal(rec.Parameters)
	if err != nil {
		return fmt.Errorf("marshal parameters: %w", err)
	}
	breakdownJSON, err := json.Marshal(rec.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}
	alternativesJSON, err := json.Marshal(rec.Alternatives)
	if err != nil {
		return fmt.Errorf("marshal alternatives: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO intent_decisions (id, intent, confidence, parameters, breakdown, alternatives, annotation_count, text_length, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, string(rec.Intent), rec.Confidence, paramsJSON, breakdownJSON, alternativesJSON,
		rec.AnnotationCount, rec.TextLength, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}

	for _, c := range rec.Candidates {
		candParams, err := json.Marshal(c.Parameters)
		if err != nil {
			return fmt.Errorf("marshal candidate parameters: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO intent_candidates (id, decision_id, intent, confidence, parameters)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), rec.ID, string(c.Intent), c.Confidence, candParams,
		)
		if err != nil {
			return fmt.Errorf("insert candidate: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// DecisionSummary is one row of the recent-decisions view used by the
// status API and offline quality monitoring.
type DecisionSummary struct {
	ID              uuid.UUID `json:"id"`
	Intent          string    `json:"intent"`
	Confidence      float64   `json:"confidence"`
	AnnotationCount int       `json:"annotation_count"`
	TextLength      int       `json:"text_length"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecentDecisions returns the most recent decisions, newest first.
func (s *Store) RecentDecisions(ctx context.Context, limit int) ([]DecisionSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, intent, confidence, annotation_count, text_length, created_at
		FROM intent_decisions
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	var out []DecisionSummary
	for rows.Next() {
		var d DecisionSummary
		if err := rows.Scan(&d.ID, &d.Intent, &d.Confidence, &d.AnnotationCount, &d.TextLength, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan decision row: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decision rows: %w", err)
	}
	return out, nil
}
