package intent

import (
	"math"
	"testing"
)

func TestEmailDetector_ExplicitFields(t *testing.T) {
	c := emailDetector{}.Detect(RawInput{
		NormalizedText: "send email to takeshi about dinner plans, tell them i'll bring dessert",
	})

	if c.Intent != KindEmail {
		t.Fatalf("expected email intent, got %s", c.Intent)
	}
	if c.Confidence < 0.8 {
		t.Errorf("expected high confidence, got %f", c.Confidence)
	}
	if got := c.Parameters["recipientName"]; got != "takeshi" {
		t.Errorf("expected recipient takeshi, got %v", got)
	}
	if got := c.Parameters["subject"]; got != "dinner plans" {
		t.Errorf("expected subject 'dinner plans', got %v", got)
	}
	if got := c.Parameters["body"]; got != "i'll bring dessert" {
		t.Errorf("expected body \"i'll bring dessert\", got %v", got)
	}
}

func TestEmailDetector_AddressRecipient(t *testing.T) {
	c := emailDetector{}.Detect(RawInput{
		NormalizedText: "please send email to tanaka@example.com saying the invoice is ready",
	})

	if got := c.Parameters["recipientEmail"]; got != "tanaka@example.com" {
		t.Errorf("expected address recipient, got %v", got)
	}
	if _, ok := c.Parameters["recipientName"]; ok {
		t.Error("address recipient should suppress name extraction")
	}
	if got := c.Parameters["body"]; got != "the invoice is ready" {
		t.Errorf("expected body 'the invoice is ready', got %v", got)
	}
}

func TestEmailDetector_ImplicitBody(t *testing.T) {
	c := emailDetector{}.Detect(RawInput{
		NormalizedText: "send email to yamada the meeting moved to friday morning",
	})

	if got := c.Parameters["recipientName"]; got != "yamada" {
		t.Errorf("expected recipient yamada, got %v", got)
	}
	if got := c.Parameters["body"]; got != "the meeting moved to friday morning" {
		t.Errorf("expected implicit body fallback, got %v", got)
	}
}

func TestEmailDetector_NoEvidence(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"unrelated", "the quick brown fox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := emailDetector{}.Detect(RawInput{NormalizedText: tt.text})
			if c.Confidence != 0 {
				t.Errorf("expected zero confidence, got %f", c.Confidence)
			}
			if len(c.Parameters) != 0 {
				t.Errorf("expected no parameters, got %v", c.Parameters)
			}
		})
	}
}

func TestEmailDetector_PronounNotRecipient(t *testing.T) {
	c := emailDetector{}.Detect(RawInput{
		NormalizedText: "tell them the package arrived",
	})
	if _, ok := c.Parameters["recipientName"]; ok {
		t.Errorf("pronoun must not become a recipient, got %v", c.Parameters["recipientName"])
	}
}

func TestEmailDetector_ShortImplicitBodyRejected(t *testing.T) {
	c := emailDetector{}.Detect(RawInput{
		NormalizedText: "send email to sato ok",
	})
	if body, ok := c.Parameters["body"]; ok {
		t.Errorf("short stray word must not become a body, got %v", body)
	}
}

func TestEmailDetector_ConfidenceClamped(t *testing.T) {
	c := emailDetector{}.Detect(RawInput{
		NormalizedText: "send a message to write an email letter to aiko@example.org about everything, tell them all the news",
	})
	if c.Confidence > 1.0 || c.Confidence < 0.0 {
		t.Errorf("confidence out of range: %f", c.Confidence)
	}
	if math.Abs(c.Confidence-clamp(c.Confidence)) > 1e-12 {
		t.Errorf("confidence not clamped: %f", c.Confidence)
	}
}
