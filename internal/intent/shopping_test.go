package intent

import (
	"reflect"
	"testing"
)

func TestShoppingDetector_ProductQuery(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		product string
	}{
		{"buy cue", "buy rice cooker", "rice cooker"},
		{"looking for cue", "looking for a blue umbrella", "blue umbrella"},
		{"need cue", "need some printer paper, standard shipping", "printer paper"},
		{"order cue", "order 2 of the ceramic mugs", "ceramic mugs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := shoppingDetector{}.Detect(RawInput{NormalizedText: tt.text})
			if got := c.Parameters["productQuery"]; got != tt.product {
				t.Errorf("expected product %q, got %v", tt.product, got)
			}
			if c.Confidence <= 0 {
				t.Errorf("expected positive confidence, got %f", c.Confidence)
			}
		})
	}
}

func TestShoppingDetector_Quantity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"n of", "buy 3 of the green towels", 3},
		{"x suffix", "buy rice cooker x 2", 2},
		{"pieces", "order 12 pieces of chalk", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := shoppingDetector{}.Detect(RawInput{NormalizedText: tt.text})
			if got := c.Parameters["quantity"]; got != tt.want {
				t.Errorf("expected quantity %d, got %v", tt.want, got)
			}
		})
	}
}

func TestShoppingDetector_DeliveryPreference(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"urgency word", "buy batteries asap", "express"},
		{"express phrase", "order the heater with express delivery", "express"},
		{"standard phrase", "buy socks, no rush", "standard"},
		{"shipping cue", "buy a kettle and ship it home", "standard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := shoppingDetector{}.Detect(RawInput{NormalizedText: tt.text})
			if got := c.Parameters["deliveryPreference"]; got != tt.want {
				t.Errorf("expected preference %q, got %v", tt.want, got)
			}
		})
	}
}

func TestShoppingDetector_VisualSelection(t *testing.T) {
	c := shoppingDetector{}.Detect(RawInput{
		NormalizedText: "buy rice cooker",
		Annotations: []VisualAnnotation{
			{Kind: AnnotationCheckmark, AssociatedText: "B", Confidence: 0.9},
		},
	})

	ids, ok := c.Parameters["selectedProductIds"].([]string)
	if !ok {
		t.Fatalf("expected selectedProductIds slice, got %v", c.Parameters["selectedProductIds"])
	}
	if !reflect.DeepEqual(ids, []string{"B"}) {
		t.Errorf("expected [B], got %v", ids)
	}
}

func TestShoppingDetector_SelectionFiltering(t *testing.T) {
	tests := []struct {
		name       string
		annotation VisualAnnotation
		selected   bool
	}{
		{"low confidence mark", VisualAnnotation{Kind: AnnotationCircle, AssociatedText: "a", Confidence: 0.4}, false},
		{"underline ignored", VisualAnnotation{Kind: AnnotationUnderline, AssociatedText: "a", Confidence: 0.9}, false},
		{"arrow ignored", VisualAnnotation{Kind: AnnotationArrow, AssociatedText: "b", Confidence: 0.9}, false},
		{"multi-letter text ignored", VisualAnnotation{Kind: AnnotationCircle, AssociatedText: "ab", Confidence: 0.9}, false},
		{"circled letter kept", VisualAnnotation{Kind: AnnotationCircle, AssociatedText: "c", Confidence: 0.9}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := shoppingDetector{}.Detect(RawInput{
				NormalizedText: "buy rice cooker",
				Annotations:    []VisualAnnotation{tt.annotation},
			})
			_, ok := c.Parameters["selectedProductIds"]
			if ok != tt.selected {
				t.Errorf("selected=%v, expected %v", ok, tt.selected)
			}
		})
	}
}

func TestShoppingDetector_NoEvidence(t *testing.T) {
	c := shoppingDetector{}.Detect(RawInput{NormalizedText: "hello there"})
	if c.Confidence != 0 {
		t.Errorf("expected zero confidence, got %f", c.Confidence)
	}
}
