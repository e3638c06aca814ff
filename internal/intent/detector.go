package intent

// Detector scores one intent kind against the raw input. Implementations
// are total and side-effect-free: absence of evidence yields confidence 0,
// never an error, and no detector may block on I/O.
type Detector interface {
	Kind() Kind
	Detect(in RawInput) Candidate
}

// defaultDetectors returns the detector registry in registration order.
// The order is load-bearing: it resolves exact confidence ties.
func defaultDetectors() []Detector {
	return []Detector{
		emailDetector{},
		shoppingDetector{},
		aiChatDetector{},
		paymentDetector{},
		replyDetector{},
	}
}
