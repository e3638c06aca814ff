package intent

// Every scoring increment and threshold in the engine lives here so the
// scoring policy can be tuned and audited in one place.

// Shared thresholds.
const (
	// selectionMarkerMinConfidence gates circled/checked option letters:
	// below this, the upstream mark detection is too uncertain to act on.
	selectionMarkerMinConfidence = 0.5

	// alternativeMinConfidence filters which losing candidates are
	// surfaced to the caller for disambiguation.
	alternativeMinConfidence = 0.3

	// maxAlternatives caps the surfaced alternatives.
	maxAlternatives = 2

	// contextWithAnnotations / contextTextOnly score the context
	// understanding component: visual corroboration raises trust.
	contextWithAnnotations = 0.8
	contextTextOnly        = 0.5

	// implicitBodyMinLength rejects stray short fragments when falling
	// back to the remaining sentence as an email body.
	implicitBodyMinLength = 10
)

// Email detector.
const (
	emailKeywordWeight   = 0.15
	emailRecipientWeight = 0.3
	emailSubjectWeight   = 0.2
	emailBodyWeight      = 0.2
)

// Shopping detector.
const (
	shoppingKeywordWeight   = 0.15
	shoppingProductWeight   = 0.3
	shoppingQuantityWeight  = 0.15
	shoppingDeliveryWeight  = 0.1
	shoppingSelectionWeight = 0.2
)

// AI chat detector.
const (
	aiChatQuestionMarkWeight  = 0.2
	aiChatInterrogativeWeight = 0.15
	aiChatAskCueWeight        = 0.25
	// aiChatQuestionMinConfidence must be exceeded before the question
	// text parameter is populated, so stray punctuation alone never
	// produces a question.
	aiChatQuestionMinConfidence = 0.2
)

// Payment registration detector.
const (
	paymentKeywordWeight    = 0.2
	paymentMethodWeight     = 0.3
	paymentCardNumberWeight = 0.2
)

// Reply detector.
const (
	replySelectionWeight     = 0.35
	replyPerExtraSelection   = 0.1
	replyReferenceCodeWeight = 0.15
	replyFreeformWeight      = 0.2
)

// Completeness checklist weights (parameter-extraction component of the
// confidence breakdown; never used for ranking).
const (
	completeEmailRecipient = 0.4
	completeEmailSubject   = 0.3
	completeEmailBody      = 0.3

	completeShoppingProduct  = 0.6
	completeShoppingQuantity = 0.2
	completeShoppingDelivery = 0.2

	completeAiChatWithQuestion = 1.0
	completeAiChatNoQuestion   = 0.2

	completePaymentWithMethod = 0.8
	completePaymentNoMethod   = 0.3

	completeReplySelections = 0.7
	completeReplyFreeform   = 0.3
)
