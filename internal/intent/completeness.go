package intent

// Completeness scores how many of the fields expected for an intent the
// extracted parameters actually populated. Diagnostic input to the
// confidence breakdown only; it never overrides primary-intent selection.
func Completeness(kind Kind, params map[string]any) float64 {
	switch kind {
	case KindEmail:
		score := 0.0
		if hasParam(params, "recipientEmail") || hasParam(params, "recipientName") {
			score += completeEmailRecipient
		}
		if hasParam(params, "subject") {
			score += completeEmailSubject
		}
		if hasParam(params, "body") {
			score += completeEmailBody
		}
		return clamp(score)
	case KindShopping:
		score := 0.0
		if hasParam(params, "productQuery") {
			score += completeShoppingProduct
		}
		if hasParam(params, "quantity") {
			score += completeShoppingQuantity
		}
		if hasParam(params, "deliveryPreference") {
			score += completeShoppingDelivery
		}
		return clamp(score)
	case KindAiChat:
		if hasParam(params, "question") {
			return completeAiChatWithQuestion
		}
		return completeAiChatNoQuestion
	case KindPaymentRegistration:
		if hasParam(params, "paymentMethod") {
			return completePaymentWithMethod
		}
		return completePaymentNoMethod
	case KindReply:
		score := 0.0
		if hasParam(params, "selectedOptions") {
			score += completeReplySelections
		}
		if hasParam(params, "freeformText") {
			score += completeReplyFreeform
		}
		return clamp(score)
	default:
		return 0
	}
}

func hasParam(params map[string]any, key string) bool {
	v, ok := params[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}
