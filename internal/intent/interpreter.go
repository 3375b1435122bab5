package intent

import "strings"

// Confidence levels are fixed constants, not learned or interpolated. The
// unknown fallback confidence is part of the external contract.
const (
	ConfidenceExact   = 1.0
	ConfidencePartial = 0.8
	ConfidenceUnknown = 0.1
)

// Intent is a classified fragment of user meaning extracted from prompt text.
type Intent struct {
	Type       Type    `json:"type"`
	Value      any     `json:"value,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Interpret extracts intents from a free-text prompt.
//
// The prompt is case-folded and split on whitespace. Each lexicon keyword is
// checked in priority order: an exact token match emits an intent with
// confidence 1.0; failing that, a substring match against the normalized text
// emits 0.8. Each keyword contributes at most one intent, and intents for the
// same type are not merged. If nothing matches, the result is exactly one
// unknown intent with confidence 0.1.
//
// Interpret is pure and never fails; it always returns at least one intent,
// in lexicon order regardless of where keywords appear in the prompt.
func Interpret(prompt string) []Intent {
	normalized := strings.ToLower(prompt)
	tokens := strings.Fields(normalized)

	tokenSet := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = true
	}

	var intents []Intent
	for _, e := range Lexicon {
		switch {
		case tokenSet[e.Keyword]:
			intents = append(intents, Intent{Type: e.Type, Confidence: ConfidenceExact})
		case strings.Contains(normalized, e.Keyword):
			intents = append(intents, Intent{Type: e.Type, Confidence: ConfidencePartial})
		}
	}

	if len(intents) == 0 {
		intents = []Intent{{Type: TypeUnknown, Confidence: ConfidenceUnknown}}
	}
	return intents
}
