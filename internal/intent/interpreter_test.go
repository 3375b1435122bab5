package intent

import "testing"

func init() {
	Init()
}

func TestInterpret_ExactTokenMatch(t *testing.T) {
	intents := Interpret("Create a dashboard with a navbar and a table of items")

	want := []struct {
		typ        Type
		confidence float64
	}{
		{TypeDashboard, 1.0},
		{TypeTable, 1.0},
		{TypeNavbar, 1.0},
	}
	if len(intents) != len(want) {
		t.Fatalf("got %d intents, want %d: %+v", len(intents), len(want), intents)
	}
	for i, w := range want {
		if intents[i].Type != w.typ {
			t.Errorf("intent %d type = %q, want %q", i, intents[i].Type, w.typ)
		}
		if intents[i].Confidence != w.confidence {
			t.Errorf("intent %d confidence = %v, want %v", i, intents[i].Confidence, w.confidence)
		}
	}
}

func TestInterpret_LexiconOrder(t *testing.T) {
	// "navbar" appears before "login" in the prompt, but results follow
	// lexicon priority order, not prompt order.
	intents := Interpret("a navbar above the login")
	if len(intents) != 2 {
		t.Fatalf("got %d intents, want 2: %+v", len(intents), intents)
	}
	if intents[0].Type != TypeLogin {
		t.Errorf("first intent = %q, want login", intents[0].Type)
	}
	if intents[1].Type != TypeNavbar {
		t.Errorf("second intent = %q, want navbar", intents[1].Type)
	}
}

func TestInterpret_SubstringMatch(t *testing.T) {
	// "checklist" contains "list" but is not an exact token.
	intents := Interpret("show a checklist")
	if len(intents) != 1 {
		t.Fatalf("got %d intents, want 1: %+v", len(intents), intents)
	}
	if intents[0].Type != TypeList {
		t.Errorf("type = %q, want list", intents[0].Type)
	}
	if intents[0].Confidence != ConfidencePartial {
		t.Errorf("confidence = %v, want %v", intents[0].Confidence, ConfidencePartial)
	}
}

func TestInterpret_CaseFolding(t *testing.T) {
	intents := Interpret("DASHBOARD with a Table")
	if len(intents) != 2 {
		t.Fatalf("got %d intents, want 2: %+v", len(intents), intents)
	}
	for _, in := range intents {
		if in.Confidence != ConfidenceExact {
			t.Errorf("%s confidence = %v, want %v", in.Type, in.Confidence, ConfidenceExact)
		}
	}
}

func TestInterpret_NoMatch(t *testing.T) {
	intents := Interpret("xyz123")
	if len(intents) != 1 {
		t.Fatalf("got %d intents, want 1: %+v", len(intents), intents)
	}
	if intents[0].Type != TypeUnknown {
		t.Errorf("type = %q, want unknown", intents[0].Type)
	}
	if intents[0].Confidence != ConfidenceUnknown {
		t.Errorf("confidence = %v, want %v", intents[0].Confidence, ConfidenceUnknown)
	}
}

func TestInterpret_EmptyPrompt(t *testing.T) {
	intents := Interpret("")
	if len(intents) != 1 {
		t.Fatalf("got %d intents, want 1: %+v", len(intents), intents)
	}
	if intents[0].Type != TypeUnknown || intents[0].Confidence != ConfidenceUnknown {
		t.Errorf("got %+v, want unknown/0.1", intents[0])
	}
}

func TestInterpret_OneIntentPerKeyword(t *testing.T) {
	// Repeating a keyword yields a single intent for that keyword.
	intents := Interpret("button button button")
	if len(intents) != 1 {
		t.Fatalf("got %d intents, want 1: %+v", len(intents), intents)
	}
	if intents[0].Type != TypeButton || intents[0].Confidence != ConfidenceExact {
		t.Errorf("got %+v, want button/1.0", intents[0])
	}
}

func TestInterpret_ExactWinsOverSubstring(t *testing.T) {
	// "form" matches both as a token and inside "platform"; the exact
	// token match takes precedence for the keyword.
	intents := Interpret("a form on the platform")
	if len(intents) != 1 {
		t.Fatalf("got %d intents, want 1: %+v", len(intents), intents)
	}
	if intents[0].Confidence != ConfidenceExact {
		t.Errorf("confidence = %v, want %v", intents[0].Confidence, ConfidenceExact)
	}
}

func TestInterpret_Deterministic(t *testing.T) {
	prompt := "login form with a submit button and a navbar"
	first := Interpret(prompt)
	second := Interpret(prompt)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("intent %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestLookup(t *testing.T) {
	typ, ok := Lookup("navbar")
	if !ok {
		t.Fatal("expected navbar to be recognized")
	}
	if typ != TypeNavbar {
		t.Errorf("type = %q, want navbar", typ)
	}
	if _, ok := Lookup("sidebar"); ok {
		t.Error("expected sidebar to be unrecognized")
	}
}
