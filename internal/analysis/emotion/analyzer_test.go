package emotion

import "testing"

func TestAnalyzeLonelyUserGetsTenderness(t *testing.T) {
	decision := Analyze("I feel so alone and homesick", "Hmm.")
	if decision.Emotion != Tender {
		t.Fatalf("expected tender emotion, got %s", decision.Emotion)
	}
	if decision.Scale < 1 || decision.Scale > 3.5 {
		t.Fatalf("emotion scale out of range: %f", decision.Scale)
	}
}

func TestAnalyzeDramaticReply(t *testing.T) {
	decision := Analyze("Why are you like this?", "WHY AM I LIKE THIS?! WHY ARE ANY OF US LIKE THIS?! *FLIPS SLEIGH*")
	if decision.Emotion != Dramatic {
		t.Fatalf("expected dramatic emotion, got %s", decision.Emotion)
	}
	if decision.Scale < 3 {
		t.Fatalf("expected boosted scale for drama, got %f", decision.Scale)
	}
}

func TestAnalyzeSternReply(t *testing.T) {
	decision := Analyze("I need discipline, Santa.", "Did you eat today? Crackers don't count.")
	if decision.Emotion != Stern {
		t.Fatalf("expected stern emotion, got %s", decision.Emotion)
	}
}

func TestAnalyzeFlatExchangeIsNeutral(t *testing.T) {
	decision := Analyze("ok", "Hmm.")
	if decision.Emotion != Neutral || decision.Scale != 3 {
		t.Fatalf("expected neutral/3, got %s/%f", decision.Emotion, decision.Scale)
	}
}

func TestShouting(t *testing.T) {
	if !shouting("THIS IS THE WORST DAY") {
		t.Fatal("expected shouting")
	}
	if shouting("This is A FINE day OK") {
		t.Fatal("unexpected shouting")
	}
}
