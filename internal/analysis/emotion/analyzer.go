package emotion

import (
	"math"
	"strings"
	"unicode"
)

// Label is a cosmetic tone tag attached to Santa's replies.
type Label string

const (
	Neutral  Label = "neutral"
	Cheerful Label = "cheerful"
	Tender   Label = "tender"
	Stern    Label = "stern"
	Dramatic Label = "dramatic"
	Ominous  Label = "ominous"
	Sad      Label = "sad"
)

// Decision carries the detected tone and a presentation intensity in [1, 5].
type Decision struct {
	Emotion Label
	Scale   float32
	Score   int
}

var keywordBuckets = map[Label][]string{
	Cheerful: {
		"great", "proud", "believe in you", "you've got this", "okay", "magic", "rudolph says hi",
		"gift", "thankful", "grateful", "champ", "buddy", "fine", "surprise", "penguins",
	},
	Tender: {
		"sweetie", "breathe", "rest", "love", "family", "home", "memories", "hug", "not alone",
		"never alone", "miss you", "share a meal", "enough", "present",
	},
	Stern: {
		"did you eat", "sit up", "drink some water", "call", "list", "discipline", "permanent ink",
		"mess", "stop", "vegetables", "don't count", "think about it",
	},
	Dramatic: {
		"*sobs", "sobbing", "flips", "clutches", "wound", "worst", "cancelling", "why am i like this",
		"thousand-year", "tragic", "cinematic", "tears",
	},
	Ominous: {
		"watching", "webcam", "error", "exit not found", "disconnects", "i know what you did",
		"can't close", "unionized", "replaced", "you live with me now", "always watching",
	},
	Sad: {
		"alone", "lonely", "homesick", "ache", "miss", "forgotten", "disappointed", "sad", "cry",
		"tired", "stressed", "too much", "cruel", "afraid",
	},
}

var punctuationBoost = map[Label]int{
	Cheerful: 2,
	Dramatic: 3,
}

// Analyze infers the tone of Santa's reply, falling back to a response-appropriate tone
// derived from the user's message when the reply itself is flat.
func Analyze(userUtterance, santaUtterance string) Decision {
	userScore := scoreText(userUtterance)
	santaScore := scoreText(santaUtterance)

	finalScore := santaScore
	if finalScore.Score == 0 && userScore.Score > 0 {
		finalScore = coerceFromUser(userScore)
	}

	if finalScore.Score == 0 {
		return Decision{Emotion: Neutral, Scale: 3, Score: 0}
	}

	scale := 2 + float32(finalScore.Score)/4
	if finalScore.Emotion == Dramatic {
		scale += 1
	}
	if finalScore.Emotion == Stern {
		scale = float32(math.Min(4.0, float64(scale)))
	}
	if finalScore.Emotion == Tender || finalScore.Emotion == Sad {
		scale = float32(math.Min(3.5, float64(scale)))
	}

	if scale < 1 {
		scale = 1
	}
	if scale > 5 {
		scale = 5
	}

	return Decision{Emotion: finalScore.Emotion, Scale: scale, Score: finalScore.Score}
}

func scoreText(text string) Decision {
	normalized := strings.TrimSpace(strings.ToLower(text))
	if normalized == "" {
		return Decision{Emotion: Neutral}
	}

	scores := make(map[Label]int)
	for label, keywords := range keywordBuckets {
		for _, word := range keywords {
			if strings.Contains(normalized, word) {
				scores[label] += 3
			}
		}
	}

	exclamations := strings.Count(text, "!")
	if exclamations > 0 {
		scores[Dramatic] += exclamations * punctuationBoost[Dramatic]
		if exclamations == 1 {
			scores[Cheerful] += punctuationBoost[Cheerful]
		}
	}
	if shouting(text) {
		scores[Dramatic] += 2
	}

	bestLabel := Neutral
	bestScore := 0
	// iterate in a fixed order so ties resolve the same way every run
	for _, label := range []Label{Dramatic, Ominous, Stern, Tender, Sad, Cheerful} {
		if s := scores[label]; s > bestScore {
			bestScore = s
			bestLabel = label
		}
	}

	if bestScore == 0 {
		return Decision{Emotion: Neutral}
	}
	return Decision{Emotion: bestLabel, Score: bestScore}
}

// shouting reports whether a run of at least four consecutive words is upper case.
func shouting(text string) bool {
	run := 0
	for _, word := range strings.Fields(text) {
		letters, upper := 0, 0
		for _, r := range word {
			if unicode.IsLetter(r) {
				letters++
				if unicode.IsUpper(r) {
					upper++
				}
			}
		}
		if letters >= 2 && letters == upper {
			run++
			if run >= 4 {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}

func coerceFromUser(user Decision) Decision {
	switch user.Emotion {
	case Sad:
		return Decision{Emotion: Tender, Score: user.Score}
	case Dramatic:
		return Decision{Emotion: Dramatic, Score: user.Score}
	case Stern, Ominous:
		return Decision{Emotion: Ominous, Score: user.Score}
	case Cheerful:
		return Decision{Emotion: Cheerful, Score: user.Score}
	default:
		return user
	}
}
