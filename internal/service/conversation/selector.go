package conversation

import "github.com/zhouzirui/santa-exe/internal/random"

// Selector chooses one reply from a catalog entry.
type Selector interface {
	Pick(candidates []string) (string, error)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(candidates []string) (string, error)

// Pick calls f.
func (f SelectorFunc) Pick(candidates []string) (string, error) {
	return f(candidates)
}

// RandomSelector picks uniformly using its source.
type RandomSelector struct {
	src random.Source
}

// NewRandomSelector returns a selector drawing from src.
func NewRandomSelector(src random.Source) *RandomSelector {
	return &RandomSelector{src: src}
}

// Pick returns candidates[i] for a uniform i in [0, len(candidates)).
func (s *RandomSelector) Pick(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidates
	}
	return candidates[random.Index(s.src, len(candidates))], nil
}
