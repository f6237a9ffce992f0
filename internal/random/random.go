package random

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// lockedSource serialises access to a *rand.Rand, which is not safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// New returns the process-wide source.
func New() Source {
	return globalSource{}
}

// NewSeeded returns a reproducible source, useful for demos and replaying a run.
func NewSeeded(seed uint64) Source {
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Fixed always returns v clamped into [0, 1).
func Fixed(v float64) Source {
	return fixedSource(clamp(v))
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// Sequence cycles through vs in order. An empty sequence behaves like Fixed(0).
func Sequence(vs ...float64) Source {
	values := make([]float64, len(vs))
	for i, v := range vs {
		values[i] = clamp(v)
	}
	return &sequenceSource{values: values}
}

type sequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Index maps a draw from src onto [0, n). n must be positive.
func Index(src Source, n int) int {
	idx := int(src.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v >= 1:
		return 1 - 1e-9
	default:
		return v
	}
}
