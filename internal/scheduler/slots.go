package scheduler

import (
	"fmt"
	"math/rand"
	"strings"
)

// Candidate times for synthesized sessions.
var (
	StudySlots   = []string{"8:00 AM", "2:00 PM", "7:00 PM", "9:00 PM"}
	WorkoutSlots = []string{"6:00 AM", "5:00 PM", "6:30 PM"}
)

// SlotPicker chooses one time from a non-empty candidate list.
type SlotPicker interface {
	Pick(candidates []string) string
}

// SlotStrategy names a SlotPicker implementation.
type SlotStrategy string

const (
	StrategyRandom     SlotStrategy = "random"
	StrategyRoundRobin SlotStrategy = "round_robin"
)

// NewSlotPicker builds the picker for a strategy. The seed only affects the
// random strategy.
func NewSlotPicker(strategy SlotStrategy, seed int64) (SlotPicker, error) {
	switch SlotStrategy(strings.ToLower(string(strategy))) {
	case StrategyRandom, "":
		return NewRandomPicker(seed), nil
	case StrategyRoundRobin:
		return NewRoundRobinPicker(), nil
	default:
		return nil, fmt.Errorf("unknown slot strategy %q (want %s or %s)", strategy, StrategyRandom, StrategyRoundRobin)
	}
}

// RandomPicker picks uniformly at random. Identical input can yield
// different slots across runs unless the seed is fixed.
type RandomPicker struct {
	rng *rand.Rand
}

func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPicker) Pick(candidates []string) string {
	return candidates[p.rng.Intn(len(candidates))]
}

// RoundRobinPicker cycles through each candidate list independently,
// starting from its first entry.
type RoundRobinPicker struct {
	cursors map[string]int
}

func NewRoundRobinPicker() *RoundRobinPicker {
	return &RoundRobinPicker{cursors: make(map[string]int)}
}

func (p *RoundRobinPicker) Pick(candidates []string) string {
	key := strings.Join(candidates, "|")
	i := p.cursors[key]
	p.cursors[key] = (i + 1) % len(candidates)
	return candidates[i%len(candidates)]
}
