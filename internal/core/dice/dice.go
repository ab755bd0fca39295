// Package dice implements deterministic dice rolling.
//
// Rolls are deterministic with respect to a caller-provided seed or RNG,
// which keeps game mechanics replayable and testable.
package dice

import (
	"errors"
	"math/rand"
)

var (
	// ErrMissingDice indicates a roll request with no dice specs.
	ErrMissingDice = errors.New("at least one dice spec is required")
	// ErrInvalidDiceSpec indicates a spec with non-positive sides or count.
	ErrInvalidDiceSpec = errors.New("dice spec requires positive sides and count")
)

// Spec describes a homogeneous group of dice to roll, e.g. 6d6.
type Spec struct {
	Sides int
	Count int
}

// Request describes a full roll: one or more specs and a seed.
type Request struct {
	Dice []Spec
	Seed int64
}

// Roll holds the individual results for one Spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result holds every Roll produced by a Request plus the grand total.
type Result struct {
	Rolls []Roll
	Total int
}

// RollDice rolls dice based on the provided request.
//
// RollDice is deterministic with respect to Request.Seed: the same seed and
// the same Dice slice (including order) always produce the same Result.
// Specs are processed in slice order and the resulting Roll entries appear
// in the same order.
func RollDice(request Request) (Result, error) {
	if len(request.Dice) == 0 {
		return Result{}, ErrMissingDice
	}
	rng := rand.New(rand.NewSource(request.Seed))
	return RollWithRng(rng, request.Dice)
}

// RollWithRng rolls dice using a provided random source.
// This is useful when a caller wants to control the RNG directly.
func RollWithRng(rng *rand.Rand, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0

	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidDiceSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := 0; i < spec.Count; i++ {
			value := rng.Intn(spec.Sides) + 1
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}
