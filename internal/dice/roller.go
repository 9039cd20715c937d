// Package dice provides the random stream used by character synthesis.
//
// Every random decision the forge makes is a die roll taken from a single
// Roller. Rolls are consumed strictly in call order, so two rollers built
// from the same seed reproduce the same sequence of decisions.
package dice

// RollResult is the outcome of one Roll call
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

// Roller provides an interface for rolling dice
// This allows us to inject a seeded stream in production and scripted rolls in tests
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// Pick returns a uniform index in [0, n) by rolling one n-sided die
func Pick(r Roller, n int) (int, error) {
	result, err := r.Roll(1, n, -1)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

// Sample returns k distinct indices from [0, n) in draw order.
// It removes each picked index from a pool by swapping in the last live
// entry.
func Sample(r Roller, n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, errInvalidSample
	}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	out := make([]int, k)
	for i := 0; i < k; i++ {
		j, err := Pick(r, n-i)
		if err != nil {
			return nil, err
		}
		out[i] = pool[j]
		pool[j] = pool[n-i-1]
	}
	return out, nil
}
