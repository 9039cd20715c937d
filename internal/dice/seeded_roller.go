package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

var errInvalidSample = errors.New("invalid sample size")

// seededRoller implements Roller over a seeded MT19937 stream
type seededRoller struct {
	source *twister
}

// NewSeededRoller creates a roller whose rolls are fully determined by seed.
// Each die of n sides draws bit_length(n) bits and rejects values >= n,
// so stored seeds keep reproducing the same picks.
func NewSeededRoller(seed int64) Roller {
	return &seededRoller{
		source: newTwister(seed),
	}
}

// Roll implements Roller.Roll
func (r *seededRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	rolls := make([]int, count)
	rawTotal := 0
	for i := 0; i < count; i++ {
		roll := r.source.below(sides) + 1
		rolls[i] = roll
		rawTotal += roll
	}

	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

// NewSeed returns a seed in [0, 2^53) read from crypto/rand, small enough
// to survive a round trip through JSON numbers in a browser.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:]) >> 11), nil
}
