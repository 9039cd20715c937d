package dice

import "math/bits"

// twister is MT19937 seeded with init_by_array over the 32-bit words of
// |seed|.
type twister struct {
	state [mtN]uint32
	index int
}

const (
	mtN       = 624
	mtM       = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

func newTwister(seed int64) *twister {
	t := &twister{}
	t.seedByArray(seedKey(seed))
	return t
}

// seedKey splits |seed| into little-endian 32-bit words; zero is one zero word
func seedKey(seed int64) []uint32 {
	n := uint64(seed)
	if seed < 0 {
		n = uint64(-seed)
	}
	if n == 0 {
		return []uint32{0}
	}

	var key []uint32
	for n > 0 {
		key = append(key, uint32(n))
		n >>= 32
	}
	return key
}

func (t *twister) seedGenrand(s uint32) {
	t.state[0] = s
	for i := 1; i < mtN; i++ {
		prev := t.state[i-1]
		t.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	t.index = mtN
}

func (t *twister) seedByArray(key []uint32) {
	t.seedGenrand(19650218)

	i, j := 1, 0
	k := mtN
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := t.state[i-1]
		t.state[i] = (t.state[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			t.state[0] = t.state[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		prev := t.state[i-1]
		t.state[i] = (t.state[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			t.state[0] = t.state[mtN-1]
			i = 1
		}
	}

	t.state[0] = upperMask
	t.index = mtN
}

func (t *twister) twist() {
	for kk := 0; kk < mtN; kk++ {
		y := (t.state[kk] & upperMask) | (t.state[(kk+1)%mtN] & lowerMask)
		v := t.state[(kk+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			v ^= matrixA
		}
		t.state[kk] = v
	}
	t.index = 0
}

// next returns the next tempered output word
func (t *twister) next() uint32 {
	if t.index >= mtN {
		t.twist()
	}

	y := t.state[t.index]
	t.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// randBits returns k random bits, 1 <= k <= 32
func (t *twister) randBits(k int) uint32 {
	return t.next() >> (32 - k)
}

// below returns a uniform value in [0, n) by rejection over bit_length(n) bits
func (t *twister) below(n int) int {
	k := bits.Len32(uint32(n))
	r := t.randBits(k)
	for r >= uint32(n) {
		r = t.randBits(k)
	}
	return int(r)
}
