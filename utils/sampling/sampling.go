// Package sampling implements deterministic sampling of real numbers
// from a keyed pseudo-random byte stream.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// Float64 returns a float uniformly distributed in [0, 1) read
// from the given PRNG, using its 53 most significant bits.
func Float64(prng PRNG) (f float64, err error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err = prng.Read(b); err != nil {
		return 0, fmt.Errorf("sampling.Float64: %w", err)
	}
	return float64(binary.LittleEndian.Uint64(b)>>11) / (1 << 53), nil
}

// Uniform returns n floats uniformly distributed in [a, b).
func Uniform(prng PRNG, a, b float64, n int) (x []float64, err error) {
	x = make([]float64, n)
	for i := range x {
		var f float64
		if f, err = Float64(prng); err != nil {
			return nil, err
		}
		x[i] = a + f*(b-a)
	}
	return
}
