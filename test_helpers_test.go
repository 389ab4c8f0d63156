package hashdups

import (
	"encoding/binary"
	"encoding/hex"
	"math/rand/v2"
	"strconv"

	"github.com/zeebo/xxh3"
)

// hashKey returns a hex xxHash3-64 string for v, shaped like the lines of a
// real hash list.
func hashKey(v int) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], xxh3.HashString(strconv.Itoa(v)))
	return hex.EncodeToString(buf[:])
}

// generateHashes creates n deterministic hash lines drawn from a pool of
// distinct values, so duplicates appear with probability depending on the
// pool size.
func generateHashes(rng *rand.Rand, n, distinct int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = hashKey(rng.IntN(distinct))
	}
	return lines
}
