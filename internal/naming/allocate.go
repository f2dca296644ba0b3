package naming

import (
	"strconv"
	"strings"

	"github.com/ironsheep/image-renamer/internal/errors"
)

// Sentinel is prepended to every name the renamer produces.
const Sentinel = "_"

// DefaultMaxAttempts bounds the disambiguation loop.
const DefaultMaxAttempts = 10000

// Allocate returns the first free name for base and suffix.
//
// The first candidate is "_<base><suffix>". While the candidate is taken, a
// counter starting at 1 is appended as "_<base>_<n><suffix>", with base
// re-truncated so the whole name stays within maxLen bytes. Allocate fails
// with COLLISION_EXHAUSTED after maxAttempts counters, or as soon as the
// counter and suffix leave no room for any part of base.
//
// Allocate does not record the name it returns; see Registry.Reserve for
// the atomic check-and-insert.
func Allocate(base, suffix string, taken func(string) bool, maxLen, maxAttempts int) (string, error) {
	if room := maxLen - len(Sentinel) - len(suffix); len(base) > room {
		base = strings.TrimRight(truncate(base, room), "_")
	}

	name := Sentinel + base + suffix
	if !taken(name) {
		return name, nil
	}

	for counter := 1; counter <= maxAttempts; counter++ {
		n := strconv.Itoa(counter)
		room := maxLen - len(n) - len(suffix) - 2
		if room <= 0 {
			break
		}
		trimmed := strings.TrimRight(truncate(base, room), "_")
		name = Sentinel + trimmed + "_" + n + suffix
		if !taken(name) {
			return name, nil
		}
	}

	return "", errors.NewCollisionExhaustedError(Sentinel+base+suffix, maxAttempts)
}
