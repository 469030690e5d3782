package generation

import "math/rand"

// randomInteger returns a uniform integer in [lo, hi]
func randomInteger(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// randomIntegerOK is randomInteger that reports an empty range instead of clamping
func randomIntegerOK(rng *rand.Rand, lo, hi int) (int, bool) {
	if hi < lo {
		return 0, false
	}
	return randomInteger(rng, lo, hi), true
}

// shuffle permutes rooms in place (Fisher-Yates)
func shuffle(rng *rand.Rand, rooms []*Room) {
	rng.Shuffle(len(rooms), func(i, j int) {
		rooms[i], rooms[j] = rooms[j], rooms[i]
	})
}
