package utils

// maxHistory bounds the fingerprint window; period-3 cycles are the longest
// the detector recognizes
const maxHistory = 5

// StagnationDetector tracks recent grid fingerprints to spot boards that have
// gone static or fallen into a short cycle. Stepping produces a fresh grid
// each generation, so the history lives here rather than on the grid itself.
type StagnationDetector struct {
	history []string
}

// Observe records the fingerprint of the generation just rendered
func (d *StagnationDetector) Observe(fingerprint string) {
	d.history = append(d.history, fingerprint)

	if len(d.history) > maxHistory {
		d.history = d.history[1:]
	}
}

// Stagnant reports whether fingerprint matches any of the last three
// observed generations, i.e. a static board or a period-2/period-3 cycle
func (d *StagnationDetector) Stagnant(fingerprint string) bool {
	if len(d.history) < 3 {
		return false
	}

	for i := 1; i <= 3; i++ {
		if d.history[len(d.history)-i] == fingerprint {
			return true
		}
	}

	return false
}

// Reset forgets all observed fingerprints, used after a board restart
func (d *StagnationDetector) Reset() {
	d.history = nil
}
