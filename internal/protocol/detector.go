package protocol

import (
	"math"

	"golang.org/x/exp/rand"
)

// Detector models an imperfect single-photon detector: limited quantum
// efficiency, an independent dark-count probability per gate, and an
// intrinsic misread rate.
type Detector struct {
	efficiency    float64
	errorRate     float64
	darkCountRate float64
	rng           *rand.Rand
}

func NewDetector(efficiency, errorRate, darkCountRate float64, rng *rand.Rand) *Detector {
	return &Detector{
		efficiency:    efficiency,
		errorRate:     errorRate,
		darkCountRate: darkCountRate,
		rng:           rng,
	}
}

// Detect reports whether the detector clicked for a pulse with the given
// surviving photon count. A real detection fires with 1-(1-eta)^n; a dark
// count fires independently, so the combined click probability follows
// inclusion-exclusion. The dark flag marks clicks on empty pulses, where the
// click can only come from detector noise; it calibrates the dark-count
// floor, so a click with survivors present never carries it.
func (d *Detector) Detect(photons int) (clicked, dark bool) {
	real := false
	if photons > 0 {
		real = d.rng.Float64() < 1-math.Pow(1-d.efficiency, float64(photons))
	}
	darkClick := d.rng.Float64() < d.darkCountRate
	clicked = real || darkClick
	dark = clicked && photons == 0
	return clicked, dark
}

// Misread reports whether a real detection flips the measured bit.
func (d *Detector) Misread() bool {
	return d.rng.Float64() < d.errorRate
}
