package protocol

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Channel models the lossy quantum link between sender and receiver. Each
// photon independently survives with probability equal to the linear
// transmittance derived from the configured dB losses.
type Channel struct {
	transmittance float64
	src           rand.Source
}

func NewChannel(transmittance float64, src rand.Source) *Channel {
	return &Channel{transmittance: transmittance, src: src}
}

func (c *Channel) Transmittance() float64 {
	return c.transmittance
}

// Transmit applies binomial thinning to the pulse's photon count.
func (c *Channel) Transmit(photons int) int {
	if photons <= 0 || c.transmittance <= 0 {
		return 0
	}
	if c.transmittance >= 1 {
		return photons
	}
	return int(distuv.Binomial{N: float64(photons), P: c.transmittance, Src: c.src}.Rand())
}
