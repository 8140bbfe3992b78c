package protocol

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// PhotonSource models a vacuum-weak coherent pulse source: the photon number
// of each pulse follows a Poisson distribution around the class intensity.
type PhotonSource struct {
	src rand.Source
}

func NewPhotonSource(src rand.Source) *PhotonSource {
	return &PhotonSource{src: src}
}

// Sample draws the photon number for one pulse. A mean of zero is the vacuum
// state and always yields zero photons without touching the RNG stream, since
// Poisson(0) is identically zero.
func (s *PhotonSource) Sample(mean float64) int {
	if mean == 0 {
		return 0
	}
	return int(distuv.Poisson{Lambda: mean, Src: s.src}.Rand())
}
