package protocol

import (
	pl "github.com/HannahMarsh/PrettyLogger"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
)

// Attacker sits between the source and the channel. Intercept returns the
// photon count forwarded to the channel and whether the attacker kept any
// photons for itself. No strategy ever increases the photon count, and a
// vacuum pulse is never intercepted.
type Attacker interface {
	Intercept(photons int) (forwarded int, intercepted bool)
	Type() data.AttackType
}

// NewAttacker builds the strategy for the configured attack type. The set of
// strategies is closed; an unknown type is a configuration error.
func NewAttacker(attack data.AttackType, splitRatio float64, src rand.Source) (Attacker, error) {
	switch attack {
	case data.AttackNone:
		return passThrough{}, nil
	case data.AttackPNS:
		return pnsAttacker{}, nil
	case data.AttackBS:
		return &bsAttacker{ratio: splitRatio, src: src}, nil
	default:
		return nil, pl.NewError("unknown attack type %q", attack)
	}
}

type passThrough struct{}

func (passThrough) Intercept(photons int) (int, bool) {
	return photons, false
}

func (passThrough) Type() data.AttackType { return data.AttackNone }

// pnsAttacker performs photon-number splitting: it siphons exactly one photon
// from every multi-photon pulse and forwards the rest, which the receiver
// cannot distinguish from ordinary loss. Single-photon and vacuum pulses pass
// untouched, since splitting them would reveal the attack.
type pnsAttacker struct{}

func (pnsAttacker) Intercept(photons int) (int, bool) {
	if photons < 2 {
		return photons, false
	}
	return photons - 1, true
}

func (pnsAttacker) Type() data.AttackType { return data.AttackPNS }

// bsAttacker taps every pulse with a fixed-ratio beam splitter: each photon
// independently ends up in the attacker's arm with probability ratio. The
// pulse counts as intercepted only when the attacker actually retained a
// photon.
type bsAttacker struct {
	ratio float64
	src   rand.Source
}

func (a *bsAttacker) Intercept(photons int) (int, bool) {
	if photons == 0 || a.ratio <= 0 {
		return photons, false
	}
	tapped := photons
	if a.ratio < 1 {
		tapped = int(distuv.Binomial{N: float64(photons), P: a.ratio, Src: a.src}.Rand())
	}
	return photons - tapped, tapped > 0
}

func (a *bsAttacker) Type() data.AttackType { return data.AttackBS }
