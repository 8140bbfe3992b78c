package protocol

import (
	pl "github.com/HannahMarsh/PrettyLogger"
	"golang.org/x/exp/rand"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
)

// Pulse is the ephemeral per-trial record of one pulse's trip through the
// attacker, channel and detector. It only lives long enough to be folded into
// the run's per-class counts.
type Pulse struct {
	Class            data.StateClass
	TruePhotons      int
	ForwardedPhotons int
	SurvivingPhotons int
	Clicked          bool
	Dark             bool
	Intercepted      bool
	BasisMatch       bool
	BitError         bool
}

// Protocol drives one decoy-state BB84 run: it draws the state class and
// photon number for every pulse, threads the pulse through the configured
// attacker, the channel and the detector, and accumulates per-class counts.
// All randomness comes from a single explicit stream, so a run is fully
// reproducible from its seed.
type Protocol struct {
	params   data.Parameters
	source   *PhotonSource
	attacker Attacker
	channel  *Channel
	detector *Detector
	rng      *rand.Rand
}

// New builds a protocol instance with a private RNG stream derived from seed.
// The parameters are assumed validated; only attacker construction can fail.
func New(params data.Parameters, seed uint64) (*Protocol, error) {
	src := rand.NewSource(seed)
	rng := rand.New(src)
	attacker, err := NewAttacker(params.Attack, params.SplitRatio, src)
	if err != nil {
		return nil, pl.WrapError(err, "failed to build attacker")
	}
	return &Protocol{
		params:   params,
		source:   NewPhotonSource(src),
		attacker: attacker,
		channel:  NewChannel(params.Transmittance(), src),
		detector: NewDetector(params.DetectorEfficiency, params.DetectorErrorRate, params.DarkCountRate, rng),
		rng:      rng,
	}, nil
}

// Run executes one full protocol run and returns the per-class counts. The
// sent counts always sum to exactly NumPulses: every pulse is assigned to
// exactly one class by a categorical draw.
func (p *Protocol) Run() map[data.StateClass]data.ClassCounts {
	counts := make(map[data.StateClass]data.ClassCounts, len(data.Classes))
	for _, class := range data.Classes {
		counts[class] = data.ClassCounts{}
	}
	for i := 0; i < p.params.NumPulses; i++ {
		pulse := p.nextPulse()
		c := counts[pulse.Class]
		c.Sent++
		if pulse.Clicked {
			c.Clicked++
		}
		if pulse.Dark {
			c.DarkCounts++
		}
		if pulse.Intercepted {
			c.Intercepted++
		}
		if pulse.Clicked && pulse.BasisMatch {
			c.SiftedClicks++
			if pulse.BitError {
				c.SiftedErrors++
			}
		}
		counts[pulse.Class] = c
	}
	return counts
}

// nextPulse simulates a single trial: class draw, state preparation,
// interception, transmission and detection.
func (p *Protocol) nextPulse() Pulse {
	class := p.drawClass()
	truePhotons := p.source.Sample(p.params.MeanPhotonNumber(class))
	forwarded, intercepted := p.attacker.Intercept(truePhotons)
	surviving := p.channel.Transmit(forwarded)
	clicked, dark := p.detector.Detect(surviving)

	// Sender and receiver pick bases independently; a dark-count click
	// lands on a random bit, a real detection is misread with the
	// detector's intrinsic error rate.
	basisMatch := p.rng.Intn(2) == p.rng.Intn(2)
	bitError := false
	if clicked && basisMatch {
		if dark {
			bitError = p.rng.Intn(2) == 1
		} else {
			bitError = p.detector.Misread()
		}
	}

	return Pulse{
		Class:            class,
		TruePhotons:      truePhotons,
		ForwardedPhotons: forwarded,
		SurvivingPhotons: surviving,
		Clicked:          clicked,
		Dark:             dark,
		Intercepted:      intercepted,
		BasisMatch:       basisMatch,
		BitError:         bitError,
	}
}

// drawClass assigns the pulse to a state class by a single categorical draw
// over the configured percentages.
func (p *Protocol) drawClass() data.StateClass {
	u := p.rng.Float64()
	if u < p.params.SignalPercentage {
		return data.Signal
	}
	if u < p.params.SignalPercentage+p.params.DecoyPercentage {
		return data.Decoy
	}
	return data.Vacuum
}
