package data

import (
	"math"

	pl "github.com/HannahMarsh/PrettyLogger"
)

// StateClass identifies the intensity class of a pulse.
type StateClass string

const (
	Signal StateClass = "signal"
	Decoy  StateClass = "decoy"
	Vacuum StateClass = "vacuum"
)

// Classes lists the state classes in their canonical order.
var Classes = []StateClass{Signal, Decoy, Vacuum}

// AttackType selects the eavesdropping strategy applied before the channel.
type AttackType string

const (
	AttackNone AttackType = "none"
	AttackPNS  AttackType = "pns"
	AttackBS   AttackType = "bs"
)

// Parameters is the immutable snapshot of one simulation configuration. It is
// passed by value into the runner and persisted with every record.
type Parameters struct {
	NumPulses       int `json:"numPulses"`
	NumRuns         int `json:"numRuns"`
	MaxPhotonNumber int `json:"maxPhotonNumber"`

	Mu               float64 `json:"mu"`
	Nu               float64 `json:"nu"`
	SignalPercentage float64 `json:"signalPercentage"`
	DecoyPercentage  float64 `json:"decoyPercentage"`
	VacuumPercentage float64 `json:"vacuumPercentage"`

	ChannelLengthKm    float64 `json:"channelLengthKm"`
	ChannelLossDbPerKm float64 `json:"channelLossDbPerKm"`
	ReceiverLossDb     float64 `json:"receiverLossDb"`

	DetectorEfficiency float64 `json:"detectorEfficiency"`
	DetectorErrorRate  float64 `json:"detectorErrorRate"`
	DarkCountRate      float64 `json:"darkCountRate"`

	Attack     AttackType `json:"attack"`
	SplitRatio float64    `json:"splitRatio"`

	Seed uint64 `json:"seed"`
}

const percentageTolerance = 1e-9

// TotalLossDb is the summed channel and receiver loss in dB.
func (p Parameters) TotalLossDb() float64 {
	return p.ChannelLossDbPerKm*p.ChannelLengthKm + p.ReceiverLossDb
}

// Transmittance converts the total loss to a linear survival probability.
func (p Parameters) Transmittance() float64 {
	return math.Pow(10, -p.TotalLossDb()/10)
}

// MeanPhotonNumber maps a state class to its configured pulse intensity. The
// vacuum class is exactly zero so that sampling takes the constant-0 path.
func (p Parameters) MeanPhotonNumber(class StateClass) float64 {
	switch class {
	case Signal:
		return p.Mu
	case Decoy:
		return p.Nu
	default:
		return 0
	}
}

// Validate rejects invalid configurations before any simulation executes.
func (p Parameters) Validate() error {
	if p.NumPulses <= 0 {
		return pl.NewError("number of pulses must be positive, got %d", p.NumPulses)
	}
	if p.NumRuns <= 0 {
		return pl.NewError("number of runs must be positive, got %d", p.NumRuns)
	}
	if p.MaxPhotonNumber <= 0 {
		return pl.NewError("max photon number must be positive, got %d", p.MaxPhotonNumber)
	}
	if p.Mu < 0 || p.Nu < 0 {
		return pl.NewError("mean photon numbers must be non-negative, got mu=%f, nu=%f", p.Mu, p.Nu)
	}
	for _, pct := range []float64{p.SignalPercentage, p.DecoyPercentage, p.VacuumPercentage} {
		if pct < 0 || pct > 1 {
			return pl.NewError("state percentages must be in [0,1], got %f", pct)
		}
	}
	if sum := p.SignalPercentage + p.DecoyPercentage + p.VacuumPercentage; math.Abs(sum-1) > percentageTolerance {
		return pl.NewError("state percentages must sum to 1, got %f", sum)
	}
	if p.ChannelLengthKm < 0 || p.ChannelLossDbPerKm < 0 || p.ReceiverLossDb < 0 {
		return pl.NewError("channel losses must be non-negative")
	}
	if p.DetectorEfficiency < 0 || p.DetectorEfficiency > 1 {
		return pl.NewError("detector efficiency must be in [0,1], got %f", p.DetectorEfficiency)
	}
	if p.DetectorErrorRate < 0 || p.DetectorErrorRate > 1 {
		return pl.NewError("detector error rate must be in [0,1], got %f", p.DetectorErrorRate)
	}
	if p.DarkCountRate < 0 || p.DarkCountRate > 1 {
		return pl.NewError("dark count rate must be in [0,1], got %f", p.DarkCountRate)
	}
	switch p.Attack {
	case AttackNone, AttackPNS:
	case AttackBS:
		if p.SplitRatio < 0 || p.SplitRatio > 1 {
			return pl.NewError("beam splitting ratio must be in [0,1], got %f", p.SplitRatio)
		}
	default:
		return pl.NewError("unknown attack type %q", p.Attack)
	}
	return nil
}
