package display

import (
	pl "github.com/HannahMarsh/PrettyLogger"
	"gonum.org/v1/plot/plotter"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
	"github.com/qkd-lab/bb84-decoy-evaluation/pkg/utils"
)

// selectPhotonNumbers validates and sorts the requested n values, defaulting
// to the full analyzed range 1..max when none are given.
func selectPhotonNumbers(photonNumbers []int, max int) ([]int, error) {
	if len(photonNumbers) == 0 {
		ns := make([]int, max)
		for i := range ns {
			ns[i] = i + 1
		}
		return ns, nil
	}
	if bad := utils.Find(photonNumbers, func(n int) bool { return n < 1 || n > max }); bad != nil {
		return nil, pl.NewError("photon number %d outside analyzed range 1..%d", *bad, max)
	}
	ns := make([]int, len(photonNumbers))
	copy(ns, photonNumbers)
	utils.SortOrdered(ns)
	return ns, nil
}

// yieldPoints maps the selected photon numbers to (n, mean yield) points.
// Photon numbers the series does not cover are drawn at zero, which keeps a
// record with a degenerate class plottable.
func yieldPoints(stats data.YieldStats, ns []int) plotter.XYs {
	points := make(plotter.XYs, len(ns))
	for i, n := range ns {
		points[i].X = float64(n)
		if n >= 1 && n <= len(stats.Mean) {
			points[i].Y = stats.Mean[n-1]
		}
	}
	return points
}
