package display

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	pl "github.com/HannahMarsh/PrettyLogger"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
)

// PlotYields renders the expected vs signal vs decoy mean yields of a record
// for the requested photon numbers and returns the path of the saved figure.
// An empty photonNumbers selects every analyzed n.
func PlotYields(rec *data.Record, photonNumbers []int, dir string) (string, error) {
	ns, err := selectPhotonNumbers(photonNumbers, rec.Params.MaxPhotonNumber)
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("n-photon yields (mu=%.2f, nu=%.2f, attack=%s)",
		rec.Params.Mu, rec.Params.Nu, rec.Params.Attack)
	p.X.Label.Text = "Photon number n"
	p.Y.Label.Text = "Yield Y_n"
	p.Legend.Top = true

	err = plotutil.AddLinePoints(p,
		"Expected", yieldPoints(rec.Summary.Expected, ns),
		"Signal", yieldPoints(rec.Summary.Signal, ns),
		"Decoy", yieldPoints(rec.Summary.Decoy, ns),
	)
	if err != nil {
		return "", pl.WrapError(err, "failed to add yield series")
	}

	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", pl.WrapError(err, "failed to create plot directory %s", dir)
	}
	path := filepath.Join(dir, fmt.Sprintf("yields_%d.png", time.Now().UnixNano()/int64(time.Millisecond)))
	if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return "", pl.WrapError(err, "failed to save plot")
	}
	return path, nil
}
