package calibration

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tsawler/inlay/model"
)

// Measurement pairs the expected position of one calibration-grid
// reference mark with where it actually landed on the printed sheet,
// both in millimeters from the page's top-left corner.
type Measurement struct {
	Expected model.PointMM `json:"expected"`
	Actual   model.PointMM `json:"actual"`
}

// Fit derives a correction profile from reference-mark measurements.
//
// The printer's systematic error is modeled per axis as
// actual = s*expected + o, recovered by linear least squares. The
// returned profile is the inverse of that error, so that applying it
// before printing makes marks land where they were intended. At least
// two measurements with distinct expected coordinates are required on
// each axis; fitted corrections outside the sane 0.9 to 1.1 scale
// range are rejected.
func Fit(printerID, paperType string, measurements []Measurement) (Profile, error) {
	if len(measurements) < 2 {
		return Profile{}, fmt.Errorf("calibration fit needs at least 2 measurements, got %d", len(measurements))
	}

	expX := make([]float64, len(measurements))
	actX := make([]float64, len(measurements))
	expY := make([]float64, len(measurements))
	actY := make([]float64, len(measurements))
	for i, m := range measurements {
		expX[i] = m.Expected.X
		actX[i] = m.Actual.X
		expY[i] = m.Expected.Y
		actY[i] = m.Actual.Y
	}

	sx, ox, err := fitAxis(expX, actX)
	if err != nil {
		return Profile{}, fmt.Errorf("x axis: %w", err)
	}
	sy, oy, err := fitAxis(expY, actY)
	if err != nil {
		return Profile{}, fmt.Errorf("y axis: %w", err)
	}

	if sx <= 0 || sy <= 0 {
		return Profile{}, fmt.Errorf("degenerate printer error model (scale %v / %v)", sx, sy)
	}

	// Invert actual = s*x + o into the pre-print correction.
	p := Profile{
		PrinterID:    printerID,
		PaperType:    paperType,
		ScaleFactorX: 1 / sx,
		ScaleFactorY: 1 / sy,
		OffsetMM:     Offset{X: -ox / sx, Y: -oy / sy},
	}

	if !p.Plausible() {
		return Profile{}, fmt.Errorf("fitted correction %v / %v outside the %v-%v sane range",
			p.ScaleFactorX, p.ScaleFactorY, MinScaleFactor, MaxScaleFactor)
	}

	return p, nil
}

// fitAxis solves actual = scale*expected + offset in the least-squares
// sense for one axis.
func fitAxis(expected, actual []float64) (scale, offset float64, err error) {
	if !hasDistinct(expected) {
		return 0, 0, fmt.Errorf("measurements need at least two distinct expected coordinates")
	}

	n := len(expected)
	a := mat.NewDense(n, 2, nil)
	b := mat.NewVecDense(n, nil)
	for i := range expected {
		a.Set(i, 0, expected[i])
		a.Set(i, 1, 1)
		b.SetVec(i, actual[i])
	}

	var qr mat.QR
	qr.Factorize(a)

	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, b); err != nil {
		return 0, 0, fmt.Errorf("least squares solve: %w", err)
	}

	return sol.AtVec(0), sol.AtVec(1), nil
}

func hasDistinct(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return true
		}
	}
	return false
}
