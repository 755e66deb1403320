// Package calibration corrects resolved placements for a specific
// printer and paper combination's systematic geometric error.
//
// A [Profile] is a per-axis scale plus a millimeter offset, loaded
// once per render run and applied uniformly to every placement of the
// run. Profiles are persisted one JSON record per (printer, paper)
// key; a missing profile is an expected, observable condition
// ([ErrProfileNotFound]), operationally distinct from an explicit
// identity profile.
//
// Profiles can be fitted from reference-mark measurements taken off a
// printed calibration grid; see [Fit].
package calibration

import (
	"fmt"

	"github.com/tsawler/inlay/model"
)

// Sane bounds for fitted or stored scale factors. A printer that is
// off by more than 10% has a mechanical problem calibration cannot
// paper over.
const (
	MinScaleFactor = 0.9
	MaxScaleFactor = 1.1
)

// Offset is a millimeter translation.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Profile is the correction for one printer/paper combination.
// Never mutated mid-run.
type Profile struct {
	PrinterID    string  `json:"printer_id"`
	PaperType    string  `json:"paper_type"`
	ScaleFactorX float64 `json:"scale_factor_x"`
	ScaleFactorY float64 `json:"scale_factor_y"`
	OffsetMM     Offset  `json:"offset_mm"`
}

// Identity returns an explicit identity profile for the given key.
// Applying it changes nothing, but it is still a real calibration,
// unlike the absence of one.
func Identity(printerID, paperType string) Profile {
	return Profile{
		PrinterID:    printerID,
		PaperType:    paperType,
		ScaleFactorX: 1,
		ScaleFactorY: 1,
	}
}

// Validate checks the profile's numeric fields.
func (p Profile) Validate() error {
	if p.ScaleFactorX <= 0 || p.ScaleFactorY <= 0 {
		return fmt.Errorf("calibration profile %s/%s: scale factors must be positive, got %v / %v",
			p.PrinterID, p.PaperType, p.ScaleFactorX, p.ScaleFactorY)
	}
	return nil
}

// Plausible returns true if both scale factors are inside the sane
// 0.9 to 1.1 range.
func (p Profile) Plausible() bool {
	return p.ScaleFactorX >= MinScaleFactor && p.ScaleFactorX <= MaxScaleFactor &&
		p.ScaleFactorY >= MinScaleFactor && p.ScaleFactorY <= MaxScaleFactor
}

// apply remaps one rectangle through the profile.
func (p Profile) apply(r model.RectMM) model.RectMM {
	return model.RectMM{
		X:      r.X*p.ScaleFactorX + p.OffsetMM.X,
		Y:      r.Y*p.ScaleFactorY + p.OffsetMM.Y,
		Width:  r.Width * p.ScaleFactorX,
		Height: r.Height * p.ScaleFactorY,
	}
}

// Result is a calibrated set of placements. Calibrated is false when
// no profile was available and the placements passed through
// untouched; callers can tell that apart from an explicit identity
// calibration, whose Calibrated is true.
type Result struct {
	Placements []model.PlacementTransform
	Calibrated bool
	Profile    *Profile
}

// Apply remaps every placement's target rectangle through the profile
// and returns a new set; the input is never mutated, preserving the
// pre-calibration placements for diagnostics. A nil profile is the
// observable no-op for a missing calibration.
func Apply(placements []model.PlacementTransform, profile *Profile) (Result, error) {
	out := make([]model.PlacementTransform, len(placements))
	copy(out, placements)

	if profile == nil {
		return Result{Placements: out, Calibrated: false}, nil
	}
	if err := profile.Validate(); err != nil {
		return Result{}, err
	}

	for i := range out {
		out[i].TargetRect = profile.apply(out[i].TargetRect)
	}

	p := *profile
	return Result{Placements: out, Calibrated: true, Profile: &p}, nil
}
