// Package inlay places user photographs into fixed placeholder regions
// detected on scanned book pages and produces print-ready geometry
// whose physical dimensions match the original book.
//
// Basic usage:
//
//	results, warnings, err := inlay.Plan(pages...).
//	    Images(photos.Assets()).
//	    Policy(model.PolicyFill).
//	    Run()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", inlay.FormatWarnings(warnings))
//	}
//
// With calibration:
//
//	store := calibration.NewFileStore("calibration/")
//	results, warnings, err := inlay.Plan(pages...).
//	    Images(photos.Assets()).
//	    Calibrate(store, "hp-envy", "A4").
//	    Run()
//
// Each page flows through validation, placement resolution, and
// calibration independently: one page's failure never aborts its
// siblings, and the per-page error lands in that page's [PageResult].
// For advanced use the lower-level validate, placement, and
// calibration packages are also available.
package inlay

import (
	"github.com/tsawler/inlay/calibration"
	"github.com/tsawler/inlay/model"
	"github.com/tsawler/inlay/placement"
	"github.com/tsawler/inlay/validate"
)

// Validate checks one page's placeholders with default thresholds.
func Validate(page model.Page, placeholders []model.PlaceholderRegion) validate.Report {
	return validate.New().Validate(page, placeholders)
}

// ResolvePlacements computes placement transforms for one page using
// automatic assignment and the default print resolution.
func ResolvePlacements(page model.Page, placeholders []model.PlaceholderRegion, images []model.ImageAsset, policy model.ScalingPolicy) (placement.Result, error) {
	return placement.NewResolver().Resolve(page, placeholders, images, policy)
}

// ApplyCalibration remaps resolved placements through a calibration
// profile. A nil profile is the observable no-op for a missing
// calibration.
func ApplyCalibration(placements []model.PlacementTransform, profile *calibration.Profile) (calibration.Result, error) {
	return calibration.Apply(placements, profile)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
