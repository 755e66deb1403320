// Package units performs the pixel, millimeter, and device-point
// conversions the placement pipeline depends on.
//
// Three resolution contexts exist in the pipeline: the scan DPI of the
// rasterized page, the print DPI of the output raster, and device
// points (1/72 inch) for the PDF renderer. All conversions here are
// pure floating-point arithmetic with no intermediate rounding;
// rounding to integral pixels happens exactly once, at the final
// consumption boundary, via [RoundPx]. Repeated truncation compounds
// positional drift across a multi-stage pipeline, so truncation is
// never used.
package units

import (
	"errors"
	"fmt"
	"math"
)

// Conversion constants.
const (
	// MMPerInch is the exact definition of the inch.
	MMPerInch = 25.4

	// PointsPerMM converts millimeters to device points (1/72 inch).
	PointsPerMM = 72.0 / MMPerInch
)

// ErrInvalidParameter reports malformed numeric input to a conversion,
// such as a non-positive DPI. It is a programming or configuration
// error and is never retried.
var ErrInvalidParameter = errors.New("invalid parameter")

// PxToMM converts a pixel measurement to millimeters at the given
// resolution.
func PxToMM(px, dpi float64) (float64, error) {
	if dpi <= 0 {
		return 0, fmt.Errorf("%w: dpi must be positive, got %v", ErrInvalidParameter, dpi)
	}
	return (px / dpi) * MMPerInch, nil
}

// MMToPx converts a millimeter measurement to pixels at the given
// resolution.
func MMToPx(mm, dpi float64) (float64, error) {
	if dpi <= 0 {
		return 0, fmt.Errorf("%w: dpi must be positive, got %v", ErrInvalidParameter, dpi)
	}
	return (mm / MMPerInch) * dpi, nil
}

// MMToDevicePoints converts a top-left-origin millimeter coordinate to
// bottom-left-origin device points. Device space (PDF) places the
// origin at the bottom-left corner of the page, so the Y axis is
// flipped against the page height.
func MMToDevicePoints(xMM, yMM, pageHeightMM float64) (xPt, yPt float64) {
	xPt = xMM * PointsPerMM
	yPt = (pageHeightMM - yMM) * PointsPerMM
	return xPt, yPt
}

// RoundPx rounds a pixel measurement to the nearest integer using
// round-half-to-even. This is the single rounding point for the whole
// pipeline.
func RoundPx(px float64) int {
	return int(math.RoundToEven(px))
}
