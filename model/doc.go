// Package model defines the shared data model for the placement engine:
// physical geometry in millimeters, placeholder regions, image assets,
// placement transforms, and the paper-type catalog.
//
// # Coordinate system
//
// All physical geometry uses millimeters with the origin at the top-left
// corner of the page, matching how scanned pages are measured. Device
// (PDF) space is bottom-left origin; the units package performs that
// conversion at the rendering boundary.
//
// # Geometry
//
// [RectMM] is the physical rectangle used throughout:
//
//	rect := model.RectMM{X: 20, Y: 40, Width: 80, Height: 60}
//	rect.WithinPage(model.A4.Page())  // true
//
// [RectMM.IoU] computes intersection-over-union, the overlap metric used
// by validation.
//
// # Placeholders and placements
//
// A [PlaceholderRegion] is a detected (or manually annotated) rectangle
// intended to receive a photograph. A [PlacementTransform] is the
// resolved crop/scale mapping of one image into one placeholder; it is
// created by the placement package and consumed by calibration and the
// renderer.
package model
