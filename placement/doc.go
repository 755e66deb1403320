// Package placement maps available images onto detected placeholder
// regions and computes the crop/scale transform for each pair.
//
// # Assignment
//
// Pairing images with placeholders is performed by types implementing
// the [Assigner] interface. Two strategies are provided:
//
//   - [AutoAssigner] - placeholders ordered by area descending (ties
//     broken by id), images by identifier ascending, paired
//     positionally. Unmatched placeholders are reported, never
//     silently dropped; unmatched images are ignored.
//   - [ExplicitAssigner] - caller supplies exact placeholder-to-image
//     mappings; unknown references fail with [AssignmentError].
//
// # Transforms
//
// Given a placeholder rectangle in millimeters and a source image's
// pixel dimensions, the [Resolver] computes a [model.PlacementTransform]
// under the chosen scaling policy. The fill and center-crop policies
// crop the source to the target aspect ratio (centered) and scale to
// cover the placeholder exactly; fit scales the whole image to sit
// inside the placeholder.
//
// # Determinism
//
// Given identical inputs, assignment and transform output are
// reproducible bit for bit: all ordering is by explicit sort, never by
// map iteration, clock, or random tie-breaking.
package placement
