// Package budget aggregates the known physical error sources of the
// print pipeline into a single worst-case tolerance, used to sanity
// check that a book design leaves placeholder margins wide enough to
// absorb them. This is a design-time check, not part of the render
// hot path.
package budget

import "github.com/tsawler/inlay/model"

// Contribution is one named error source with its upper-bound
// magnitude in millimeters.
type Contribution struct {
	Name string  `json:"name"`
	MM   float64 `json:"mm"`
}

// Budget is a fixed, ordered list of error contributions.
type Budget struct {
	contributions []Contribution
}

// Default returns the standard error budget: scan distortion,
// detection bounding-box error, printer scaling residual, and the
// manual cutting tolerance.
func Default() Budget {
	return New([]Contribution{
		{Name: "scan-distortion", MM: 0.5},
		{Name: "detection-bbox-error", MM: 1.0},
		{Name: "printer-scaling-residual", MM: 0.5},
		{Name: "manual-cutting-tolerance", MM: 1.0},
	})
}

// New creates a budget from the given contributions
func New(contributions []Contribution) Budget {
	return Budget{contributions: append([]Contribution(nil), contributions...)}
}

// Contributions returns the contributions in budget order
func (b Budget) Contributions() []Contribution {
	return append([]Contribution(nil), b.contributions...)
}

// Total returns the summed worst-case error in millimeters
func (b Budget) Total() float64 {
	var total float64
	for _, c := range b.contributions {
		total += c.MM
	}
	return total
}

// SafeRect returns true if every border of rect keeps at least the
// total budget's distance from the page edge, so normal pipeline
// error cannot push the placed photograph off the page.
func (b Budget) SafeRect(rect model.RectMM, page model.Page) bool {
	total := b.Total()
	return rect.Left() >= total &&
		rect.Top() >= total &&
		page.WidthMM-rect.Right() >= total &&
		page.HeightMM-rect.Bottom() >= total
}
